// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] expr",
	Short: "print the tree of an expression.",
	Long: `Print the tree of an expression, showing the kind and value of each
	node.  Values for variables can be given using --var.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		env := getEnvironment(cmd)
		//
		binding, err := parseBinding(env, GetStringArray(cmd, "var"))
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		parse := env.Parse
		//
		if GetFlag(cmd, "simplify") {
			parse = env.Evaluate
		}
		//
		n, err := parse(args[0])
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		//
		fmt.Print(env.Describe(n, binding))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringArray("var", []string{}, "assign a value to a variable (e.g. --var x=1)")
	treeCmd.Flags().Bool("simplify", false, "simplify the expression first")
}
