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

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr...",
	Short: "evaluate one or more expressions.",
	Long: `Evaluate one or more expressions, printing the value of each.  Values
	for variables can be given using --var.  Variables without a value
	evaluate to NaN.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
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
		failed := false
		//
		for _, arg := range args {
			n, err := env.Parse(arg)
			if err != nil {
				printError(err)
				failed = true
				//
				continue
			}
			//
			v, err := env.Value(n, binding)
			if err != nil {
				printError(err)
				failed = true
			} else {
				fmt.Printf("%s = %s\n", n, resultColour.Sprint(formatValue(v)))
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArray("var", []string{}, "assign a value to a variable (e.g. --var x=1)")
}
