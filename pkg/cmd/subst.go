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
	"strings"

	"github.com/spf13/cobra"
)

var substCmd = &cobra.Command{
	Use:   "subst [flags] expr name=value...",
	Short: "substitute variables in an expression.",
	Long: `Substitute variables in an expression with other variables or numbers,
	and print the simplified result.  For example, "subst 'x^2+y' x=3 y=z"
	prints "9+z".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		env := getEnvironment(cmd)
		replacements := make(map[string]string)
		//
		for _, arg := range args[1:] {
			name, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Printf("invalid substitution \"%s\" (expected name=value)\n", arg)
				os.Exit(2)
			}
			//
			replacements[strings.TrimSpace(name)] = value
		}
		//
		n, err := env.Parse(args[0])
		if err == nil {
			err = n.Replace(replacements)
		}
		//
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		//
		env.Simplify(n)
		fmt.Println(n)
	},
}

func init() {
	rootCmd.AddCommand(substCmd)
}
