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

	"github.com/consensys/go-symcalc/pkg/expr"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expr...",
	Short: "simplify one or more expressions.",
	Long: `Simplify one or more expressions, printing the canonical form of each.
	Integral values are collapsed, fractions are reduced to lowest terms
	and identities such as x+0 and x*1 are eliminated.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		env := getEnvironment(cmd)
		failed := false
		//
		for _, arg := range args {
			if n, err := env.Evaluate(arg); err != nil {
				printError(err)
				failed = true
			} else {
				fmt.Println(n)
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [flags] expr...",
	Short: "format one or more expressions.",
	Long: `Check one or more expressions are well-formed and print their
	canonical textual form.  Whitespace between operands is read as
	multiplication, and is otherwise dropped.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		getEnvironment(cmd)
		//
		failed := false
		//
		for _, arg := range args {
			if text, err := expr.Format(arg); err != nil {
				printError(err)
				failed = true
			} else {
				fmt.Println(text)
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(formatCmd)
}
