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

	"github.com/consensys/go-symcalc/pkg/matrix"
	"github.com/consensys/go-symcalc/pkg/util"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [flags] matrix_file",
	Short: "perform operations on a matrix.",
	Long: `Read a matrix of expressions from a file (one row per line, with
	elements separated by ';' or whitespace) and print it, its transpose,
	its determinant or its inverse.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		env := getEnvironment(cmd)
		//
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		m, err := matrix.Parse(env, string(bytes))
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		printed := false
		//
		if GetFlag(cmd, "transpose") {
			fmt.Println(m.Transpose())
			printed = true
		}
		//
		if GetFlag(cmd, "det") {
			stats := util.NewPerfStats("determinant")
			det, err := m.Determinant()
			exitOnError(err)
			stats.Log()
			fmt.Println(det)
			printed = true
		}
		//
		if GetFlag(cmd, "inverse") {
			stats := util.NewPerfStats("inverse")
			inv, err := m.Inverse()
			exitOnError(err)
			stats.Log()
			fmt.Println(inv)
			printed = true
		}
		//
		if !printed {
			fmt.Println(m)
		}
	},
}

func exitOnError(err error) {
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().Bool("transpose", false, "print the transpose")
	matrixCmd.Flags().Bool("det", false, "print the determinant")
	matrixCmd.Flags().Bool("inverse", false, "print the inverse")
}
