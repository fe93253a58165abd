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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-symcalc/pkg/identity"
	"github.com/consensys/go-symcalc/pkg/util"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] lhs rhs",
	Short: "check whether two expressions are equivalent.",
	Long: `Check whether two polynomial expressions are equivalent, by evaluating
	them at random points in a large prime field.  Functions, factorials and
	irrational constants are not supported.  Exits with status 1 when the
	expressions differ.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		env := getEnvironment(cmd)
		trials := GetUint(cmd, "trials")
		//
		lhs, err := env.Parse(args[0])
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		rhs, err := env.Parse(args[1])
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		log.Debugf("checking %s == %s over variables %v", lhs, rhs, identity.Variables(lhs, rhs))
		//
		stats := util.NewPerfStats(fmt.Sprintf("%d trials", trials))
		equiv, err := identity.Equivalent(env, lhs, rhs, trials)
		stats.Log()
		//
		switch {
		case err != nil:
			printError(err)
			os.Exit(2)
		case equiv:
			fmt.Println(resultColour.Sprint("equivalent"))
		default:
			fmt.Println(errorColour.Sprint("not equivalent"))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
	equivCmd.Flags().Uint("trials", 16, "number of random points to evaluate at")
}
