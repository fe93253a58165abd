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
	"bufio"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/util/termio"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive session.",
	Long: `Start an interactive session, in which each line entered is simplified
	and evaluated.  Constants can be defined with "let name = expr", and the
	session ends with "quit" or end-of-file.`,
	Run: func(cmd *cobra.Command, args []string) {
		env := getEnvironment(cmd)
		//
		if !termio.IsTerminal() {
			// Read from a pipe or file
			session := &repl{env, os.Stdout}
			scanner := bufio.NewScanner(os.Stdin)
			//
			for scanner.Scan() && session.execute(scanner.Text()) {
			}
			//
			return
		}
		//
		terminal, err := termio.NewTerminal("> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer func() {
			if err := terminal.Restore(); err != nil {
				log.Error(err)
			}
		}()
		//
		session := &repl{env, terminal}
		//
		for {
			line, err := terminal.ReadLine()
			//
			if errors.Is(err, io.EOF) {
				return
			} else if err != nil {
				log.Error(err)
				return
			} else if !session.execute(line) {
				return
			}
		}
	},
}

var letPattern = regexp.MustCompile(`^\s*let\s+(\w+)\s*=(.*)$`)

// repl holds the state of an interactive session.
type repl struct {
	env *expr.Environment
	out io.Writer
}

// execute a single line of input, returning false when the session should
// end.
func (r *repl) execute(line string) bool {
	line = strings.TrimSpace(line)
	//
	switch {
	case line == "":
		return true
	case line == "quit" || line == "exit":
		return false
	case line == "help":
		fmt.Fprintln(r.out, "enter an expression, \"let name = expr\", \"constants\", \"functions\" or \"quit\"")
	case line == "constants":
		for _, name := range r.env.Constants() {
			v, _ := r.env.Constant(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, formatValue(v))
		}
	case line == "functions":
		fmt.Fprintln(r.out, strings.Join(r.env.Functions(), " "))
	case letPattern.MatchString(line):
		matches := letPattern.FindStringSubmatch(line)
		r.define(matches[1], matches[2])
	default:
		r.evaluate(line)
	}
	//
	return true
}

// define a new constant.
func (r *repl) define(name string, text string) {
	v, err := evaluateNumber(r.env, text, nil)
	//
	if err == nil {
		err = r.env.SetConstant(name, v)
	}
	//
	if err != nil {
		fprintError(r.out, err)
	} else {
		fmt.Fprintf(r.out, "%s = %s\n", name, formatValue(v))
	}
}

// evaluate an expression, printing its simplified form along with its value
// (when this is known but not integral).
func (r *repl) evaluate(text string) {
	n, err := r.env.Evaluate(text)
	if err != nil {
		fprintError(r.out, err)
		return
	}
	//
	v, err := r.env.Value(n, nil)
	//
	switch {
	case err != nil:
		fmt.Fprintln(r.out, n)
		fprintError(r.out, err)
	case n.Kind() == expr.CONSTANT || gomath.IsNaN(v):
		fmt.Fprintln(r.out, n)
	default:
		fmt.Fprintf(r.out, "%s = %s\n", n, formatValue(v))
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
