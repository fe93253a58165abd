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
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/util/math"
	"github.com/consensys/go-symcalc/pkg/util/source"
)

var (
	errorColour     = color.New(color.FgRed, color.Bold)
	highlightColour = color.New(color.FgRed)
	resultColour    = color.New(color.FgGreen)
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getEnvironment configures logging and constructs the environment against
// which expressions are evaluated, loading any constants given on the command
// line.  This exits if the constants cannot be loaded.
func getEnvironment(cmd *cobra.Command) *expr.Environment {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	env := expr.Default().Clone()
	//
	if filename := GetString(cmd, "constants"); filename != "" {
		if err := loadConstants(env, filename); err != nil {
			printError(err)
			os.Exit(2)
		}
	}
	//
	return env
}

// loadConstants reads a file of "name=value" definitions, and registers each
// as a constant.  Definitions are processed in sorted order, and each value
// must evaluate to a known number.
func loadConstants(env *expr.Environment, filename string) error {
	definitions, err := godotenv.Read(filename)
	if err != nil {
		return err
	}
	//
	names := lo.Keys(definitions)
	slices.Sort(names)
	//
	for _, name := range names {
		v, err := evaluateNumber(env, definitions[name], nil)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		} else if err := env.SetConstant(name, v); err != nil {
			return err
		}
		//
		log.Debugf("loaded constant %s = %v from %s", name, v, filename)
	}
	//
	return nil
}

// parseBinding parses variable assignments of the form "name=value", where
// each value is an expression evaluating to a known number.
func parseBinding(env *expr.Environment, assignments []string) (expr.Binding, error) {
	binding := make(expr.Binding)
	//
	for _, assignment := range assignments {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment \"%s\" (expected name=value)", assignment)
		}
		//
		v, err := evaluateNumber(env, value, binding)
		if err != nil {
			return nil, err
		}
		//
		binding[strings.TrimSpace(name)] = v
	}
	//
	return binding, nil
}

// evaluateNumber parses an expression and determines its value, which must be
// known.
func evaluateNumber(env *expr.Environment, text string, binding expr.Binding) (float64, error) {
	n, err := env.Parse(text)
	if err != nil {
		return 0, err
	}
	//
	v, err := env.Value(n, binding)
	if err != nil {
		return 0, err
	} else if gomath.IsNaN(v) {
		return 0, fmt.Errorf("value of %s is unknown", n)
	}
	//
	return v, nil
}

// formatValue renders a value, avoiding exponent notation for integers.
func formatValue(v float64) string {
	if i, ok := math.AsInt64(v); ok {
		return fmt.Sprintf("%d", i)
	}
	//
	return fmt.Sprintf("%v", v)
}

// Print an error, highlighting the offending text in the case of an input
// error.
func printError(err error) {
	fprintError(os.Stdout, err)
}

func fprintError(w io.Writer, err error) {
	var ierr *expr.InputError
	//
	if errors.As(err, &ierr) {
		fprintSyntaxError(w, ierr.SyntaxError)
	} else {
		fmt.Fprintf(w, "%s %s\n", errorColour.Sprint("error:"), err)
	}
}

// Print a syntax error with appropriate highlighting.
func fprintSyntaxError(w io.Writer, err *source.SyntaxError) {
	var (
		line      = err.EnclosingLine()
		highlight = err.Highlight()
		split     = strings.LastIndex(highlight, "\n")
	)
	// Print error + line number
	fmt.Fprintf(w, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), errorColour.Sprint(err.Message()))
	// Print line
	fmt.Fprintln(w, highlight[:split])
	// Print highlight
	fmt.Fprintln(w, highlightColour.Sprint(highlight[split+1:]))
}
