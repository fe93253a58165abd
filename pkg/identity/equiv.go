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
package identity

import (
	"fmt"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-symcalc/pkg/expr"
)

// Equivalent tests whether two expressions are identical, by evaluating both
// at a number of randomly chosen points in the field.  Two polynomials which
// differ agree at a random point with negligible probability, hence agreement
// at every point is strong evidence of equivalence.  Variables which name
// constants of the environment are not assigned, and thus cause an error.
func Equivalent(env *expr.Environment, lhs *expr.Node, rhs *expr.Node, trials uint) (bool, error) {
	var names []string
	//
	if trials == 0 {
		return false, ErrNoTrials
	}
	// Determine free variables
	for _, name := range Variables(lhs, rhs) {
		if _, ok := env.Constant(name); !ok {
			names = append(names, name)
		}
	}
	//
	for i := uint(0); i < trials; i++ {
		assignment, err := randomAssignment(names)
		if err != nil {
			return false, err
		}
		//
		l, err := Eval(env, lhs, assignment)
		if err != nil {
			return false, err
		}
		//
		r, err := Eval(env, rhs, assignment)
		if err != nil {
			return false, err
		}
		//
		if !l.Equal(&r) {
			log.Debugf("trial %d: %s evaluates to %s, but %s evaluates to %s", i, lhs, l.String(), rhs, r.String())
			return false, nil
		}
	}
	//
	return true, nil
}

// Variables returns the names of all variables used in one or more
// expressions, in sorted order and without duplicates.
func Variables(nodes ...*expr.Node) []string {
	var names []string
	//
	for _, n := range nodes {
		names = appendVariables(names, n)
	}
	//
	slices.Sort(names)
	//
	return slices.Compact(names)
}

func appendVariables(names []string, n *expr.Node) []string {
	if n.Kind() == expr.VARIABLE {
		names = append(names, n.Symbol())
	}
	//
	for _, child := range n.Children() {
		names = appendVariables(names, child)
	}
	//
	if x, ok := n.Exponent().(expr.ExprExponent); ok {
		names = appendVariables(names, x.Expr)
	}
	//
	return names
}

func randomAssignment(names []string) (map[string]fr.Element, error) {
	assignment := make(map[string]fr.Element, len(names))
	//
	for _, name := range names {
		var v fr.Element
		//
		if _, err := v.SetRandom(); err != nil {
			return nil, fmt.Errorf("sampling %s: %w", name, err)
		}
		//
		assignment[name] = v
	}
	//
	return assignment, nil
}
