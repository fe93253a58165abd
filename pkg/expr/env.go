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
package expr

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"sync"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	umath "github.com/consensys/go-symcalc/pkg/util/math"
)

// Binding maps variable names to the values they take during evaluation.
type Binding map[string]float64

// Scope provides the context within which a function is evaluated, giving
// access to the enclosing environment and variable binding.
type Scope struct {
	env     *Environment
	binding Binding
}

// Value evaluates a given node within this scope.
func (s Scope) Value(n *Node) (float64, error) {
	return s.env.Value(n, s.binding)
}

// Lookup determines the value of a named variable or constant within this
// scope.  Variables in the binding shadow constants of the environment.
func (s Scope) Lookup(name string) (float64, bool) {
	if v, ok := s.binding[name]; ok {
		return v, true
	}
	//
	return s.env.Constant(name)
}

// Function evaluates the application of a named function to its argument.
type Function func(scope Scope, arg *Node) (float64, error)

// UnaryFunction lifts a numeric function into one which evaluates its
// argument first.
func UnaryFunction(fn func(float64) float64) Function {
	return func(scope Scope, arg *Node) (float64, error) {
		v, err := scope.Value(arg)
		if err != nil {
			return math.NaN(), err
		}
		//
		return fn(v), nil
	}
}

// Operator describes an operator which can appear in an expression.  Lower
// priority operators bind more loosely than higher priority operators.
type Operator struct {
	Symbol   string
	Priority uint
	Arity    uint
	// Postfix operators appear after their (only) operand.
	Postfix bool
	apply   func(operands []float64) (float64, error)
}

var operators = map[string]*Operator{
	"+": {"+", 1, 2, false, binary(func(l, r float64) float64 { return l + r })},
	"-": {"-", 1, 2, false, binary(func(l, r float64) float64 { return l - r })},
	"*": {"*", 2, 2, false, binary(func(l, r float64) float64 { return l * r })},
	"/": {"/", 2, 2, false, binary(func(l, r float64) float64 { return l / r })},
	"^": {"^", 3, 2, false, binary(math.Pow)},
	"!": {"!", 4, 1, true, factorial},
}

// LookupOperator returns the operator with the given symbol, if there is one.
func LookupOperator(symbol string) (*Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

func binary(fn func(float64, float64) float64) func([]float64) (float64, error) {
	return func(operands []float64) (float64, error) {
		return fn(operands[0], operands[1]), nil
	}
}

func factorial(operands []float64) (float64, error) {
	if v, ok := umath.Factorial(operands[0]); ok {
		return v, nil
	}
	//
	return math.NaN(), &DomainError{"!", operands[0]}
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z]\w*$`)

// Environment holds the named functions and constants against which
// expressions are evaluated.  An environment is safe for concurrent use, and
// can be frozen to prevent further registrations.
type Environment struct {
	mux       sync.RWMutex
	frozen    bool
	functions map[string]Function
	constants map[string]float64
}

var (
	defaultOnce sync.Once
	defaultEnv  *Environment
)

// NewEnvironment constructs a fresh (mutable) environment seeded with the
// built-in functions and constants.
func NewEnvironment() *Environment {
	return &Environment{
		functions: map[string]Function{
			"sin":  UnaryFunction(math.Sin),
			"cos":  UnaryFunction(math.Cos),
			"tan":  UnaryFunction(math.Tan),
			"asin": UnaryFunction(math.Asin),
			"acos": UnaryFunction(math.Acos),
			"atan": UnaryFunction(math.Atan),
			"log":  UnaryFunction(math.Log),
		},
		constants: map[string]float64{
			"e":  math.E,
			"E":  math.E,
			"pi": math.Pi,
			"PI": math.Pi,
		},
	}
}

// Default returns the shared default environment, which is frozen.  Callers
// wishing to register their own functions or constants should clone it.
func Default() *Environment {
	defaultOnce.Do(func() {
		defaultEnv = NewEnvironment()
		defaultEnv.Freeze()
	})
	//
	return defaultEnv
}

// Clone returns a mutable copy of this environment.
func (e *Environment) Clone() *Environment {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	return &Environment{
		functions: maps.Clone(e.functions),
		constants: maps.Clone(e.constants),
	}
}

// Freeze prevents any further registrations in this environment.
func (e *Environment) Freeze() {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.frozen = true
}

// IsFrozen checks whether this environment has been frozen.
func (e *Environment) IsFrozen() bool {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	return e.frozen
}

// SetConstant registers (or replaces) a named constant.
func (e *Environment) SetConstant(name string, value float64) error {
	if !identifierPattern.MatchString(name) {
		return inputErrorFor(name, "invalid constant name")
	}
	//
	e.mux.Lock()
	defer e.mux.Unlock()
	//
	if e.frozen {
		return fmt.Errorf("cannot set constant %s: %w", name, ErrFrozen)
	}
	//
	log.Debugf("registered constant %s = %v", name, value)
	e.constants[name] = value
	//
	return nil
}

// SetFunction registers (or replaces) a named function.
func (e *Environment) SetFunction(name string, fn Function) error {
	if !identifierPattern.MatchString(name) {
		return inputErrorFor(name, "invalid function name")
	}
	//
	e.mux.Lock()
	defer e.mux.Unlock()
	//
	if e.frozen {
		return fmt.Errorf("cannot set function %s: %w", name, ErrFrozen)
	}
	//
	log.Debugf("registered function %s", name)
	e.functions[name] = fn
	//
	return nil
}

// Constant returns the value of a named constant, if it exists.
func (e *Environment) Constant(name string) (float64, bool) {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	v, ok := e.constants[name]
	//
	return v, ok
}

// Function returns a named function, if it exists.
func (e *Environment) Function(name string) (Function, bool) {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	fn, ok := e.functions[name]
	//
	return fn, ok
}

// Constants returns the names of all registered constants in sorted order.
func (e *Environment) Constants() []string {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	return sortedKeys(e.constants)
}

// Functions returns the names of all registered functions in sorted order.
func (e *Environment) Functions() []string {
	e.mux.RLock()
	defer e.mux.RUnlock()
	//
	return sortedKeys(e.functions)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	//
	return keys
}
