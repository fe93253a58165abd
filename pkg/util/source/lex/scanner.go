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
package lex

import "cmp"

// Scanner inspects the front of a sequence and returns how many items it
// accepts, with zero meaning no match.
type Scanner[T any] func(items []T) uint

// Or accepts whatever the first matching scanner accepts, trying each in the
// order given.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts exactly the given items, in order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// OneOf accepts any single item from a given set.
func OneOf[T comparable](chars ...T) Scanner[T] {
	scanners := make([]Scanner[T], len(chars))
	//
	for i, c := range chars {
		scanners[i] = Unit(c)
	}
	//
	return Or(scanners...)
}

// Within accepts a single item falling within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many repeatedly applies a scanner for as long as it matches.  Since zero
// matches is reported as failure, this effectively means "one or more".
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := scanner(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Sequence accepts each scanner in turn, with each one starting where the
// previous finished.  All scanners must match.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Prefixed accepts a mandatory leading scanner followed by an optional
// trailing one.  For example, identifiers consist of a letter followed by
// zero or more word characters.
func Prefixed[T any](head Scanner[T], tail Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := head(items)
		if n == 0 {
			return 0
		}
		//
		return n + tail(items[n:])
	}
}

// Eof matches only at the end of the input, and is reported as covering a
// single (non-existent) item so that the lexer emits exactly one token for
// it.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
