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
package math

import (
	gomath "math"
)

// MaxExactInteger is the largest magnitude for which every integer is exactly
// representable as a float64.
const MaxExactInteger = 1 << 53

// AsInt64 converts a floating point value into an integer, provided it is a
// finite whole number whose magnitude is small enough that the conversion is
// exact.
func AsInt64(value float64) (int64, bool) {
	if gomath.IsNaN(value) || gomath.IsInf(value, 0) {
		return 0, false
	} else if value != gomath.Trunc(value) || gomath.Abs(value) > MaxExactInteger {
		return 0, false
	}
	//
	return int64(value), true
}

// IsWhole checks whether a value is a finite, exactly representable integer.
func IsWhole(value float64) bool {
	_, ok := AsInt64(value)
	return ok
}
