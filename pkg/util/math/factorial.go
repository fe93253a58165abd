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

// Factorial computes n! for a non-negative whole number n.  The second
// result is false when n is negative or not whole.  An unknown (NaN)
// argument yields an unknown result, and large arguments overflow to
// +Inf.
func Factorial(n float64) (float64, bool) {
	if gomath.IsNaN(n) {
		return n, true
	} else if n < 0 || n != gomath.Trunc(n) || gomath.IsInf(n, 0) {
		return 0, false
	}
	//
	result := float64(1)
	//
	for i := float64(2); i <= n; i++ {
		result *= i
		//
		if gomath.IsInf(result, 1) {
			break
		}
	}
	//
	return result, true
}
