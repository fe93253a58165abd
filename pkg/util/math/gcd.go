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

// Gcd returns the greatest common divisor of two integers.  The result is
// always non-negative, and Gcd(0, 0) is 0.
func Gcd(a int64, b int64) int64 {
	a, b = Abs(a), Abs(b)
	//
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// Abs returns the absolute value of an integer.
func Abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	//
	return a
}

// Reduce divides a numerator and denominator by their greatest common
// divisor, such that the resulting denominator is positive.  A zero
// denominator is returned unchanged.
func Reduce(num int64, den int64) (int64, int64) {
	if den == 0 {
		return num, den
	} else if den < 0 {
		num, den = -num, -den
	}
	//
	if g := Gcd(num, den); g > 1 {
		return num / g, den / g
	}
	//
	return num, den
}
