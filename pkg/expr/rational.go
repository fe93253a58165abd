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
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var errOutOfRange = errors.New("number out of range")

// rationalize converts a decimal literal (e.g. "1.25") into an exact node:
// either an integer constant, or a fraction in lowest terms (e.g. 5/4).
func rationalize(literal string) (*Node, error) {
	// Literals such as ".5" have no integer part
	if strings.HasPrefix(literal, ".") {
		literal = "0" + literal
	}
	//
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", literal)
	}
	//
	if n, ok := fromDecimal(d); ok {
		return n, nil
	}
	//
	return nil, errOutOfRange
}

// NewNumber converts a floating point value into an exact node, which is
// either an integer constant or a fraction in lowest terms.  Where the value
// has more precision than fits in a fraction of 64-bit integers, it is
// rounded.  This panics for values which are not finite, or whose magnitude
// exceeds the range of a 64-bit integer.
func NewNumber(value float64) *Node {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("cannot represent %v exactly", value))
	}
	//
	d := decimal.NewFromFloat(value)
	//
	for places := max(0, -d.Exponent()); places >= 0; places-- {
		if n, ok := fromDecimal(d.Round(places)); ok {
			return n
		}
	}
	//
	panic(fmt.Sprintf("cannot represent %v exactly", value))
}

func fromDecimal(d decimal.Decimal) (*Node, bool) {
	var (
		num = d.Coefficient()
		den = big.NewInt(1)
		ten = big.NewInt(10)
		exp = big.NewInt(int64(d.Exponent()))
	)
	// Move the decimal point
	if exp.Sign() >= 0 {
		num.Mul(num, ten.Exp(ten, exp, nil))
	} else {
		den.Exp(ten, exp.Neg(exp), nil)
	}
	// Reduce to lowest terms
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	//
	if gcd.Sign() != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	//
	if !num.IsInt64() || !den.IsInt64() {
		return nil, false
	} else if den.Int64() == 1 {
		return NewInteger(num.Int64()), true
	}
	//
	return NewFraction(num.Int64(), den.Int64()), true
}
