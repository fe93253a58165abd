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
package source

import "fmt"

// Span identifies a contiguous range of characters within some source text.
// Retaining the physical indices (rather than a substring) means errors can
// later be mapped back onto the line which contains them.
type Span struct {
	// Index of the first character covered.
	start int
	// Index one past the last character covered.
	end int
}

// NewSpan constructs a span over [start, end).  A span running backwards is a
// programming error and therefore panics.
func NewSpan(start int, end int) Span {
	if start > end {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}
	//
	return Span{start, end}
}

// Start returns the index of the first character covered by this span.
func (p Span) Start() int {
	return p.start
}

// End returns the index one past the last character covered by this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and another.
func (p Span) Join(other Span) Span {
	return Span{min(p.start, other.start), max(p.end, other.end)}
}

// Contains checks whether a given index falls within this span.
func (p Span) Contains(index int) bool {
	return p.start <= index && index < p.end
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}
