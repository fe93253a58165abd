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

import (
	"fmt"
	"strings"
)

// Line describes a single physical line of some source text, along with its
// position in that text.
type Line struct {
	// Original text
	text []rune
	// Span of this line within the original text.
	span Span
	// Line number (counting from 1).
	number int
}

// String returns the contents of this line, excluding any terminating newline.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number, where the first line is numbered 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line within the
// original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters on this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File is a named piece of source text.  For expressions this is typically a
// single line typed on the command line, though expressions read from files
// (e.g. matrix rows) retain their filename for error reporting.
type File struct {
	name     string
	contents []rune
}

// NewSourceFile constructs a source file from a given name and its raw bytes.
func NewSourceFile(name string, bytes []byte) *File {
	return &File{name, []rune(string(bytes))}
}

// NewSourceText constructs an anonymous source file from a string.
func NewSourceText(text string) *File {
	return &File{"expr", []rune(text)}
}

// Filename returns the name associated with this source file.
func (s *File) Filename() string {
	return s.name
}

// Contents returns the characters making up this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the characters covered by a given span as a string.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	start := min(span.start, end)
	//
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error covering a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// EnclosingLine determines the line of this file which contains the start of
// the given span.  A span positioned at (or beyond) the end of the file is
// reported against the last line.
func (s *File) EnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == span.start {
			return Line{s.contents, Span{start, endOfLine(i, s.contents)}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// SyntaxError is an error which arose from some portion of the source text,
// such as an unbalanced bracket.  The span allows the offending text to be
// highlighted.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the file this error was reported against.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of text this error covers.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the error message, without any positional information.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}

// EnclosingLine returns the line containing the start of this error.
func (p *SyntaxError) EnclosingLine() Line {
	return p.srcfile.EnclosingLine(p.span)
}

// Highlight renders the enclosing line followed by a row of carets underneath
// the offending text.  A zero-length span (e.g. end of input) still receives
// a single caret.
func (p *SyntaxError) Highlight() string {
	var (
		builder strings.Builder
		line    = p.EnclosingLine()
		offset  = max(0, p.span.Start()-line.Start())
		length  = max(1, min(line.Length()-offset, p.span.Length()))
	)
	//
	builder.WriteString(line.String())
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", offset))
	builder.WriteString(strings.Repeat("^", length))
	//
	return builder.String()
}

func endOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
