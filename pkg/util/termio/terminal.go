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
package termio

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal provides line-based interaction with the user, with editing and
// history supplied by the underlying terminal.
type Terminal struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// IsTerminal checks whether standard input is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewTerminal constructs a new terminal which displays a given prompt before
// reading each line.
func NewTerminal(prompt string) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	// Grab terminal screen
	terminal := term.NewTerminal(screen, prompt)
	//
	return &Terminal{fd, terminal, state}, nil
}

// ReadLine reads the next line of input, returning io.EOF when the user ends
// the session (e.g. with Ctrl-D).
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Write output to the terminal.  Newlines are translated as necessary for raw
// mode.
func (t *Terminal) Write(bytes []byte) (int, error) {
	return t.xterm.Write(bytes)
}

// Restore returns the terminal to the state it was in before this terminal was
// constructed.
func (t *Terminal) Restore() error {
	return term.Restore(t.fd, t.state)
}
