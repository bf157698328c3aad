// This file is part of gsfplayer.
//
// gsfplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gsfplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gsfplayer.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak mode so that single key presses can be
// read without waiting for the return key, and restores the terminal
// afterwards.
package easyterm

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/pkg/term"
)

// Sentinal error patterns.
const (
	TerminalError = "easyterm: %v"
)

// DefaultDevice is the controlling terminal on posix systems.
const DefaultDevice = "/dev/tty"

// Terminal reads key presses from a terminal device in cbreak mode.
type Terminal struct {
	tty    *term.Term
	output io.Writer
}

// Open the terminal device and put it into cbreak mode. Output is written to
// the io.Writer and not to the device.
func Open(device string, output io.Writer) (*Terminal, error) {
	tty, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Terminal{
		tty:    tty,
		output: output,
	}, nil
}

// ReadKey blocks until a single key has been pressed. Escape sequences are
// returned one byte at a time.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	_, err := pt.tty.Read(b)
	if err != nil {
		return 0, curated.Errorf(TerminalError, err)
	}
	return b[0], nil
}

// Flush discards any unread input.
func (pt *Terminal) Flush() error {
	return pt.tty.Flush()
}

// Print writes the formatted string to the output.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// CleanUp restores the terminal to the mode it was in before Open() and
// closes the device.
func (pt *Terminal) CleanUp() error {
	err := pt.tty.Restore()
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	err = pt.tty.Close()
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
