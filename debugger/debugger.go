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

package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gsfplayer/debugger/easyterm"
	"github.com/jetsetilly/gsfplayer/debugger/govern"
	"github.com/jetsetilly/gsfplayer/hardware"
)

// Input is the source of key presses. Implemented by easyterm.Terminal.
type Input interface {
	ReadKey() (byte, error)
}

// DefaultContinueLimit is the number of frames a continue will run for
// without reaching a breakpoint.
const DefaultContinueLimit = 600

// Debugger steps through the emulation one instruction at a time.
type Debugger struct {
	gba    *hardware.GBA
	input  Input
	output io.Writer

	bp    breakpoints
	state govern.State

	// the maximum number of frames a continue command will run for
	ContinueLimit int
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The GBA should have been reset.
func NewDebugger(gba *hardware.GBA, input Input, output io.Writer) *Debugger {
	return &Debugger{
		gba:           gba,
		input:         input,
		output:        output,
		state:         govern.Initialising,
		ContinueLimit: DefaultContinueLimit,
	}
}

// AddBreakpoint adds the address to the list of breakpoints.
func (dbg *Debugger) AddBreakpoint(addr uint32) {
	dbg.bp.add(addr)
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Mode returns the emulation mode the debugger implements.
func (dbg *Debugger) Mode() govern.Mode {
	return govern.ModeStep
}

func (dbg *Debugger) printf(format string, a ...any) {
	fmt.Fprintf(dbg.output, format, a...)
}

// Start the input loop. Returns when the quit key has been pressed, the input
// has been exhausted or the emulation has returned an error.
func (dbg *Debugger) Start() error {
	dbg.state = govern.Paused
	dbg.printf("stepping from %08x (h for help)\n", dbg.gba.CPU.ExecutionAddress())

	for dbg.state != govern.Ending {
		key, err := dbg.input.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				dbg.state = govern.Ending
				break
			}
			return err
		}

		err = dbg.command(key)
		if err != nil {
			dbg.state = govern.Ending
			return err
		}
	}

	return nil
}

func (dbg *Debugger) command(key byte) error {
	switch key {
	case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, 's':
		dbg.state = govern.Stepping
		_, err := dbg.step()
		dbg.state = govern.Paused
		return err

	case 'f':
		dbg.state = govern.Running
		defer func() { dbg.state = govern.Paused }()
		for {
			end, err := dbg.step()
			if err != nil || end {
				return err
			}
			if dbg.bp.check(dbg.gba.CPU.ExecutionAddress()) {
				dbg.printf("breakpoint at %08x\n", dbg.gba.CPU.ExecutionAddress())
				return nil
			}
		}

	case 'c':
		dbg.state = govern.Running
		defer func() { dbg.state = govern.Paused }()
		limit := dbg.gba.Frame() + dbg.ContinueLimit
		for dbg.gba.Frame() < limit {
			if _, err := dbg.gba.Step(); err != nil {
				return err
			}
			if dbg.bp.check(dbg.gba.CPU.ExecutionAddress()) {
				dbg.printf("breakpoint at %08x (frame %d)\n", dbg.gba.CPU.ExecutionAddress(), dbg.gba.Frame())
				return nil
			}
		}
		dbg.printf("no breakpoint after %d frames\n", dbg.ContinueLimit)

	case 'r':
		dbg.printf("%s\n", dbg.gba.String())

	case 'b':
		dbg.printf("%s\n", dbg.bp.String())

	case 'q', easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
		dbg.state = govern.Ending

	case 'h', '?':
		dbg.printf("space/return: step  f: frame  c: continue  r: registers  b: breakpoints  q: quit\n")

	default:
		dbg.printf("unknown key (h for help)\n")
	}

	return nil
}

// step a single instruction and print the result. returns true if the frame
// ended
func (dbg *Debugger) step() (bool, error) {
	r, err := dbg.gba.Step()
	if err != nil {
		return false, err
	}

	if r.Disasm.Address == "" {
		dbg.printf("held for %d cycles\n", r.Cycles)
	} else {
		dbg.printf("%s  %04x  %-6s %-24s %d\n", r.Disasm.Address, r.Disasm.Opcode, r.Disasm.Operator, r.Disasm.Operand, r.Cycles)
	}

	if r.EndOfFrame {
		dbg.printf("end of frame %d\n", dbg.gba.Frame())
	}

	return r.EndOfFrame, nil
}
