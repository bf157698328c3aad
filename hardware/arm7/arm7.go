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

package arm7

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
)

// register names.
const (
	rSP = 13 + iota
	rLR
	rPC
	NumRegisters
)

// Exported names of the special purpose registers.
const (
	SP = rSP
	LR = rLR
	PC = rPC
)

// Error patterns returned by the CPU.
const (
	FatalError       = "arm7: %v"
	NoInterrupts     = "arm7: no interrupt handler plumbed"
	UnsupportedMode  = "arm7: %v mode is not supported"
	InterruptHandler = "arm7: interrupt handler: %v"
)

// Mode indicates the instruction set the CPU is executing.
type Mode int

// List of valid Mode values.
const (
	Thumb Mode = iota
	ARM
)

func (m Mode) String() string {
	switch m {
	case Thumb:
		return "thumb"
	case ARM:
		return "arm"
	}
	return "unknown"
}

// CPU is the ARM7TDMI as found in the GBA. All state that survives from one
// instruction to the next is in the State type.
type CPU struct {
	prefs  *preferences.ARM7Preferences
	bus    Bus
	timing Timing
	intr   Interrupts

	state *State

	// interpreter to use for each mode. the CPU will execute with the
	// interpreter indicated by State.mode. by default the ARM interpreter is
	// the unsupported type
	interpreters [2]Interpreter
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// Interrupts implementation will usually require a reference to the CPU so it
// is added separately with PlumbInterrupts().
func NewCPU(prefs *preferences.ARM7Preferences, bus Bus, timing Timing) *CPU {
	cpu := &CPU{
		prefs:  prefs,
		bus:    bus,
		timing: timing,
		state:  &State{},
	}
	cpu.interpreters[Thumb] = thumbInterpreter{}
	cpu.interpreters[ARM] = unsupported{mode: ARM}
	return cpu
}

// PlumbInterrupts attaches the Interrupts implementation to the CPU.
func (cpu *CPU) PlumbInterrupts(intr Interrupts) {
	cpu.intr = intr
}

// PlumbInterpreter replaces the interpreter used for the specified mode.
func (cpu *CPU) PlumbInterpreter(mode Mode, interpreter Interpreter) {
	cpu.interpreters[mode] = interpreter
}

// PlumbBus replaces the bus and timing implementations. Existing state is
// retained.
func (cpu *CPU) PlumbBus(bus Bus, timing Timing) {
	cpu.bus = bus
	cpu.timing = timing
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	for i, r := range cpu.state.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	s.WriteString(fmt.Sprintf("\n%s %s", cpu.state.status, cpu.state.mode))
	return s.String()
}

// AllowLogging implements the logger.Permission interface.
func (cpu *CPU) AllowLogging() bool {
	if cpu.prefs == nil {
		return true
	}
	return cpu.prefs.LogUndefined.Get().(bool)
}

// Reset the CPU. Registers and flags are cleared and execution will begin at
// the entry address. The mode is selected by bit 0 of the entry address in the
// same way as the BX instruction.
func (cpu *CPU) Reset(entry uint32) {
	cpu.state = &State{}
	cpu.state.status.reset()
	if entry&0x01 == 0x01 {
		cpu.SetPC(entry, Thumb)
	} else {
		cpu.SetPC(entry, ARM)
	}
}

// Register returns the current value of the numbered register. The value of
// the PC will be the address of the next instruction to be fetched.
func (cpu *CPU) Register(r int) uint32 {
	return cpu.state.registers[r]
}

// SetRegister sets the value of the numbered register. Setting the PC with
// this function does not cause the pipeline to be refilled. Use SetPC() for
// that.
func (cpu *CPU) SetRegister(r int, v uint32) {
	cpu.state.registers[r] = v
}

// Status returns a copy of the condition flags.
func (cpu *CPU) Status() Status {
	return cpu.state.status
}

// SetStatus sets the condition flags.
func (cpu *CPU) SetStatus(sr Status) {
	cpu.state.status = sr
}

// Mode returns the current instruction set mode.
func (cpu *CPU) Mode() Mode {
	return cpu.state.mode
}

// ExecutionAddress returns the address of the next instruction to be executed.
// This is the address of the opcode at the head of the pipeline.
func (cpu *CPU) ExecutionAddress() uint32 {
	return cpu.state.nextPC
}

// SetPC changes the flow of execution to the specified address. The pipeline is
// refilled and the prefetch buffer flushed. The low bits of the address are
// cleared according to the mode.
func (cpu *CPU) SetPC(addr uint32, mode Mode) {
	cpu.state.mode = mode
	cpu.state.prefetch.Flush()
	if mode == Thumb {
		cpu.refillThumb(addr &^ 0x01)
	} else {
		cpu.refillARM(addr &^ 0x03)
	}
}

func (cpu *CPU) fatal(err error) result {
	return result{kind: fatal, err: curated.Errorf(FatalError, err)}
}
