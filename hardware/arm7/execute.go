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
	"github.com/jetsetilly/gsfplayer/curated"
)

// Clock is owned by the scheduler. The CPU adds the cost of every instruction
// to Total and stops executing when Total reaches Horizon, or when Hold is
// true, or when Pending is not zero.
type Clock struct {
	Total   int
	Horizon int
	Hold    bool
	Pending int
}

// Stop is the reason Run() returned control to the scheduler.
type Stop int

// List of valid Stop values.
const (
	StopHorizon Stop = iota
	StopModeSwitch
	StopHold
	StopInterrupt
	StopFatal
)

func (s Stop) String() string {
	switch s {
	case StopHorizon:
		return "horizon"
	case StopModeSwitch:
		return "mode switch"
	case StopHold:
		return "hold"
	case StopInterrupt:
		return "interrupt"
	case StopFatal:
		return "fatal"
	}
	return "unknown"
}

// Interpreter executes instructions for one Mode. Implementations should
// return when the Clock indicates or when the CPU changes mode.
type Interpreter interface {
	Run(cpu *CPU, clk *Clock) (Stop, error)
}

// Run executes instructions with the interpreter for the current mode.
func (cpu *CPU) Run(clk *Clock) (Stop, error) {
	if cpu.intr == nil {
		return StopFatal, curated.Errorf(NoInterrupts)
	}
	return cpu.interpreters[cpu.state.mode].Run(cpu, clk)
}

// the outcome of a single instruction
type outcome int

const (
	completed outcome = iota
	switched
	fatal
)

// result of an instruction handler. a cycles value of zero means that the
// handler has not calculated a cost and the default cost should be used
type result struct {
	cycles int
	kind   outcome
	err    error
}

func cost(cycles int) result {
	return result{cycles: cycles}
}

type thumbInterpreter struct{}

// Run implements the Interpreter interface.
func (_ thumbInterpreter) Run(cpu *CPU, clk *Clock) (Stop, error) {
	s := cpu.state

	for {
		// pop the head of the pipeline
		opcode := uint16(s.pipeline[0])
		s.pipeline[0] = s.pipeline[1]

		s.prefetch.saturate()

		// address of the instruction being executed
		executingPC := s.nextPC

		s.nextPC = s.registers[rPC]
		s.registers[rPC] += 2
		s.pipeline[1] = uint32(cpu.bus.Fetch16(s.nextPC + 2))

		r := thumbTable[opcode>>6](cpu, opcode)
		if r.kind == fatal {
			return StopFatal, r.err
		}

		// the interrupt handler may have plumbed a new state
		s = cpu.state

		if r.cycles == 0 {
			r.cycles = 1 + cpu.timing.CodeCycles(&s.prefetch, executingPC, Halfword, true)
		}
		clk.Total += r.cycles

		if r.kind == switched || s.mode != Thumb {
			return StopModeSwitch, nil
		}
		if clk.Hold {
			return StopHold, nil
		}
		if clk.Pending != 0 {
			return StopInterrupt, nil
		}
		if clk.Total >= clk.Horizon {
			return StopHorizon, nil
		}
	}
}

// the interpreter for a mode that has no implementation
type unsupported struct {
	mode Mode
}

// Run implements the Interpreter interface.
func (u unsupported) Run(_ *CPU, _ *Clock) (Stop, error) {
	return StopFatal, curated.Errorf(UnsupportedMode, u.mode)
}
