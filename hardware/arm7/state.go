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

import "fmt"

// State contains all the CPU values that persist from one instruction to the
// next. It is shared by the interpreters for each mode.
type State struct {
	registers [NumRegisters]uint32
	status    Status
	mode      Mode

	// the prefetch pipeline. opcodes are stored as 32bit values regardless of
	// mode. pipeline[0] is the next instruction to be executed
	pipeline [2]uint32

	// address following the instruction currently being executed. between
	// instructions this is the address of the opcode in pipeline[0]. the PC
	// register is always one instruction further ahead
	nextPC uint32

	prefetch Prefetch
}

func (s *State) String() string {
	return fmt.Sprintf("PC: %08x (%s) %s pipeline: %08x %08x prefetch: %03x",
		s.nextPC, s.mode, s.status, s.pipeline[0], s.pipeline[1], s.prefetch.Count)
}

// Snapshot makes a copy of the State.
func (s *State) Snapshot() *State {
	n := *s
	return &n
}

// Snapshot makes a copy of the current CPU state.
func (cpu *CPU) Snapshot() *State {
	return cpu.state.Snapshot()
}

// Plumb a new State into the CPU. The State is copied so the argument can be
// used again.
func (cpu *CPU) Plumb(state *State) {
	cpu.state = state.Snapshot()
}
