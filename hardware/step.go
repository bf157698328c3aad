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

package hardware

import (
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
)

// StepResult describes the instruction executed by Step().
type StepResult struct {
	Disasm arm7.DisasmEntry

	// the number of cycles consumed by the instruction
	Cycles int

	// the instruction caused the frame to end
	EndOfFrame bool
}

// Step the emulation one instruction. If the CPU is being held the rest of the
// frame passes and no instruction is executed.
func (gba *GBA) Step() (StepResult, error) {
	var r StepResult

	if !gba.reset {
		return r, curated.Errorf(NotResetErr)
	}

	if gba.Clock.Hold {
		r.Cycles = gba.frameEnd - gba.Clock.Total
		gba.Clock.Total = gba.frameEnd
		r.EndOfFrame = true
		return r, gba.endFrame()
	}

	// disassemble before executing. the instruction may change the memory
	// it was fetched from
	addr := gba.CPU.ExecutionAddress()
	if gba.CPU.Mode() == arm7.Thumb {
		r.Disasm = arm7.Disassemble(addr, gba.Mem.Fetch16(addr))
	}

	start := gba.Clock.Total

	// a horizon equal to the current cycle count means that only one
	// instruction is executed
	gba.Clock.Horizon = gba.Clock.Total
	err := gba.run()
	gba.Clock.Horizon = gba.frameEnd
	if err != nil {
		return r, err
	}

	r.Cycles = gba.Clock.Total - start

	if gba.Clock.Total >= gba.frameEnd {
		r.EndOfFrame = true
		return r, gba.endFrame()
	}

	return r, nil
}
