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

// cycle costs are described in "6.2 Instruction Cycle Timings" in the
// ARM7TDMI Data Sheet. the N and S cycles of an instruction are the fetch of
// the instruction following it, which is always at nextPC. the wait states are
// supplied by the Timing implementation and the figures here are the base
// cycles

// non-sequential fetch of a 16bit opcode at nextPC
func (cpu *CPU) nCycle() int {
	return cpu.timing.CodeCycles(&cpu.state.prefetch, cpu.state.nextPC, Halfword, false)
}

// sequential fetch of a 16bit opcode at nextPC
func (cpu *CPU) sCycle() int {
	return cpu.timing.CodeCycles(&cpu.state.prefetch, cpu.state.nextPC, Halfword, true)
}

// data access at address
func (cpu *CPU) dCycle(addr uint32, width Width, sequential bool) int {
	return cpu.timing.DataCycles(&cpu.state.prefetch, addr, width, sequential)
}

// every load and store instruction asks for the bus to prefetch if the
// prefetch buffer is empty
func (cpu *CPU) requestPrefetch() {
	if cpu.state.prefetch.Count == 0 {
		cpu.timing.RequestPrefetch(&cpu.state.prefetch)
	}
}

// the cost of refilling the pipeline after a branch, two sequential fetches and
// one non-sequential fetch plus the base cycles
func (cpu *CPU) branchCycles() int {
	return cpu.sCycle()*2 + cpu.nCycle() + 3
}

// fill the pipeline with the opcodes at addr. addr should be halfword aligned
func (cpu *CPU) refillThumb(addr uint32) {
	cpu.state.nextPC = addr
	cpu.state.registers[rPC] = addr + 2
	cpu.state.pipeline[0] = uint32(cpu.bus.Fetch16(addr))
	cpu.state.pipeline[1] = uint32(cpu.bus.Fetch16(addr + 2))
}

// fill the pipeline with the opcodes at addr. addr should be word aligned
func (cpu *CPU) refillARM(addr uint32) {
	cpu.state.nextPC = addr
	cpu.state.registers[rPC] = addr + 4
	cpu.state.pipeline[0] = cpu.bus.Fetch32(addr)
	cpu.state.pipeline[1] = cpu.bus.Fetch32(addr + 4)
}

// branch to addr in thumb mode. returns the cost of the branch
func (cpu *CPU) branchThumb(addr uint32) int {
	cpu.refillThumb(addr)
	return cpu.branchCycles()
}
