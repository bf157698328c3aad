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
	"math/bits"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
)

// instruction handlers for the thumb instruction set. the format numbers refer
// to "5 Thumb Instruction Set" in the ARM7TDMI Data Sheet.
//
// handlers that return a cost of zero are charged the default cost by the
// interpreter loop

func thumbUndefined(cpu *CPU, opcode uint16) result {
	logger.Logf(cpu, "ARM7", "undefined thumb instruction (%04x) at %08x", opcode, cpu.state.nextPC-2)
	if err := cpu.intr.UndefinedInstruction(opcode); err != nil {
		return cpu.fatal(curated.Errorf(InterruptHandler, err))
	}
	return cost(0)
}

// format 1 - Move shifted register

func thumbLSLImm(cpu *CPU, opcode uint16) result {
	shift := uint32(opcode&0x07c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	srcVal := cpu.state.registers[srcReg]

	// if immed_5 == 0
	//	C Flag = unaffected
	//	Rd = Rm
	// else /* immed_5 > 0 */
	//	C Flag = Rm[32 - immed_5]
	//	Rd = Rm Logical_Shift_Left immed_5
	if shift == 0 {
		cpu.state.registers[destReg] = srcVal
	} else {
		cpu.state.status.Carry = (srcVal>>(32-shift))&0x01 == 0x01
		cpu.state.registers[destReg] = srcVal << shift
	}

	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])

	return cost(0)
}

func thumbLSRImm(cpu *CPU, opcode uint16) result {
	shift := uint32(opcode&0x07c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	srcVal := cpu.state.registers[srcReg]

	// if immed_5 == 0
	//		C Flag = Rm[31]
	//		Rd = 0
	// else /* immed_5 > 0 */
	//		C Flag = Rm[immed_5 - 1]
	//		Rd = Rm Logical_Shift_Right immed_5
	if shift == 0 {
		cpu.state.status.Carry = srcVal&0x80000000 == 0x80000000
		cpu.state.registers[destReg] = 0x00
	} else {
		cpu.state.status.Carry = (srcVal>>(shift-1))&0x01 == 0x01
		cpu.state.registers[destReg] = srcVal >> shift
	}

	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])

	return cost(0)
}

func thumbASRImm(cpu *CPU, opcode uint16) result {
	shift := uint32(opcode&0x07c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	srcVal := cpu.state.registers[srcReg]

	// if immed_5 == 0
	//		C Flag = Rm[31]
	//		if Rm[31] == 0 then
	//				Rd = 0
	//		else /* Rm[31] == 1 */]
	//				Rd = 0xFFFFFFFF
	// else /* immed_5 > 0 */
	//		C Flag = Rm[immed_5 - 1]
	//		Rd = Rm Arithmetic_Shift_Right immed_5
	if shift == 0 {
		cpu.state.status.Carry = srcVal&0x80000000 == 0x80000000
		if cpu.state.status.Carry {
			cpu.state.registers[destReg] = 0xffffffff
		} else {
			cpu.state.registers[destReg] = 0x00000000
		}
	} else {
		cpu.state.status.Carry = (int32(srcVal)>>(shift-1))&0x01 == 0x01
		cpu.state.registers[destReg] = uint32(int32(srcVal) >> shift)
	}

	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])

	return cost(0)
}

// format 2 - Add/subtract

func thumbAddReg(cpu *CPU, opcode uint16) result {
	val := cpu.state.registers[(opcode&0x01c0)>>6]
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	cpu.state.registers[destReg] = cpu.state.status.add(cpu.state.registers[srcReg], val, 0)
	return cost(0)
}

func thumbSubReg(cpu *CPU, opcode uint16) result {
	val := cpu.state.registers[(opcode&0x01c0)>>6]
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	cpu.state.registers[destReg] = cpu.state.status.sub(cpu.state.registers[srcReg], val, 0)
	return cost(0)
}

func thumbAddImm3(cpu *CPU, opcode uint16) result {
	imm := uint32(opcode&0x01c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	cpu.state.registers[destReg] = cpu.state.status.add(cpu.state.registers[srcReg], imm, 0)
	return cost(0)
}

func thumbSubImm3(cpu *CPU, opcode uint16) result {
	imm := uint32(opcode&0x01c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07
	cpu.state.registers[destReg] = cpu.state.status.sub(cpu.state.registers[srcReg], imm, 0)
	return cost(0)
}

// format 3 - Move/compare/add/subtract immediate

func thumbMovImm(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)

	// an 8bit value can never be negative. carry and overflow are unaffected
	cpu.state.registers[destReg] = imm
	cpu.state.status.Negative = false
	cpu.state.status.isZero(imm)

	return cost(0)
}

func thumbCmpImm(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)
	cpu.state.status.sub(cpu.state.registers[destReg], imm, 0)
	return cost(0)
}

func thumbAddImm8(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)
	cpu.state.registers[destReg] = cpu.state.status.add(cpu.state.registers[destReg], imm, 0)
	return cost(0)
}

func thumbSubImm8(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)
	cpu.state.registers[destReg] = cpu.state.status.sub(cpu.state.registers[destReg], imm, 0)
	return cost(0)
}

// format 4 - ALU operations
//
// the source register is in bits 3 to 5 and the destination register in bits
// 0 to 2 for all ALU operations

func aluRegisters(opcode uint16) (uint16, uint16) {
	return (opcode & 0x38) >> 3, opcode & 0x07
}

func thumbAND(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] &= cpu.state.registers[srcReg]
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])
	return cost(0)
}

func thumbEOR(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] ^= cpu.state.registers[srcReg]
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])
	return cost(0)
}

// the shift amount for the register shift and rotate operations is the bottom
// byte of the source register. an amount of zero leaves both the value and the
// carry flag unchanged

func thumbLSLReg(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	shift := cpu.state.registers[srcReg] & 0xff
	v := cpu.state.registers[destReg]

	if shift > 0 {
		if shift < 32 {
			cpu.state.status.Carry = (v>>(32-shift))&0x01 == 0x01
			v <<= shift
		} else if shift == 32 {
			cpu.state.status.Carry = v&0x01 == 0x01
			v = 0
		} else {
			cpu.state.status.Carry = false
			v = 0
		}
		cpu.state.registers[destReg] = v
	}

	cpu.state.status.isNegative(v)
	cpu.state.status.isZero(v)

	// "7.6 Data Operations" the internal cycle of a register specified shift
	return cost(cpu.nCycle() + 2)
}

func thumbLSRReg(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	shift := cpu.state.registers[srcReg] & 0xff
	v := cpu.state.registers[destReg]

	if shift > 0 {
		if shift < 32 {
			cpu.state.status.Carry = (v>>(shift-1))&0x01 == 0x01
			v >>= shift
		} else if shift == 32 {
			cpu.state.status.Carry = v&0x80000000 == 0x80000000
			v = 0
		} else {
			cpu.state.status.Carry = false
			v = 0
		}
		cpu.state.registers[destReg] = v
	}

	cpu.state.status.isNegative(v)
	cpu.state.status.isZero(v)

	return cost(cpu.nCycle() + 2)
}

func thumbASRReg(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	shift := cpu.state.registers[srcReg] & 0xff
	v := cpu.state.registers[destReg]

	if shift > 0 {
		if shift < 32 {
			cpu.state.status.Carry = (int32(v)>>(shift-1))&0x01 == 0x01
			v = uint32(int32(v) >> shift)
		} else if v&0x80000000 == 0x80000000 {
			cpu.state.status.Carry = true
			v = 0xffffffff
		} else {
			cpu.state.status.Carry = false
			v = 0
		}
		cpu.state.registers[destReg] = v
	}

	cpu.state.status.isNegative(v)
	cpu.state.status.isZero(v)

	return cost(cpu.nCycle() + 2)
}

func thumbADC(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	c := cpu.state.status.carryIn()
	cpu.state.registers[destReg] = cpu.state.status.add(cpu.state.registers[destReg], cpu.state.registers[srcReg], c)
	return cost(0)
}

func thumbSBC(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	b := cpu.state.status.borrowIn()
	cpu.state.registers[destReg] = cpu.state.status.sub(cpu.state.registers[destReg], cpu.state.registers[srcReg], b)
	return cost(0)
}

func thumbRORReg(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	shift := cpu.state.registers[srcReg] & 0xff
	v := cpu.state.registers[destReg]

	if shift > 0 {
		shift &= 0x1f
		if shift == 0 {
			cpu.state.status.Carry = v&0x80000000 == 0x80000000
		} else {
			cpu.state.status.Carry = (v>>(shift-1))&0x01 == 0x01
			v = bits.RotateLeft32(v, -int(shift))
			cpu.state.registers[destReg] = v
		}
	}

	cpu.state.status.isNegative(v)
	cpu.state.status.isZero(v)

	return cost(cpu.nCycle() + 2)
}

func thumbTST(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	v := cpu.state.registers[destReg] & cpu.state.registers[srcReg]
	cpu.state.status.isNegative(v)
	cpu.state.status.isZero(v)
	return cost(0)
}

func thumbNEG(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] = cpu.state.status.sub(0, cpu.state.registers[srcReg], 0)
	return cost(0)
}

func thumbCMP(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.status.sub(cpu.state.registers[destReg], cpu.state.registers[srcReg], 0)
	return cost(0)
}

func thumbCMN(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.status.add(cpu.state.registers[destReg], cpu.state.registers[srcReg], 0)
	return cost(0)
}

func thumbORR(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] |= cpu.state.registers[srcReg]
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])
	return cost(0)
}

func thumbMUL(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)

	m := cpu.state.registers[destReg]
	cpu.state.registers[destReg] = cpu.state.registers[srcReg] * m
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])

	// "7.7 Multiply and Multiply Accumulate" the number of internal cycles
	// depends on how many of the top bytes of the multiplier are all zero or
	// all one
	if int32(m) < 0 {
		m = ^m
	}
	var cycles int
	switch {
	case m&0xffffff00 == 0:
		cycles = 1
	case m&0xffff0000 == 0:
		cycles = 2
	case m&0xff000000 == 0:
		cycles = 3
	default:
		cycles = 4
	}

	// the prefetch buffer continues to fill during the internal cycles
	cpu.state.prefetch.idle(cycles)

	return cost(cycles + cpu.nCycle() + 1)
}

func thumbBIC(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] &= ^cpu.state.registers[srcReg]
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])
	return cost(0)
}

func thumbMVN(cpu *CPU, opcode uint16) result {
	srcReg, destReg := aluRegisters(opcode)
	cpu.state.registers[destReg] = ^cpu.state.registers[srcReg]
	cpu.state.status.isNegative(cpu.state.registers[destReg])
	cpu.state.status.isZero(cpu.state.registers[destReg])
	return cost(0)
}

// format 5 - Hi register operations/branch exchange
//
// the H1 flag (bit 7) extends the destination register and the H2 flag (bit 6)
// extends the source register

func hiRegisters(opcode uint16) (uint16, uint16) {
	srcReg := (opcode & 0x78) >> 3
	destReg := (opcode & 0x07) | (opcode&0x80)>>4
	return srcReg, destReg
}

// the PC is the destination of a hi register ADD or MOV. note that the
// prefetch buffer is not flushed
func (cpu *CPU) hiRegisterBranch() int {
	return cpu.branchThumb(cpu.state.registers[rPC] &^ 0x01)
}

func thumbAddHi(cpu *CPU, opcode uint16) result {
	srcReg, destReg := hiRegisters(opcode)
	cpu.state.registers[destReg] += cpu.state.registers[srcReg]
	if destReg == rPC {
		return cost(cpu.hiRegisterBranch())
	}
	return cost(0)
}

func thumbCmpHi(cpu *CPU, opcode uint16) result {
	srcReg, destReg := hiRegisters(opcode)
	cpu.state.status.sub(cpu.state.registers[destReg], cpu.state.registers[srcReg], 0)
	return cost(0)
}

func thumbMovHi(cpu *CPU, opcode uint16) result {
	srcReg, destReg := hiRegisters(opcode)
	cpu.state.registers[destReg] = cpu.state.registers[srcReg]
	if destReg == rPC {
		return cost(cpu.hiRegisterBranch())
	}

	// a MOV to a lo register is charged as a sequential fetch. a MOV to a hi
	// register that isn't the PC is charged the default cost
	if destReg < 8 {
		return cost(cpu.sCycle() + 1)
	}
	return cost(0)
}

func thumbBX(cpu *CPU, opcode uint16) result {
	srcReg := (opcode & 0x78) >> 3
	addr := cpu.state.registers[srcReg]

	cpu.state.prefetch.Flush()

	// bit 0 of the address selects the instruction set at the new address
	if addr&0x01 == 0x01 {
		return cost(cpu.branchThumb(addr &^ 0x01))
	}

	cpu.state.mode = ARM
	cpu.refillARM(addr &^ 0x03)

	s := cpu.timing.CodeCycles(&cpu.state.prefetch, cpu.state.nextPC, Word, true)
	n := cpu.timing.CodeCycles(&cpu.state.prefetch, cpu.state.nextPC, Word, false)
	return result{cycles: s*2 + n + 3, kind: switched}
}

// format 6 - PC-relative load

func thumbLoadPCRelative(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	cpu.requestPrefetch()

	// "Bit 1 of the PC value is forced to zero for the purpose of this
	// calculation, so the address is always word-aligned"
	addr := (cpu.state.registers[rPC] &^ 0x03) + uint32(opcode&0xff)<<2
	cpu.state.registers[destReg] = cpu.bus.Read32(addr)

	cpu.state.prefetch.Flush()
	return cost(3 + cpu.dCycle(addr, Word, false) + cpu.nCycle())
}

// format 7 - Load/store with register offset
// format 8 - Load/store sign-extended byte/halfword
//
// the base register is in bits 3 to 5 and the offset register in bits 6 to 8

func registerOffsetAddress(cpu *CPU, opcode uint16) uint32 {
	baseReg := (opcode & 0x38) >> 3
	offsetReg := (opcode & 0x01c0) >> 6
	return cpu.state.registers[baseReg] + cpu.state.registers[offsetReg]
}

func thumbStrReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.bus.Write32(addr, cpu.state.registers[opcode&0x07])
	return cost(cpu.dCycle(addr, Word, false) + cpu.nCycle() + 2)
}

func thumbStrhReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.bus.Write16(addr, uint16(cpu.state.registers[opcode&0x07]))
	return cost(cpu.dCycle(addr, Halfword, false) + cpu.nCycle() + 2)
}

func thumbStrbReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.bus.Write8(addr, uint8(cpu.state.registers[opcode&0x07]))
	return cost(cpu.dCycle(addr, Byte, false) + cpu.nCycle() + 2)
}

func thumbLdsbReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.state.registers[opcode&0x07] = cpu.bus.ReadSigned8(addr)
	return cost(3 + cpu.dCycle(addr, Byte, false) + cpu.nCycle())
}

func thumbLdrReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read32(addr)
	return cost(3 + cpu.dCycle(addr, Word, false) + cpu.nCycle())
}

func thumbLdrhReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read16(addr)

	// charged as a word access
	return cost(3 + cpu.dCycle(addr, Word, false) + cpu.nCycle())
}

func thumbLdrbReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read8(addr)
	return cost(3 + cpu.dCycle(addr, Byte, false) + cpu.nCycle())
}

func thumbLdshReg(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := registerOffsetAddress(cpu, opcode)
	cpu.state.registers[opcode&0x07] = cpu.bus.ReadSigned16(addr)
	return cost(3 + cpu.dCycle(addr, Halfword, false) + cpu.nCycle())
}

// format 9 - Load/store with immediate offset
// format 10 - Load/store halfword
//
// the 5bit offset in bits 6 to 10 is scaled by the size of the transfer

func immediateOffsetAddress(cpu *CPU, opcode uint16, scale uint32) uint32 {
	baseReg := (opcode & 0x38) >> 3
	offset := uint32(opcode&0x07c0) >> 6
	return cpu.state.registers[baseReg] + offset<<scale
}

func thumbStrImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 2)
	cpu.bus.Write32(addr, cpu.state.registers[opcode&0x07])
	return cost(cpu.dCycle(addr, Word, false) + cpu.nCycle() + 2)
}

func thumbLdrImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 2)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read32(addr)
	return cost(3 + cpu.dCycle(addr, Word, false) + cpu.nCycle())
}

func thumbStrbImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 0)
	cpu.bus.Write8(addr, uint8(cpu.state.registers[opcode&0x07]))
	return cost(cpu.dCycle(addr, Byte, false) + cpu.nCycle() + 2)
}

func thumbLdrbImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 0)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read8(addr)
	return cost(3 + cpu.dCycle(addr, Byte, false) + cpu.nCycle())
}

func thumbStrhImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 1)
	cpu.bus.Write16(addr, uint16(cpu.state.registers[opcode&0x07]))
	return cost(cpu.dCycle(addr, Halfword, false) + cpu.nCycle() + 2)
}

func thumbLdrhImm(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()
	addr := immediateOffsetAddress(cpu, opcode, 1)
	cpu.state.registers[opcode&0x07] = cpu.bus.Read16(addr)
	return cost(3 + cpu.dCycle(addr, Halfword, false) + cpu.nCycle())
}

// format 11 - SP-relative load/store

func thumbStrSP(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	cpu.requestPrefetch()
	addr := cpu.state.registers[rSP] + uint32(opcode&0xff)<<2
	cpu.bus.Write32(addr, cpu.state.registers[destReg])
	return cost(cpu.dCycle(addr, Word, false) + cpu.nCycle() + 2)
}

func thumbLdrSP(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	cpu.requestPrefetch()
	addr := cpu.state.registers[rSP] + uint32(opcode&0xff)<<2
	cpu.state.registers[destReg] = cpu.bus.Read32(addr)
	return cost(3 + cpu.dCycle(addr, Word, false) + cpu.nCycle())
}

// format 12 - Load address

func thumbAddPC(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	cpu.state.registers[destReg] = (cpu.state.registers[rPC] &^ 0x03) + uint32(opcode&0xff)<<2
	return cost(1 + cpu.nCycle())
}

func thumbAddSP(cpu *CPU, opcode uint16) result {
	destReg := (opcode & 0x0700) >> 8
	cpu.state.registers[destReg] = cpu.state.registers[rSP] + uint32(opcode&0xff)<<2
	return cost(1 + cpu.nCycle())
}

// format 13 - Add offset to stack pointer

func thumbAdjustSP(cpu *CPU, opcode uint16) result {
	offset := uint32(opcode&0x7f) << 2
	if opcode&0x80 == 0x80 {
		cpu.state.registers[rSP] -= offset
	} else {
		cpu.state.registers[rSP] += offset
	}
	return cost(1 + cpu.nCycle())
}

// format 14 - Push/pop registers
// format 15 - Multiple load/store
//
// registers are transferred lowest first. the first transfer is non-sequential
// and the remainder are sequential

func thumbPush(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()

	rlist := opcode & 0xff
	storeLR := opcode&0x0100 == 0x0100

	n := uint32(bits.OnesCount16(rlist))
	if storeLR {
		n++
	}

	sp := cpu.state.registers[rSP] - n*4
	addr := sp &^ 0x03

	cycles := 0
	seq := false
	for r := 0; r < 8; r++ {
		if rlist&(0x01<<r) == 0x01<<r {
			cpu.bus.Write32(addr, cpu.state.registers[r])
			cycles += 1 + cpu.dCycle(addr, Word, seq)
			seq = true
			addr += 4
		}
	}
	if storeLR {
		cpu.bus.Write32(addr, cpu.state.registers[rLR])
		cycles += 1 + cpu.dCycle(addr, Word, seq)
	}

	cycles += 1 + cpu.nCycle()
	cpu.state.registers[rSP] = sp

	return cost(cycles)
}

func thumbPop(cpu *CPU, opcode uint16) result {
	cpu.requestPrefetch()

	rlist := opcode & 0xff
	loadPC := opcode&0x0100 == 0x0100

	n := uint32(bits.OnesCount16(rlist))
	if loadPC {
		n++
	}

	addr := cpu.state.registers[rSP] &^ 0x03
	sp := cpu.state.registers[rSP] + n*4

	cycles := 0
	seq := false
	for r := 0; r < 8; r++ {
		if rlist&(0x01<<r) == 0x01<<r {
			cpu.state.registers[r] = cpu.bus.Read32(addr)
			cycles += 1 + cpu.dCycle(addr, Word, seq)
			seq = true
			addr += 4
		}
	}

	if !loadPC {
		cpu.state.registers[rSP] = sp

		// the cost of the register transfers is not included. the data
		// accesses are still made so that the prefetch buffer is updated
		return cost(2 + cpu.nCycle())
	}

	target := cpu.bus.Read32(addr) &^ 0x01
	cycles += 1 + cpu.dCycle(addr, Word, seq)
	cpu.state.registers[rSP] = sp
	cpu.refillThumb(target)
	cpu.state.prefetch.Flush()

	cycles += 3 + cpu.nCycle()
	cycles += cpu.nCycle()
	return cost(cycles)
}

func thumbStmia(cpu *CPU, opcode uint16) result {
	baseReg := (opcode & 0x0700) >> 8
	rlist := opcode & 0xff
	cpu.requestPrefetch()

	addr := cpu.state.registers[baseReg] &^ 0x03
	wb := cpu.state.registers[baseReg] + uint32(bits.OnesCount16(rlist))*4

	// the base register is written back after the first transfer. a base
	// register in the list that is not the first register will be stored
	// with the written back value
	seq := false
	for r := 0; r < 8; r++ {
		if rlist&(0x01<<r) == 0x01<<r {
			cpu.bus.Write32(addr, cpu.state.registers[r])
			cpu.state.registers[baseReg] = wb
			cpu.dCycle(addr, Word, seq)
			seq = true
			addr += 4
		}
	}

	return cost(1 + cpu.nCycle())
}

func thumbLdmia(cpu *CPU, opcode uint16) result {
	baseReg := (opcode & 0x0700) >> 8
	rlist := opcode & 0xff
	cpu.requestPrefetch()

	addr := cpu.state.registers[baseReg] &^ 0x03
	wb := cpu.state.registers[baseReg] + uint32(bits.OnesCount16(rlist))*4

	seq := false
	for r := 0; r < 8; r++ {
		if rlist&(0x01<<r) == 0x01<<r {
			cpu.state.registers[r] = cpu.bus.Read32(addr)
			cpu.dCycle(addr, Word, seq)
			seq = true
			addr += 4
		}
	}

	cycles := 2 + cpu.nCycle()

	// no write back if the base register was loaded
	if rlist&(0x01<<baseReg) == 0x00 {
		cpu.state.registers[baseReg] = wb
	}

	return cost(cycles)
}

// format 16 - Conditional branch

func thumbConditionalBranch(cpu *CPU, opcode uint16) result {
	cond := uint8((opcode & 0x0f00) >> 8)

	cycles := cpu.sCycle()

	// BLE is not charged the internal cycle
	if cond != 0b1101 {
		cycles++
	}

	if b, _ := cpu.state.status.condition(cond); b {
		offset := uint32(int32(int8(opcode&0xff)) << 1)
		cpu.refillThumb(cpu.state.registers[rPC] + offset)
		cycles += cpu.sCycle()
		cycles += cpu.nCycle() + 2
		cpu.state.prefetch.Flush()
	}

	return cost(cycles)
}

// format 17 - Software interrupt

func thumbSoftwareInterrupt(cpu *CPU, opcode uint16) result {
	cpu.state.prefetch.Flush()
	if err := cpu.intr.SoftwareInterrupt(uint8(opcode & 0xff)); err != nil {
		return cpu.fatal(curated.Errorf(InterruptHandler, err))
	}
	return cost(3)
}

// format 18 - Unconditional branch

func thumbBranch(cpu *CPU, opcode uint16) result {
	offset := uint32(opcode&0x3ff) << 1
	if opcode&0x0400 == 0x0400 {
		offset |= 0xfffff800
	}
	cycles := cpu.branchThumb(cpu.state.registers[rPC] + offset)
	cpu.state.prefetch.Flush()
	return cost(cycles)
}

// format 19 - Long branch with link
//
// the branch is split over two instructions. the first instruction adds the
// high part of the offset to the PC and stores the result in LR. the second
// instruction adds the low part of the offset to LR and branches. the return
// address, with bit 0 set to indicate thumb mode, is stored in LR

func thumbLongBranchHi(cpu *CPU, opcode uint16) result {
	offset := uint32(opcode&0x07ff) << 12
	if opcode&0x0400 == 0x0400 {
		offset |= 0xff800000
	}
	cpu.state.registers[rLR] = cpu.state.registers[rPC] + offset
	return cost(cpu.sCycle() + 1)
}

func thumbLongBranchLo(cpu *CPU, opcode uint16) result {
	offset := uint32(opcode&0x07ff) << 1

	// PC is two instructions ahead. the return address is the instruction
	// following this one
	ret := cpu.state.registers[rPC] - 2

	target := (cpu.state.registers[rLR] + offset) &^ 0x01
	cpu.state.registers[rLR] = ret | 0x01

	cycles := cpu.branchThumb(target)
	cpu.state.prefetch.Flush()
	return cost(cycles)
}
