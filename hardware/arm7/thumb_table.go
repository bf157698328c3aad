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

// handler for a single thumb instruction.
type handler func(cpu *CPU, opcode uint16) result

// the top ten bits of an opcode are enough to select the handler. the bottom
// six bits are always register numbers or immediate values
const thumbTableSize = 1024

var thumbTable = buildThumbTable()

func buildThumbTable() [thumbTableSize]handler {
	var t [thumbTableSize]handler
	for i := range t {
		t[i] = decodeThumb(uint16(i) << 6)
	}
	return t
}

// decodeThumb returns the handler for the opcode. the bottom six bits of the
// opcode are ignored.
//
// the instruction formats are described in "5 Thumb Instruction Set" of the
// ARM7TDMI Data Sheet. opcodes that are undefined in ARMv4T decode to
// thumbUndefined.
func decodeThumb(opcode uint16) handler {
	if undefinedThumb(opcode) {
		return thumbUndefined
	}

	if opcode&0xf800 == 0x1800 {
		// format 2 - Add/subtract
		switch (opcode & 0x0600) >> 9 {
		case 0b00:
			return thumbAddReg
		case 0b01:
			return thumbSubReg
		case 0b10:
			return thumbAddImm3
		default:
			return thumbSubImm3
		}
	} else if opcode&0xe000 == 0x0000 {
		// format 1 - Move shifted register
		switch (opcode & 0x1800) >> 11 {
		case 0b00:
			return thumbLSLImm
		case 0b01:
			return thumbLSRImm
		default:
			return thumbASRImm
		}
	} else if opcode&0xe000 == 0x2000 {
		// format 3 - Move/compare/add/subtract immediate
		switch (opcode & 0x1800) >> 11 {
		case 0b00:
			return thumbMovImm
		case 0b01:
			return thumbCmpImm
		case 0b10:
			return thumbAddImm8
		default:
			return thumbSubImm8
		}
	} else if opcode&0xfc00 == 0x4000 {
		// format 4 - ALU operations
		return [16]handler{
			thumbAND, thumbEOR, thumbLSLReg, thumbLSRReg,
			thumbASRReg, thumbADC, thumbSBC, thumbRORReg,
			thumbTST, thumbNEG, thumbCMP, thumbCMN,
			thumbORR, thumbMUL, thumbBIC, thumbMVN,
		}[(opcode&0x03c0)>>6]
	} else if opcode&0xfc00 == 0x4400 {
		// format 5 - Hi register operations/branch exchange
		switch (opcode & 0x0300) >> 8 {
		case 0b00:
			return thumbAddHi
		case 0b01:
			return thumbCmpHi
		case 0b10:
			return thumbMovHi
		default:
			return thumbBX
		}
	} else if opcode&0xf800 == 0x4800 {
		// format 6 - PC-relative load
		return thumbLoadPCRelative
	} else if opcode&0xf200 == 0x5000 {
		// format 7 - Load/store with register offset
		switch (opcode & 0x0c00) >> 10 {
		case 0b00:
			return thumbStrReg
		case 0b01:
			return thumbStrbReg
		case 0b10:
			return thumbLdrReg
		default:
			return thumbLdrbReg
		}
	} else if opcode&0xf200 == 0x5200 {
		// format 8 - Load/store sign-extended byte/halfword
		switch (opcode & 0x0c00) >> 10 {
		case 0b00:
			return thumbStrhReg
		case 0b01:
			return thumbLdsbReg
		case 0b10:
			return thumbLdrhReg
		default:
			return thumbLdshReg
		}
	} else if opcode&0xe000 == 0x6000 {
		// format 9 - Load/store with immediate offset
		switch (opcode & 0x1800) >> 11 {
		case 0b00:
			return thumbStrImm
		case 0b01:
			return thumbLdrImm
		case 0b10:
			return thumbStrbImm
		default:
			return thumbLdrbImm
		}
	} else if opcode&0xf000 == 0x8000 {
		// format 10 - Load/store halfword
		if opcode&0x0800 == 0x0800 {
			return thumbLdrhImm
		}
		return thumbStrhImm
	} else if opcode&0xf000 == 0x9000 {
		// format 11 - SP-relative load/store
		if opcode&0x0800 == 0x0800 {
			return thumbLdrSP
		}
		return thumbStrSP
	} else if opcode&0xf000 == 0xa000 {
		// format 12 - Load address
		if opcode&0x0800 == 0x0800 {
			return thumbAddSP
		}
		return thumbAddPC
	} else if opcode&0xff00 == 0xb000 {
		// format 13 - Add offset to stack pointer
		return thumbAdjustSP
	} else if opcode&0xfe00 == 0xb400 {
		// format 14 - Push/pop registers
		return thumbPush
	} else if opcode&0xfe00 == 0xbc00 {
		return thumbPop
	} else if opcode&0xf000 == 0xc000 {
		// format 15 - Multiple load/store
		if opcode&0x0800 == 0x0800 {
			return thumbLdmia
		}
		return thumbStmia
	} else if opcode&0xff00 == 0xdf00 {
		// format 17 - Software interrupt
		return thumbSoftwareInterrupt
	} else if opcode&0xf000 == 0xd000 {
		// format 16 - Conditional branch
		return thumbConditionalBranch
	} else if opcode&0xf800 == 0xe000 {
		// format 18 - Unconditional branch
		return thumbBranch
	} else if opcode&0xf000 == 0xf000 {
		// format 19 - Long branch with link
		if opcode&0x0800 == 0x0800 {
			return thumbLongBranchLo
		}
		return thumbLongBranchHi
	}

	return thumbUndefined
}

// undefinedThumb returns true if the opcode is undefined for ARMv4T. the
// bottom six bits of the opcode are ignored
func undefinedThumb(opcode uint16) bool {
	switch {
	case opcode&0xfec0 == 0x4400:
		// ADD and CMP of two lo registers in format 5
		return true
	case opcode&0xff80 == 0x4780:
		// BX with the H1 flag set
		return true
	case opcode&0xff00 == 0xb000:
		return false
	case opcode&0xf600 == 0xb400:
		// PUSH and POP
		return false
	case opcode&0xf000 == 0xb000:
		// remaining miscellaneous instructions were added after ARMv4T
		return true
	case opcode&0xff00 == 0xde00:
		// conditional branch with the "always" condition
		return true
	case opcode&0xf800 == 0xe800:
		return true
	}
	return false
}
