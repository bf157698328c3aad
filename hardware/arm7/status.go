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
	"strings"
)

// Status is the condition flag part of the CPSR. The mode bits of the CPSR
// are kept separately in the State type.
type Status struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool
}

func (sr Status) String() string {
	s := strings.Builder{}

	if sr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	return s.String()
}

func (sr *Status) reset() {
	sr.Negative = false
	sr.Zero = false
	sr.Carry = false
	sr.Overflow = false
}

func (sr *Status) isNegative(a uint32) {
	sr.Negative = a&0x80000000 == 0x80000000
}

func (sr *Status) isZero(a uint32) {
	sr.Zero = a == 0x00
}

// add a and b with carry-in c. flags are set from the 64bit widened sum
func (sr *Status) add(a, b, c uint32) uint32 {
	sum := uint64(a) + uint64(b) + uint64(c)
	r := uint32(sum)
	sr.Carry = sum > 0xffffffff
	sr.Overflow = ^(a^b)&(a^r)&0x80000000 == 0x80000000
	sr.isNegative(r)
	sr.isZero(r)
	return r
}

// subtract b and borrow from a. the carry flag is the inverse of the borrow
func (sr *Status) sub(a, b, borrow uint32) uint32 {
	r := a - b - borrow
	sr.Carry = uint64(a) >= uint64(b)+uint64(borrow)
	sr.Overflow = (a^b)&(a^r)&0x80000000 == 0x80000000
	sr.isNegative(r)
	sr.isZero(r)
	return r
}

// the carry flag as a value suitable for ADC
func (sr *Status) carryIn() uint32 {
	if sr.Carry {
		return 1
	}
	return 0
}

// the inverse of the carry flag as a value suitable for SBC
func (sr *Status) borrowIn() uint32 {
	if sr.Carry {
		return 0
	}
	return 1
}

// conditional execution information from "5.16 Format 16: conditional branch"
// in the ARM7TDMI Data Sheet
func (sr *Status) condition(cond uint8) (bool, string) {
	var mnemonic string
	var b bool

	switch cond {
	case 0b0000:
		// equal
		mnemonic = "BEQ"
		b = sr.Zero
	case 0b0001:
		// not equal
		mnemonic = "BNE"
		b = !sr.Zero
	case 0b0010:
		// carry set
		mnemonic = "BCS"
		b = sr.Carry
	case 0b0011:
		// carry clear
		mnemonic = "BCC"
		b = !sr.Carry
	case 0b0100:
		// minus
		mnemonic = "BMI"
		b = sr.Negative
	case 0b0101:
		// plus
		mnemonic = "BPL"
		b = !sr.Negative
	case 0b0110:
		// overflow
		mnemonic = "BVS"
		b = sr.Overflow
	case 0b0111:
		// no overflow
		mnemonic = "BVC"
		b = !sr.Overflow
	case 0b1000:
		// unsigned higher C==1 and Z==0
		mnemonic = "BHI"
		b = sr.Carry && !sr.Zero
	case 0b1001:
		// unsigned lower or same C==0 or Z==1
		mnemonic = "BLS"
		b = !sr.Carry || sr.Zero
	case 0b1010:
		// signed greater than or equal N==V
		mnemonic = "BGE"
		b = sr.Negative == sr.Overflow
	case 0b1011:
		// signed less than N!=V
		mnemonic = "BLT"
		b = sr.Negative != sr.Overflow
	case 0b1100:
		// signed greater than Z==0 and N==V
		mnemonic = "BGT"
		b = !sr.Zero && sr.Negative == sr.Overflow
	case 0b1101:
		// signed less than or equal Z==1 or N!=V
		mnemonic = "BLE"
		b = sr.Zero || sr.Negative != sr.Overflow
	case 0b1110:
		mnemonic = "B"
		b = true
	case 0b1111:
		panic("unpredictable condition")
	}

	return b, mnemonic
}
