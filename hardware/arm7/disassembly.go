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
)

// DisasmEntry is the disassembly of a single thumb instruction.
type DisasmEntry struct {
	// the address value. the formatted value is in the Address field
	Addr   uint32
	Opcode uint16

	// formatted address for use by disassemblies
	Address string

	// in the case of an undefined instruction the Operator field will be
	// "undefined" and the Operand will be the opcode in hex
	Operator string
	Operand  string
}

func (e DisasmEntry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

func registerList(rlist uint16, extra string) string {
	s := strings.Builder{}
	s.WriteString("{")
	for r := 0; r < 8; r++ {
		if rlist&(0x01<<r) == 0x01<<r {
			if s.Len() > 1 {
				s.WriteString(", ")
			}
			s.WriteString(fmt.Sprintf("R%d", r))
		}
	}
	if extra != "" {
		if s.Len() > 1 {
			s.WriteString(", ")
		}
		s.WriteString(extra)
	}
	s.WriteString("}")
	return s.String()
}

// Disassemble the thumb opcode found at the address. The address is used to
// calculate the targets of branch instructions. The second half of a long
// branch with link cannot be resolved without the first half so the operand
// shows only the low part of the offset.
func Disassemble(addr uint32, opcode uint16) DisasmEntry {
	e := DisasmEntry{
		Addr:    addr,
		Opcode:  opcode,
		Address: fmt.Sprintf("%08x", addr),
	}
	e.Operator, e.Operand = disassemble(addr, opcode)
	e.Operator = strings.ToLower(e.Operator)
	return e
}

func disassemble(addr uint32, opcode uint16) (string, string) {
	// value of PC during execution of the instruction
	pc := addr + 4

	rd := opcode & 0x07
	rs := (opcode & 0x38) >> 3
	rn := (opcode & 0x01c0) >> 6
	hi := (opcode & 0x0700) >> 8
	imm5 := (opcode & 0x07c0) >> 6
	imm8 := opcode & 0xff

	if undefinedThumb(opcode) {
		return "undefined", fmt.Sprintf("%04x", opcode)
	}

	if opcode&0xf800 == 0x1800 {
		// format 2
		switch (opcode & 0x0600) >> 9 {
		case 0b00:
			return "ADD", fmt.Sprintf("R%d, R%d, R%d", rd, rs, rn)
		case 0b01:
			return "SUB", fmt.Sprintf("R%d, R%d, R%d", rd, rs, rn)
		case 0b10:
			return "ADD", fmt.Sprintf("R%d, R%d, #$%01x", rd, rs, rn)
		default:
			return "SUB", fmt.Sprintf("R%d, R%d, #$%01x", rd, rs, rn)
		}
	}

	if opcode&0xe000 == 0x0000 {
		// format 1
		op := [3]string{"LSL", "LSR", "ASR"}[(opcode&0x1800)>>11]
		return op, fmt.Sprintf("R%d, R%d, #$%02x", rd, rs, imm5)
	}

	if opcode&0xe000 == 0x2000 {
		// format 3
		op := [4]string{"MOV", "CMP", "ADD", "SUB"}[(opcode&0x1800)>>11]
		return op, fmt.Sprintf("R%d, #$%02x", hi, imm8)
	}

	if opcode&0xfc00 == 0x4000 {
		// format 4
		op := [16]string{
			"AND", "EOR", "LSL", "LSR", "ASR", "ADC", "SBC", "ROR",
			"TST", "NEG", "CMP", "CMN", "ORR", "MUL", "BIC", "MVN",
		}[(opcode&0x03c0)>>6]
		return op, fmt.Sprintf("R%d, R%d", rd, rs)
	}

	if opcode&0xfc00 == 0x4400 {
		// format 5
		src, dest := hiRegisters(opcode)
		switch (opcode & 0x0300) >> 8 {
		case 0b00:
			return "ADD", fmt.Sprintf("%s, %s", registerName(dest), registerName(src))
		case 0b01:
			return "CMP", fmt.Sprintf("%s, %s", registerName(dest), registerName(src))
		case 0b10:
			return "MOV", fmt.Sprintf("%s, %s", registerName(dest), registerName(src))
		default:
			return "BX", registerName(src)
		}
	}

	if opcode&0xf800 == 0x4800 {
		// format 6
		return "LDR", fmt.Sprintf("R%d, [PC, #$%03x]", hi, imm8<<2)
	}

	if opcode&0xf000 == 0x5000 {
		// format 7 and format 8
		var op string
		if opcode&0x0200 == 0x0000 {
			op = [4]string{"STR", "STRB", "LDR", "LDRB"}[(opcode&0x0c00)>>10]
		} else {
			op = [4]string{"STRH", "LDSB", "LDRH", "LDSH"}[(opcode&0x0c00)>>10]
		}
		return op, fmt.Sprintf("R%d, [R%d, R%d]", rd, rs, rn)
	}

	if opcode&0xe000 == 0x6000 {
		// format 9
		switch (opcode & 0x1800) >> 11 {
		case 0b00:
			return "STR", fmt.Sprintf("R%d, [R%d, #$%02x]", rd, rs, imm5<<2)
		case 0b01:
			return "LDR", fmt.Sprintf("R%d, [R%d, #$%02x]", rd, rs, imm5<<2)
		case 0b10:
			return "STRB", fmt.Sprintf("R%d, [R%d, #$%02x]", rd, rs, imm5)
		default:
			return "LDRB", fmt.Sprintf("R%d, [R%d, #$%02x]", rd, rs, imm5)
		}
	}

	if opcode&0xf000 == 0x8000 {
		// format 10
		op := "STRH"
		if opcode&0x0800 == 0x0800 {
			op = "LDRH"
		}
		return op, fmt.Sprintf("R%d, [R%d, #$%02x]", rd, rs, imm5<<1)
	}

	if opcode&0xf000 == 0x9000 {
		// format 11
		op := "STR"
		if opcode&0x0800 == 0x0800 {
			op = "LDR"
		}
		return op, fmt.Sprintf("R%d, [SP, #$%03x]", hi, imm8<<2)
	}

	if opcode&0xf000 == 0xa000 {
		// format 12
		src := "PC"
		if opcode&0x0800 == 0x0800 {
			src = "SP"
		}
		return "ADD", fmt.Sprintf("R%d, %s, #$%03x", hi, src, imm8<<2)
	}

	if opcode&0xff00 == 0xb000 {
		// format 13
		if opcode&0x80 == 0x80 {
			return "ADD", fmt.Sprintf("SP, #-$%03x", (opcode&0x7f)<<2)
		}
		return "ADD", fmt.Sprintf("SP, #$%03x", (opcode&0x7f)<<2)
	}

	if opcode&0xfe00 == 0xb400 {
		// format 14
		extra := ""
		if opcode&0x0100 == 0x0100 {
			extra = "LR"
		}
		return "PUSH", registerList(imm8, extra)
	}

	if opcode&0xfe00 == 0xbc00 {
		extra := ""
		if opcode&0x0100 == 0x0100 {
			extra = "PC"
		}
		return "POP", registerList(imm8, extra)
	}

	if opcode&0xf000 == 0xc000 {
		// format 15
		op := "STMIA"
		if opcode&0x0800 == 0x0800 {
			op = "LDMIA"
		}
		return op, fmt.Sprintf("R%d!, %s", hi, registerList(imm8, ""))
	}

	if opcode&0xff00 == 0xdf00 {
		// format 17
		return "SWI", fmt.Sprintf("$%02x", imm8)
	}

	if opcode&0xf000 == 0xd000 {
		// format 16
		var st Status
		_, mnemonic := st.condition(uint8((opcode & 0x0f00) >> 8))
		target := pc + uint32(int32(int8(imm8))<<1)
		return mnemonic, fmt.Sprintf("$%08x", target)
	}

	if opcode&0xf800 == 0xe000 {
		// format 18
		offset := uint32(opcode&0x3ff) << 1
		if opcode&0x0400 == 0x0400 {
			offset |= 0xfffff800
		}
		return "B", fmt.Sprintf("$%08x", pc+offset)
	}

	// format 19
	if opcode&0x0800 == 0x0800 {
		return "BL", fmt.Sprintf("LR + #$%03x", (opcode&0x07ff)<<1)
	}
	offset := uint32(opcode&0x07ff) << 12
	if opcode&0x0400 == 0x0400 {
		offset |= 0xff800000
	}
	return "BL", fmt.Sprintf("LR = $%08x", pc+offset)
}

// DisassembleLongBranch resolves the target of a long branch with link
// instruction pair. The address is that of the first opcode.
func DisassembleLongBranch(addr uint32, hi uint16, lo uint16) DisasmEntry {
	offset := uint32(hi&0x07ff) << 12
	if hi&0x0400 == 0x0400 {
		offset |= 0xff800000
	}
	target := (addr + 4 + offset + uint32(lo&0x07ff)<<1) &^ 0x01
	return DisasmEntry{
		Addr:     addr,
		Opcode:   hi,
		Address:  fmt.Sprintf("%08x", addr),
		Operator: "bl",
		Operand:  fmt.Sprintf("$%08x", target),
	}
}

func registerName(r uint16) string {
	switch r {
	case rSP:
		return "SP"
	case rLR:
		return "LR"
	case rPC:
		return "PC"
	}
	return fmt.Sprintf("R%d", r)
}
