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

package arm7_test

import (
	"testing"

	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/test"
)

func TestDisassemble(t *testing.T) {
	for _, c := range []struct {
		opcode uint16
		s      string
	}{
		{0x2001, "mov R0, #$01"},
		{0x1e81, "sub R1, R0, #$2"},
		{0x0101, "lsl R1, R0, #$04"},
		{0x4348, "mul R0, R1"},
		{0x4686, "mov LR, R0"},
		{0x4700, "bx R0"},
		{0x684a, "ldr R2, [R1, #$04]"},
		{0x5aca, "ldrh R2, [R1, R3]"},
		{0x4a01, "ldr R2, [PC, #$004]"},
		{0xb503, "push {R0, R1, LR}"},
		{0xbd03, "pop {R0, R1, PC}"},
		{0xc006, "stmia R0!, {R1, R2}"},
		{0xb082, "add SP, #-$008"},
		{0xdf05, "swi $05"},
		{0xd000, "beq $08000004"},
		{0xd1fe, "bne $08000000"},
		{0xd202, "bcs $08000008"},
		{0xd300, "bcc $08000004"},
		{0xd400, "bmi $08000004"},
		{0xd500, "bpl $08000004"},
		{0xd600, "bvs $08000004"},
		{0xd700, "bvc $08000004"},
		{0xd800, "bhi $08000004"},
		{0xd900, "bls $08000004"},
		{0xda00, "bge $08000004"},
		{0xdb00, "blt $08000004"},
		{0xdc00, "bgt $08000004"},
		{0xdd00, "ble $08000004"},
		{0xe7fe, "b $08000000"},
		{0xf000, "bl LR = $08000004"},
		{0xf802, "bl LR + #$004"},
		{0xde00, "undefined de00"},
	} {
		e := arm7.Disassemble(origin, c.opcode)
		test.ExpectEquality(t, e.String(), c.s, c.opcode)
		test.ExpectEquality(t, e.Address, "08000000")
	}
}

func TestDisassembleLongBranch(t *testing.T) {
	e := arm7.DisassembleLongBranch(origin, 0xf7ff, 0xfffe)
	test.ExpectEquality(t, e.String(), "bl $08000000")
	test.ExpectEquality(t, e.Opcode, 0xf7ff)
}
