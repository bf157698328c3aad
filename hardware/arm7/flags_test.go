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
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/test"
)

// operand pairs that exercise the boundaries of the carry and overflow rules
// followed by a stream of random pairs
func operandPairs() [][2]uint32 {
	edges := []uint32{0, 1, 2, 0x7ffffffe, 0x7fffffff, 0x80000000, 0x80000001, 0xfffffffe, 0xffffffff}

	var pairs [][2]uint32
	for _, a := range edges {
		for _, b := range edges {
			pairs = append(pairs, [2]uint32{a, b})
		}
	}

	rnd := rand.New(rand.NewPCG(0x2600, 0x4000))
	for range 500 {
		pairs = append(pairs, [2]uint32{rnd.Uint32(), rnd.Uint32()})
	}

	return pairs
}

func runPair(t *testing.T, opcode uint16, a uint32, b uint32) (uint32, arm7.Status) {
	t.Helper()
	h := newHarness(opcode)
	h.cpu.SetRegister(0, a)
	h.cpu.SetRegister(1, b)
	_, _, err := h.step()
	test.DemandSuccess(t, err)
	return h.cpu.Register(2), h.cpu.Status()
}

func TestAddFlagProperties(t *testing.T) {
	for _, p := range operandPairs() {
		a, b := p[0], p[1]

		// ADD R2, R0, R1
		r, st := runPair(t, 0x1842, a, b)

		sum := uint64(a) + uint64(b)
		test.ExpectEquality(t, r, uint32(sum), a, b)
		test.ExpectEquality(t, st.Carry, sum > 0xffffffff, a, b)
		test.ExpectEquality(t, st.Overflow, (a^b)&0x80000000 == 0 && (a^r)&0x80000000 != 0, a, b)
		test.ExpectEquality(t, st.Zero, r == 0, a, b)
		test.ExpectEquality(t, st.Negative, r&0x80000000 != 0, a, b)
	}
}

func TestSubtractFlagProperties(t *testing.T) {
	for _, p := range operandPairs() {
		a, b := p[0], p[1]

		// SUB R2, R0, R1
		r, st := runPair(t, 0x1a42, a, b)

		test.ExpectEquality(t, r, a-b, a, b)
		test.ExpectEquality(t, st.Carry, a >= b, a, b)
		test.ExpectEquality(t, st.Overflow, (a^b)&0x80000000 != 0 && (a^r)&0x80000000 != 0, a, b)
		test.ExpectEquality(t, st.Zero, r == 0, a, b)
		test.ExpectEquality(t, st.Negative, r&0x80000000 != 0, a, b)
	}
}

func TestCompareLeavesRegisters(t *testing.T) {
	for _, p := range operandPairs()[:100] {
		a, b := p[0], p[1]

		// TST R0, R1; CMP R0, R1; CMN R0, R1
		for _, op := range []uint16{0x4208, 0x4288, 0x42c8} {
			h := newHarness(op)
			h.cpu.SetRegister(0, a)
			h.cpu.SetRegister(1, b)
			var before [15]uint32
			for r := range before {
				before[r] = h.cpu.Register(r)
			}

			_, _, err := h.step()
			test.DemandSuccess(t, err)

			for r := range before {
				test.ExpectEquality(t, h.cpu.Register(r), before[r], op, r)
			}
		}
	}
}

func TestMoveImmediatePreservesCarryOverflow(t *testing.T) {
	h := newHarness(0x2012) // MOV R0, #$12
	h.cpu.SetStatus(arm7.Status{Carry: true, Overflow: true, Zero: true, Negative: true})

	_, _, err := h.step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.cpu.Register(0), 0x12)
	test.ExpectEquality(t, h.cpu.Status().String(), "nzCV")
}

func TestSubtractSelf(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x80000000, 0xdeadbeef, 0xffffffff} {
		h := newHarness(0x1a00) // SUB R0, R0, R0
		h.cpu.SetRegister(0, v)
		_, _, err := h.step()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, h.cpu.Register(0), 0, v)
		test.ExpectEquality(t, h.cpu.Status().String(), "nZCv", v)
	}
}
