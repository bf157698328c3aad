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

package bios_test

import (
	"testing"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/hardware/bios"
	"github.com/jetsetilly/gsfplayer/hardware/memory"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/logger"
	"github.com/jetsetilly/gsfplayer/test"
)

type registers [arm7.NumRegisters]uint32

func (r *registers) Register(n int) uint32 {
	return r[n]
}

func (r *registers) SetRegister(n int, v uint32) {
	r[n] = v
}

type harness struct {
	prefs *preferences.ARM7Preferences
	regs  *registers
	mem   *memory.Memory
	clk   *arm7.Clock
	bios  *bios.BIOS
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		prefs: preferences.DefaultPreferences().ARM7,
		regs:  &registers{},
		clk:   &arm7.Clock{},
	}
	h.mem = memory.NewMemory(h.prefs)
	h.bios = bios.NewBIOS(h.prefs, h.regs, h.mem, h.clk)
	test.DemandImplements[arm7.Interrupts](t, h.bios)
	return h
}

func (h *harness) call(t *testing.T, comment uint8, r ...uint32) {
	t.Helper()
	for i, v := range r {
		h.regs[i] = v
	}
	test.DemandSuccess(t, h.bios.SoftwareInterrupt(comment))
}

func TestDivision(t *testing.T) {
	h := newHarness(t)

	h.call(t, 0x06, 0xfffffff9, 2)
	test.ExpectEquality(t, h.regs[0], 0xfffffffd)
	test.ExpectEquality(t, h.regs[1], 0xffffffff)
	test.ExpectEquality(t, h.regs[3], 3)

	h.call(t, 0x07, 2, 0xfffffff9, 0, 0)
	test.ExpectEquality(t, h.regs[0], 0xfffffffd)
	test.ExpectEquality(t, h.regs[1], 0xffffffff)
	test.ExpectEquality(t, h.regs[3], 3)

	// division by zero leaves the registers unchanged
	h.call(t, 0x06, 100, 0, 0, 0)
	test.ExpectEquality(t, h.regs[0], 100)
	test.ExpectEquality(t, h.regs[3], 0)

	test.ExpectEquality(t, h.bios.Calls[0x06], 2)
}

func TestSqrt(t *testing.T) {
	h := newHarness(t)
	h.call(t, 0x08, 0x10000)
	test.ExpectEquality(t, h.regs[0], 0x100)
	h.call(t, 0x08, 15)
	test.ExpectEquality(t, h.regs[0], 3)
	h.call(t, 0x08, 0xffffffff)
	test.ExpectEquality(t, h.regs[0], 0xffff)
}

func TestArcTan(t *testing.T) {
	h := newHarness(t)

	h.call(t, 0x09, 0)
	test.ExpectEquality(t, h.regs[0], 0)

	// on the axes
	h.call(t, 0x0a, 0x4000, 0)
	test.ExpectEquality(t, h.regs[0], 0x0000)
	h.call(t, 0x0a, 0, 0x4000)
	test.ExpectEquality(t, h.regs[0], 0x4000)
	h.call(t, 0x0a, 0xffffc000, 0)
	test.ExpectEquality(t, h.regs[0], 0x8000)
	h.call(t, 0x0a, 0, 0xffffc000)
	test.ExpectEquality(t, h.regs[0], 0xc000)
}

func TestCpuSet(t *testing.T) {
	h := newHarness(t)
	test.DemandSuccess(t, h.mem.Load(0x02000000, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}))

	// halfword copy
	h.call(t, 0x0b, 0x02000000, 0x03000000, 3)
	test.ExpectEquality(t, h.mem.Read32(0x03000000), 0x04030201)
	test.ExpectEquality(t, h.mem.Read16(0x03000004), 0x0605)
	test.ExpectEquality(t, h.mem.Read16(0x03000006), 0x0000)

	// word fill
	h.call(t, 0x0b, 0x02000000, 0x03000100, 0x05000002)
	test.ExpectEquality(t, h.mem.Read32(0x03000100), 0x04030201)
	test.ExpectEquality(t, h.mem.Read32(0x03000104), 0x04030201)
	test.ExpectEquality(t, h.mem.Read32(0x03000108), 0)

	// fast set rounds up to a multiple of eight words
	h.call(t, 0x0c, 0x02000000, 0x03000200, 0x01000001)
	test.ExpectEquality(t, h.mem.Read32(0x0300021c), 0x04030201)
	test.ExpectEquality(t, h.mem.Read32(0x03000220), 0)

	// no copying from the BIOS
	h.call(t, 0x0b, 0x00000000, 0x03000300, 0x04000001)
	test.ExpectEquality(t, h.mem.Read32(0x03000300), 0)
}

func TestDecompression(t *testing.T) {
	h := newHarness(t)

	lz77 := []byte{0x10, 0x08, 0x00, 0x00, 0x10, 'A', 'B', 'C', 0x20, 0x02}
	test.DemandSuccess(t, h.mem.Load(0x02000000, lz77))
	h.call(t, 0x11, 0x02000000, 0x03000000)
	for i, c := range []byte("ABCABCAB") {
		test.ExpectEquality(t, uint8(h.mem.Read8(0x03000000+uint32(i))), c, i)
	}
	test.ExpectEquality(t, h.mem.Read8(0x03000008), 0)

	rl := []byte{0x30, 0x05, 0x00, 0x00, 0x81, 'A', 0x00, 'B'}
	test.DemandSuccess(t, h.mem.Load(0x02000100, rl))
	h.call(t, 0x14, 0x02000100, 0x03000100)
	for i, c := range []byte("AAAAB") {
		test.ExpectEquality(t, uint8(h.mem.Read8(0x03000100+uint32(i))), c, i)
	}

	diff := []byte{0x81, 0x03, 0x00, 0x00, 0x01, 0x01, 0x01}
	test.DemandSuccess(t, h.mem.Load(0x02000200, diff))
	h.call(t, 0x16, 0x02000200, 0x03000200)
	test.ExpectEquality(t, h.mem.Read32(0x03000200), 0x00030201)
}

func TestRegisterRAMReset(t *testing.T) {
	h := newHarness(t)
	h.mem.Write32(0x02000000, 0xffffffff)
	h.mem.Write32(0x03000000, 0xffffffff)
	h.mem.Write32(0x03007f00, 0xffffffff)

	h.call(t, 0x01, 0x02)
	test.ExpectEquality(t, h.mem.Read32(0x02000000), 0xffffffff)
	test.ExpectEquality(t, h.mem.Read32(0x03000000), 0)
	test.ExpectEquality(t, h.mem.Read32(0x03007f00), 0xffffffff)

	h.call(t, 0x01, 0x01)
	test.ExpectEquality(t, h.mem.Read32(0x02000000), 0)
}

func TestMiscellaneous(t *testing.T) {
	h := newHarness(t)

	h.call(t, 0x0d)
	test.ExpectEquality(t, h.regs[0], 0xbaae187f)

	h.call(t, 0x19, 1)
	test.ExpectEquality(t, h.mem.Read16(0x04000088), 0x0200)
	h.call(t, 0x19, 0)
	test.ExpectEquality(t, h.mem.Read16(0x04000088), 0x0000)

	test.ExpectEquality(t, bios.Name(0x05), "VBlankIntrWait")
	test.ExpectEquality(t, bios.Name(0xff), "unknown (ff)")
}

func TestHold(t *testing.T) {
	for _, c := range []uint8{0x02, 0x03, 0x04, 0x05} {
		h := newHarness(t)
		h.call(t, c)
		test.ExpectEquality(t, h.clk.Hold, true, c)
	}

	// sound driver calls do nothing
	h := newHarness(t)
	h.call(t, 0x1c)
	test.ExpectEquality(t, h.clk.Hold, false)
}

func TestSoftReset(t *testing.T) {
	h := newHarness(t)
	err := h.bios.SoftwareInterrupt(0x00)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bios.SoftReset))
}

func TestUnsupportedLoggedOnce(t *testing.T) {
	logger.Clear()
	h := newHarness(t)
	h.call(t, 0x10)
	h.call(t, 0x10)

	n := 0
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "BIOS" {
				n++
			}
		}
	})
	test.ExpectEquality(t, n, 1)
}

func TestUndefined(t *testing.T) {
	h := newHarness(t)
	test.ExpectSuccess(t, h.bios.UndefinedInstruction(0xde00))

	test.DemandSuccess(t, h.prefs.AbortOnUndefined.Set(true))
	err := h.bios.UndefinedInstruction(0xde00)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bios.UndefinedInstruction))
}
