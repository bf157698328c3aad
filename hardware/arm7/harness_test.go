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
	"errors"

	"github.com/jetsetilly/gsfplayer/hardware/arm7"
)

// flat memory. unwritten addresses read as zero
type memory map[uint32]uint8

func (m memory) Read8(addr uint32) uint32 {
	return uint32(m[addr])
}

func (m memory) Read16(addr uint32) uint32 {
	addr &^= 0x01
	return uint32(m[addr]) | uint32(m[addr+1])<<8
}

func (m memory) Read32(addr uint32) uint32 {
	addr &^= 0x03
	return m.Read16(addr) | m.Read16(addr+2)<<16
}

func (m memory) ReadSigned8(addr uint32) uint32 {
	return uint32(int32(int8(m.Read8(addr))))
}

func (m memory) ReadSigned16(addr uint32) uint32 {
	return uint32(int32(int16(m.Read16(addr))))
}

func (m memory) Write8(addr uint32, val uint8) {
	m[addr] = val
}

func (m memory) Write16(addr uint32, val uint16) {
	addr &^= 0x01
	m[addr] = uint8(val)
	m[addr+1] = uint8(val >> 8)
}

func (m memory) Write32(addr uint32, val uint32) {
	addr &^= 0x03
	m.Write16(addr, uint16(val))
	m.Write16(addr+2, uint16(val>>16))
}

func (m memory) Fetch16(addr uint32) uint16 {
	return uint16(m.Read16(addr))
}

func (m memory) Fetch32(addr uint32) uint32 {
	return m.Read32(addr)
}

// fixed wait states. the prefetch buffer is never enabled
//
//	code halfword	S=1 N=3
//	code word		S=2 N=6
//	data byte/half	S=2 N=4
//	data word		S=3 N=5
type timing struct{}

func (_ timing) CodeCycles(_ *arm7.Prefetch, _ uint32, width arm7.Width, sequential bool) int {
	if width == arm7.Word {
		if sequential {
			return 2
		}
		return 6
	}
	if sequential {
		return 1
	}
	return 3
}

func (_ timing) DataCycles(_ *arm7.Prefetch, _ uint32, width arm7.Width, sequential bool) int {
	if width == arm7.Word {
		if sequential {
			return 3
		}
		return 5
	}
	if sequential {
		return 2
	}
	return 4
}

func (_ timing) RequestPrefetch(_ *arm7.Prefetch) {
}

var errInterrupt = errors.New("interrupt failure")

// records every interrupt. the clock is adjusted according to the comment
// field of the software interrupt
type interrupts struct {
	clk *arm7.Clock

	swi       []uint8
	undefined []uint16
	fail      bool
}

const (
	swiHold    = 0x05
	swiPending = 0x10
)

func (intr *interrupts) SoftwareInterrupt(comment uint8) error {
	intr.swi = append(intr.swi, comment)
	switch comment {
	case swiHold:
		intr.clk.Hold = true
	case swiPending:
		intr.clk.Pending = 1
	}
	if intr.fail {
		return errInterrupt
	}
	return nil
}

func (intr *interrupts) UndefinedInstruction(opcode uint16) error {
	intr.undefined = append(intr.undefined, opcode)
	if intr.fail {
		return errInterrupt
	}
	return nil
}

const origin = 0x08000000

type harness struct {
	cpu  *arm7.CPU
	mem  memory
	clk  *arm7.Clock
	intr *interrupts
}

// a new CPU with the program at the origin. execution starts in thumb mode
func newHarness(program ...uint16) *harness {
	h := &harness{
		mem: memory{},
		clk: &arm7.Clock{},
	}
	h.intr = &interrupts{clk: h.clk}

	for i, op := range program {
		h.mem.Write16(origin+uint32(i*2), op)
	}

	h.cpu = arm7.NewCPU(nil, h.mem, timing{})
	h.cpu.PlumbInterrupts(h.intr)
	h.cpu.Reset(origin | 0x01)
	h.cpu.SetRegister(arm7.SP, 0x03007f00)

	return h
}

// execute a single instruction. returns the cost of the instruction
func (h *harness) step() (int, arm7.Stop, error) {
	start := h.clk.Total
	h.clk.Horizon = start + 1
	stop, err := h.cpu.Run(h.clk)
	return h.clk.Total - start, stop, err
}
