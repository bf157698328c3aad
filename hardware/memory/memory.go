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

package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
)

// Sentinal error patterns.
const (
	UnmappedAddress = "memory: unmapped address (%08x)"
	LoadError       = "memory: load: %v"
)

// Memory is the GBA memory bus. It implements the arm7.Bus interface.
type Memory struct {
	ewram []byte
	iwram []byte
	pal   []byte
	vram  []byte
	oam   []byte
	rom   []byte
	sram  []byte

	io *registers

	// Timing for the memory. reconfigured by writes to WAITCNT
	Timing *Timing
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The initial wait states are taken from the WaitCnt preference.
func NewMemory(prefs *preferences.ARM7Preferences) *Memory {
	mem := &Memory{
		ewram:  make([]byte, SizeEWRAM),
		iwram:  make([]byte, SizeIWRAM),
		pal:    make([]byte, SizePAL),
		vram:   make([]byte, SizeVRAM),
		oam:    make([]byte, SizeOAM),
		sram:   make([]byte, SizeSRAM),
		Timing: NewTiming(),
	}
	mem.io = newRegisters(mem.Timing)

	if prefs != nil {
		mem.Write16(OriginIO|regWAITCNT, uint16(prefs.WaitCnt.Get().(int)))
	}

	return mem
}

// PlumbFIFO sets the destination for writes to the direct sound FIFOs. A nil
// value discards all samples.
func (mem *Memory) PlumbFIFO(fifo FIFO) {
	mem.io.fifo = fifo
}

// Reset clears all RAM and the IO registers. The ROM is left unchanged.
func (mem *Memory) Reset() {
	for _, m := range [][]byte{mem.ewram, mem.iwram, mem.pal, mem.vram, mem.oam, mem.sram} {
		clear(m)
	}
	fifo := mem.io.fifo
	waitcnt := mem.Timing.WaitCnt()
	mem.io = newRegisters(mem.Timing)
	mem.io.fifo = fifo
	mem.Write16(OriginIO|regWAITCNT, waitcnt)
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ROM: %d bytes\n", len(mem.rom)))
	s.WriteString(mem.Timing.String())
	return s.String()
}

// MapAddress returns the memory block and the index into that memory block
// for the address. Returns nil if the address is not mapped or if the address
// can not be written to and the write flag is true.
//
// The IO registers are mapped for reading only. Writes to the IO area must go
// through the Write*() functions so that side effects happen.
func (mem *Memory) MapAddress(addr uint32, write bool) (*[]byte, uint32) {
	switch RegionOf(addr) {
	case EWRAM:
		return &mem.ewram, addr & (SizeEWRAM - 1)
	case IWRAM:
		return &mem.iwram, addr & (SizeIWRAM - 1)
	case IO:
		if write || addr&0x00ffffff >= SizeIO {
			return nil, addr
		}
		return &mem.io.data, addr & (SizeIO - 1)
	case PAL:
		return &mem.pal, addr & (SizePAL - 1)
	case VRAM:
		idx := addr & 0x1ffff
		if idx >= SizeVRAM {
			idx -= 0x8000
		}
		return &mem.vram, idx
	case OAM:
		return &mem.oam, addr & (SizeOAM - 1)
	case WS0, WS0Hi, WS1, WS1Hi, WS2, WS2Hi:
		idx := addr & (MaxROM - 1)
		if write || idx >= uint32(len(mem.rom)) {
			return nil, addr
		}
		return &mem.rom, idx
	case SRAM:
		return &mem.sram, addr & (SizeSRAM - 1)
	}
	return nil, addr
}

// Load copies data into memory at the address. Only the ROM and EWRAM regions
// can be loaded. The ROM grows to accommodate the data.
func (mem *Memory) Load(addr uint32, data []byte) error {
	switch r := RegionOf(addr); {
	case r.isGamePak():
		idx := addr & (MaxROM - 1)
		end := int(idx) + len(data)
		if end > MaxROM {
			return curated.Errorf(LoadError, fmt.Errorf("%d bytes at %08x exceeds the ROM area", len(data), addr))
		}
		if end > len(mem.rom) {
			rom := make([]byte, end)
			copy(rom, mem.rom)
			mem.rom = rom
		}
		copy(mem.rom[idx:], data)
	case r == EWRAM:
		idx := addr & (SizeEWRAM - 1)
		if int(idx)+len(data) > SizeEWRAM {
			return curated.Errorf(LoadError, fmt.Errorf("%d bytes at %08x exceeds the EWRAM area", len(data), addr))
		}
		copy(mem.ewram[idx:], data)
	default:
		return curated.Errorf(LoadError, fmt.Errorf("cannot load into %s", r))
	}
	return nil
}

// ROMSize returns the number of bytes in the ROM.
func (mem *Memory) ROMSize() int {
	return len(mem.rom)
}

// Peek returns the byte at the address without side effects.
func (mem *Memory) Peek(addr uint32) (uint8, error) {
	m, idx := mem.MapAddress(addr, false)
	if m == nil {
		return 0, curated.Errorf(UnmappedAddress, addr)
	}
	return (*m)[idx], nil
}

// Poke sets the byte at the address without side effects. The ROM can be
// poked.
func (mem *Memory) Poke(addr uint32, val uint8) error {
	if RegionOf(addr).isGamePak() {
		m, idx := mem.MapAddress(addr, false)
		if m == nil {
			return curated.Errorf(UnmappedAddress, addr)
		}
		(*m)[idx] = val
		return nil
	}
	if RegionOf(addr) == IO {
		if addr&0x00ffffff >= SizeIO {
			return curated.Errorf(UnmappedAddress, addr)
		}
		mem.io.data[addr&(SizeIO-1)] = val
		return nil
	}
	m, idx := mem.MapAddress(addr, true)
	if m == nil {
		return curated.Errorf(UnmappedAddress, addr)
	}
	(*m)[idx] = val
	return nil
}

// Snapshot creates a copy of the Memory. The ROM is shared between the
// original and the copy.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.ewram = slices.Clone(mem.ewram)
	n.iwram = slices.Clone(mem.iwram)
	n.pal = slices.Clone(mem.pal)
	n.vram = slices.Clone(mem.vram)
	n.oam = slices.Clone(mem.oam)
	n.sram = slices.Clone(mem.sram)

	tm := *mem.Timing
	n.Timing = &tm

	io := *mem.io
	io.data = slices.Clone(mem.io.data)
	io.timing = n.Timing
	n.io = &io

	return &n
}
