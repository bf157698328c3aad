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

// the functions in this file implement the arm7.Bus interface. unmapped reads
// return zero and unmapped writes are ignored

func (mem *Memory) read8(addr uint32) uint8 {
	m, idx := mem.MapAddress(addr, false)
	if m == nil {
		return 0
	}
	return (*m)[idx]
}

func (mem *Memory) read16(addr uint32) uint16 {
	m, idx := mem.MapAddress(addr, false)
	if m == nil || int(idx)+1 >= len(*m) {
		return 0
	}
	return uint16((*m)[idx]) | uint16((*m)[idx+1])<<8
}

func (mem *Memory) read32(addr uint32) uint32 {
	m, idx := mem.MapAddress(addr, false)
	if m == nil || int(idx)+3 >= len(*m) {
		return 0
	}
	return uint32((*m)[idx]) | uint32((*m)[idx+1])<<8 | uint32((*m)[idx+2])<<16 | uint32((*m)[idx+3])<<24
}

// Read8 implements the arm7.Bus interface.
func (mem *Memory) Read8(addr uint32) uint32 {
	return uint32(mem.read8(addr))
}

// Read16 implements the arm7.Bus interface. A read from an odd address
// returns the aligned halfword rotated right by eight bits.
func (mem *Memory) Read16(addr uint32) uint32 {
	v := uint32(mem.read16(addr &^ 0x01))
	if addr&0x01 == 0x01 {
		v = (v >> 8) | (v << 24)
	}
	return v
}

// Read32 implements the arm7.Bus interface. A read from an unaligned address
// returns the aligned word rotated right by the misalignment.
func (mem *Memory) Read32(addr uint32) uint32 {
	v := mem.read32(addr &^ 0x03)
	if s := (addr & 0x03) << 3; s != 0 {
		v = (v >> s) | (v << (32 - s))
	}
	return v
}

// ReadSigned8 implements the arm7.Bus interface.
func (mem *Memory) ReadSigned8(addr uint32) uint32 {
	return uint32(int32(int8(mem.read8(addr))))
}

// ReadSigned16 implements the arm7.Bus interface. A read from an odd address
// sign extends the byte at that address.
func (mem *Memory) ReadSigned16(addr uint32) uint32 {
	if addr&0x01 == 0x01 {
		return uint32(int32(int8(mem.read8(addr))))
	}
	return uint32(int32(int16(mem.read16(addr))))
}

// Write8 implements the arm7.Bus interface.
func (mem *Memory) Write8(addr uint32, val uint8) {
	if RegionOf(addr) == IO {
		mem.io.write8(addr, val)
		mem.io.commit(addr &^ 0x01)
		return
	}
	m, idx := mem.MapAddress(addr, true)
	if m == nil {
		return
	}
	(*m)[idx] = val
}

// Write16 implements the arm7.Bus interface. The address is forced to a
// halfword boundary.
func (mem *Memory) Write16(addr uint32, val uint16) {
	addr &^= 0x01
	if RegionOf(addr) == IO {
		mem.io.write8(addr, uint8(val))
		mem.io.write8(addr+1, uint8(val>>8))
		mem.io.commit(addr)
		return
	}
	m, idx := mem.MapAddress(addr, true)
	if m == nil || int(idx)+1 >= len(*m) {
		return
	}
	(*m)[idx] = uint8(val)
	(*m)[idx+1] = uint8(val >> 8)
}

// Write32 implements the arm7.Bus interface. The address is forced to a word
// boundary.
func (mem *Memory) Write32(addr uint32, val uint32) {
	addr &^= 0x03
	if RegionOf(addr) == IO {
		for i := uint32(0); i < 4; i++ {
			mem.io.write8(addr+i, uint8(val>>(i*8)))
		}
		mem.io.commit(addr)
		mem.io.commit(addr + 2)
		return
	}
	m, idx := mem.MapAddress(addr, true)
	if m == nil || int(idx)+3 >= len(*m) {
		return
	}
	(*m)[idx] = uint8(val)
	(*m)[idx+1] = uint8(val >> 8)
	(*m)[idx+2] = uint8(val >> 16)
	(*m)[idx+3] = uint8(val >> 24)
}

// Fetch16 implements the arm7.Bus interface.
func (mem *Memory) Fetch16(addr uint32) uint16 {
	return mem.read16(addr &^ 0x01)
}

// Fetch32 implements the arm7.Bus interface.
func (mem *Memory) Fetch32(addr uint32) uint32 {
	return mem.read32(addr &^ 0x03)
}
