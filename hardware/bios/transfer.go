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

package bios

import (
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
)

// the value read by CpuSet when the source is outside of the readable area
const openBusFill = 0x1cad1cad

// regions cleared by RegisterRamReset. the top of IWRAM contains the stacks
// and the interrupt vector and is never cleared
var ramResetRegions = []struct {
	flag   uint32
	origin uint32
	size   uint32
}{
	{flag: 0x01, origin: 0x02000000, size: 0x40000},
	{flag: 0x02, origin: 0x03000000, size: 0x7e00},
	{flag: 0x04, origin: 0x05000000, size: 0x400},
	{flag: 0x08, origin: 0x06000000, size: 0x18000},
	{flag: 0x10, origin: 0x07000000, size: 0x400},
	{flag: 0x40, origin: 0x04000060, size: 0x40},
	{flag: 0x80, origin: 0x04000000, size: 0x60},
	{flag: 0x80, origin: 0x040000b0, size: 0x70},
}

func (b *BIOS) registerRAMReset() {
	flags := b.cpu.Register(0)
	for _, r := range ramResetRegions {
		if flags&r.flag != r.flag {
			continue
		}
		for a := r.origin; a < r.origin+r.size; a += 2 {
			b.bus.Write16(a, 0)
		}
	}
}

// cpuSet copies or fills memory. R0 is the source, R1 the destination and
// R2 the count and mode. the count is in units of the transfer width
func (b *BIOS) cpuSet() {
	src := b.cpu.Register(0)
	dest := b.cpu.Register(1)
	cnt := b.cpu.Register(2)

	count := cnt & 0x1fffff
	fill := cnt&0x01000000 == 0x01000000

	// the BIOS refuses to read from itself
	if src&0x0e000000 == 0 {
		return
	}

	if cnt&0x04000000 == 0x04000000 {
		src &^= 0x03
		dest &^= 0x03
		v := uint32(openBusFill)
		if src <= 0x0effffff {
			v = b.bus.Read32(src)
		}
		for ; count > 0; count-- {
			if !fill {
				v = b.bus.Read32(src)
				src += 4
			}
			b.bus.Write32(dest, v)
			dest += 4
		}
		return
	}

	src &^= 0x01
	dest &^= 0x01
	v := uint16(b.bus.Read16(src))
	for ; count > 0; count-- {
		if !fill {
			v = uint16(b.bus.Read16(src))
			src += 2
		}
		b.bus.Write16(dest, v)
		dest += 2
	}
}

// cpuFastSet is the same as cpuSet except that transfers are always 32bit
// and are made in blocks of eight words
func (b *BIOS) cpuFastSet() {
	src := b.cpu.Register(0) &^ 0x03
	dest := b.cpu.Register(1) &^ 0x03
	cnt := b.cpu.Register(2)

	if src&0x0e000000 == 0 {
		return
	}

	count := ((cnt & 0x1fffff) + 7) &^ 0x07
	fill := cnt&0x01000000 == 0x01000000

	v := b.bus.Read32(src)
	for ; count > 0; count-- {
		if !fill {
			v = b.bus.Read32(src)
			src += 4
		}
		b.bus.Write32(dest, v)
		dest += 4
	}
}

// the size of decompressed data is in the upper 24 bits of the header word
func (b *BIOS) compressedHeader() (uint32, uint32, int) {
	src := b.cpu.Register(0)
	dest := b.cpu.Register(1)
	size := int(b.bus.Read32(src&^0x03) >> 8)
	return src + 4, dest, size
}

func (b *BIOS) lz77() {
	src, dest, size := b.compressedHeader()

	for size > 0 {
		flags := uint8(b.bus.Read8(src))
		src++

		for i := 0; i < 8 && size > 0; i++ {
			if flags&0x80 == 0x80 {
				hi := b.bus.Read8(src)
				lo := b.bus.Read8(src + 1)
				src += 2
				disp := (((hi & 0x0f) << 8) | lo) + 1
				n := int(hi>>4) + 3
				for ; n > 0 && size > 0; n-- {
					b.bus.Write8(dest, uint8(b.bus.Read8(dest-disp)))
					dest++
					size--
				}
			} else {
				b.bus.Write8(dest, uint8(b.bus.Read8(src)))
				src++
				dest++
				size--
			}
			flags <<= 1
		}
	}
}

func (b *BIOS) runLength() {
	src, dest, size := b.compressedHeader()

	for size > 0 {
		flag := uint8(b.bus.Read8(src))
		src++

		if flag&0x80 == 0x80 {
			n := int(flag&0x7f) + 3
			v := uint8(b.bus.Read8(src))
			src++
			for ; n > 0 && size > 0; n-- {
				b.bus.Write8(dest, v)
				dest++
				size--
			}
		} else {
			n := int(flag&0x7f) + 1
			for ; n > 0 && size > 0; n-- {
				b.bus.Write8(dest, uint8(b.bus.Read8(src)))
				src++
				dest++
				size--
			}
		}
	}
}

// each value in the source is the difference from the previous value
func (b *BIOS) diffUnfilter(width arm7.Width) {
	src, dest, size := b.compressedHeader()

	if width == arm7.Byte {
		var v uint8
		for ; size > 0; size-- {
			v += uint8(b.bus.Read8(src))
			b.bus.Write8(dest, v)
			src++
			dest++
		}
		return
	}

	var v uint16
	for ; size > 1; size -= 2 {
		v += uint16(b.bus.Read16(src))
		b.bus.Write16(dest, v)
		src += 2
		dest += 2
	}
}

// address of the SOUNDBIAS register
const regSOUNDBIAS = 0x04000088

func (b *BIOS) soundBias() {
	bias := uint16(b.bus.Read16(regSOUNDBIAS)) &^ 0x03ff
	if b.cpu.Register(0) != 0 {
		bias |= 0x0200
	}
	b.bus.Write16(regSOUNDBIAS, bias)
}
