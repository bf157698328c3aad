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

// Region of the GBA memory map. The region is selected by bits 24 to 27 of
// an address.
type Region int

// List of valid Region values.
const (
	BIOS   Region = 0x00
	EWRAM  Region = 0x02
	IWRAM  Region = 0x03
	IO     Region = 0x04
	PAL    Region = 0x05
	VRAM   Region = 0x06
	OAM    Region = 0x07
	WS0    Region = 0x08
	WS0Hi  Region = 0x09
	WS1    Region = 0x0a
	WS1Hi  Region = 0x0b
	WS2    Region = 0x0c
	WS2Hi  Region = 0x0d
	SRAM   Region = 0x0e
	Unused Region = 0x0f
)

// RegionOf returns the Region for the address.
func RegionOf(addr uint32) Region {
	r := Region((addr >> 24) & 0x0f)
	if r == 0x01 {
		return Unused
	}
	return r
}

func (r Region) String() string {
	switch r {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case PAL:
		return "PAL"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case WS0, WS0Hi:
		return "ROM (WS0)"
	case WS1, WS1Hi:
		return "ROM (WS1)"
	case WS2, WS2Hi:
		return "ROM (WS2)"
	case SRAM:
		return "SRAM"
	}
	return "unused"
}

// isGamePak returns true if the region is one of the ROM mirrors.
func (r Region) isGamePak() bool {
	return r >= WS0 && r <= WS2Hi
}

// origins and sizes of the memory areas
const (
	OriginBIOS = uint32(0x00000000)
	SizeBIOS   = 0x4000

	OriginEWRAM = uint32(0x02000000)
	SizeEWRAM   = 0x40000

	OriginIWRAM = uint32(0x03000000)
	SizeIWRAM   = 0x8000

	OriginIO = uint32(0x04000000)
	SizeIO   = 0x400

	OriginPAL = uint32(0x05000000)
	SizePAL   = 0x400

	OriginVRAM = uint32(0x06000000)
	SizeVRAM   = 0x18000

	OriginOAM = uint32(0x07000000)
	SizeOAM   = 0x400

	OriginROM = uint32(0x08000000)
	MaxROM    = 0x2000000

	OriginSRAM = uint32(0x0e000000)
	SizeSRAM   = 0x10000
)
