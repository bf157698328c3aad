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

// Bus is the memory interface used by the CPU. Values returned by Read16()
// and Read32() have already been rotated in the case of an unaligned address.
// ReadSigned8() and ReadSigned16() return the sign extended value.
//
// Fetch16() and Fetch32() are used to fill the prefetch pipeline. They are
// distinct from the Read*() functions because an instruction fetch has no
// side effects on memory mapped registers.
type Bus interface {
	Read8(addr uint32) uint32
	Read16(addr uint32) uint32
	Read32(addr uint32) uint32
	ReadSigned8(addr uint32) uint32
	ReadSigned16(addr uint32) uint32

	Write8(addr uint32, val uint8)
	Write16(addr uint32, val uint16)
	Write32(addr uint32, val uint32)

	Fetch16(addr uint32) uint16
	Fetch32(addr uint32) uint32
}

// Width of a bus access.
type Width int

// List of valid Width values.
const (
	Byte Width = iota
	Halfword
	Word
)

func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Halfword:
		return "halfword"
	case Word:
		return "word"
	}
	return "unknown width"
}

// Timing provides the cycle cost of bus accesses. The Prefetch argument is
// owned by the CPU and is updated by the Timing implementation as a side
// effect of the query.
type Timing interface {
	// the number of wait cycles required to fetch an instruction
	CodeCycles(pf *Prefetch, addr uint32, width Width, sequential bool) int

	// the number of wait cycles required for a data access
	DataCycles(pf *Prefetch, addr uint32, width Width, sequential bool) int

	// RequestPrefetch is called before a data access if the prefetch
	// counter is empty. the implementation should set the Active field of
	// the Prefetch instance if the prefetch buffer is enabled
	RequestPrefetch(pf *Prefetch)
}

// Interrupts is implemented by the BIOS emulation. Returning an error from
// either function is a fatal condition and will cause Run() to end with that
// error.
type Interrupts interface {
	SoftwareInterrupt(comment uint8) error
	UndefinedInstruction(opcode uint16) error
}

// Prefetch is the model of the game pak prefetch buffer. Each set bit of the
// low byte of Count represents an opcode waiting in the buffer. Bit 8 is set
// when the buffer has been filled beyond its capacity.
type Prefetch struct {
	Count uint32

	// the CPU has asked the bus to prefetch during the current instruction
	Active bool
}

// called at the start of every instruction
func (pf *Prefetch) saturate() {
	pf.Active = false
	if pf.Count&0xffffff00 != 0 {
		pf.Count = 0x100 | (pf.Count & 0xff)
	}
}

// internal cycles allow the buffer to fill
func (pf *Prefetch) idle(cycles int) {
	pf.Count = (pf.Count << cycles) | (0xff >> (8 - cycles))
}

// Flush the prefetch buffer.
func (pf *Prefetch) Flush() {
	pf.Count = 0
}
