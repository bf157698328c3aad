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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gsfplayer/hardware/arm7"
)

// Fetcher is the memory the disassembly is created from. Implemented by
// memory.Memory.
type Fetcher interface {
	Fetch16(addr uint32) uint16
}

// Entry is a single line of the disassembly.
type Entry struct {
	arm7.DisasmEntry

	// the opcodes of the instruction. a long branch with link has two
	// opcodes
	Bytecode []uint16
}

// Disassembly is a linear disassembly of a range of memory.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles count instructions starting at the address. Bit
// zero of the address is ignored.
func FromMemory(mem Fetcher, start uint32, count int) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, count),
	}

	addr := start &^ 0x01
	for range count {
		opcode := mem.Fetch16(addr)

		// long branch with link pair
		if opcode&0xf800 == 0xf000 {
			lo := mem.Fetch16(addr + 2)
			if lo&0xf800 == 0xf800 {
				dsm.Entries = append(dsm.Entries, Entry{
					DisasmEntry: arm7.DisassembleLongBranch(addr, opcode, lo),
					Bytecode:    []uint16{opcode, lo},
				})
				addr += 4
				continue
			}
		}

		dsm.Entries = append(dsm.Entries, Entry{
			DisasmEntry: arm7.Disassemble(addr, opcode),
			Bytecode:    []uint16{opcode},
		})
		addr += 2
	}

	return dsm
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		bc := fmt.Sprintf("%04x", e.Bytecode[0])
		if len(e.Bytecode) > 1 {
			bc = fmt.Sprintf("%s %04x", bc, e.Bytecode[1])
		}
		_, err = fmt.Fprintf(output, "%s  %-9s  %s\n", e.Address, bc, e.String())
	} else {
		_, err = fmt.Fprintf(output, "%s  %s\n", e.Address, e.String())
	}
	return err
}
