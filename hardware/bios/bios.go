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
	"fmt"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	SoftReset            = "bios: soft reset"
	UndefinedInstruction = "bios: undefined instruction (%04x)"
)

// CPU is the part of the arm7.CPU type used by the BIOS.
type CPU interface {
	Register(r int) uint32
	SetRegister(r int, v uint32)
}

// BIOS services software interrupts and undefined instructions.
type BIOS struct {
	prefs *preferences.ARM7Preferences
	cpu   CPU
	bus   arm7.Bus
	clk   *arm7.Clock

	// unsupported calls that have been logged
	logged map[uint8]bool

	// the number of times each call has been made
	Calls [256]int
}

// NewBIOS is the preferred method of initialisation for the BIOS type.
func NewBIOS(prefs *preferences.ARM7Preferences, cpu CPU, bus arm7.Bus, clk *arm7.Clock) *BIOS {
	return &BIOS{
		prefs:  prefs,
		cpu:    cpu,
		bus:    bus,
		clk:    clk,
		logged: make(map[uint8]bool),
	}
}

// Plumb a new CPU and bus into the BIOS. Used after a snapshot of the
// machine has been restored.
func (b *BIOS) Plumb(cpu CPU, bus arm7.Bus) {
	b.cpu = cpu
	b.bus = bus
}

// Reset the call counts and the record of logged calls.
func (b *BIOS) Reset() {
	clear(b.logged)
	b.Calls = [256]int{}
}

// AllowLogging implements the logger.Permission interface.
func (b *BIOS) AllowLogging() bool {
	return true
}

// names of the BIOS calls
var names = map[uint8]string{
	0x00: "SoftReset",
	0x01: "RegisterRamReset",
	0x02: "Halt",
	0x03: "Stop",
	0x04: "IntrWait",
	0x05: "VBlankIntrWait",
	0x06: "Div",
	0x07: "DivArm",
	0x08: "Sqrt",
	0x09: "ArcTan",
	0x0a: "ArcTan2",
	0x0b: "CpuSet",
	0x0c: "CpuFastSet",
	0x0d: "GetBiosChecksum",
	0x0e: "BgAffineSet",
	0x0f: "ObjAffineSet",
	0x10: "BitUnPack",
	0x11: "LZ77UnCompWram",
	0x12: "LZ77UnCompVram",
	0x13: "HuffUnComp",
	0x14: "RLUnCompWram",
	0x15: "RLUnCompVram",
	0x16: "Diff8bitUnFilterWram",
	0x17: "Diff8bitUnFilterVram",
	0x18: "Diff16bitUnFilter",
	0x19: "SoundBias",
	0x1a: "SoundDriverInit",
	0x1b: "SoundDriverMode",
	0x1c: "SoundDriverMain",
	0x1d: "SoundDriverVSync",
	0x1e: "SoundChannelClear",
	0x1f: "MidiKey2Freq",
	0x28: "SoundDriverVSyncOff",
	0x29: "SoundDriverVSyncOn",
}

// Name returns the name of the BIOS call.
func Name(comment uint8) string {
	if n, ok := names[comment]; ok {
		return n
	}
	return fmt.Sprintf("unknown (%02x)", comment)
}

// the checksum returned by the GBA BIOS
const biosChecksum = 0xbaae187f

// SoftwareInterrupt implements the arm7.Interrupts interface.
func (b *BIOS) SoftwareInterrupt(comment uint8) error {
	b.Calls[comment]++

	switch comment {
	case 0x00:
		return curated.Errorf(SoftReset)
	case 0x01:
		b.registerRAMReset()
	case 0x02, 0x03, 0x04, 0x05:
		b.clk.Hold = true
	case 0x06:
		b.div()
	case 0x07:
		num := b.cpu.Register(1)
		b.cpu.SetRegister(1, b.cpu.Register(0))
		b.cpu.SetRegister(0, num)
		b.div()
	case 0x08:
		b.sqrt()
	case 0x09:
		b.arcTan()
	case 0x0a:
		b.arcTan2()
	case 0x0b:
		b.cpuSet()
	case 0x0c:
		b.cpuFastSet()
	case 0x0d:
		b.cpu.SetRegister(0, biosChecksum)
	case 0x11, 0x12:
		b.lz77()
	case 0x14, 0x15:
		b.runLength()
	case 0x16, 0x17:
		b.diffUnfilter(arm7.Byte)
	case 0x18:
		b.diffUnfilter(arm7.Halfword)
	case 0x19:
		b.soundBias()
	case 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x28, 0x29:
		// the rip replaces the BIOS sound driver with its own
	default:
		if !b.logged[comment] {
			b.logged[comment] = true
			logger.Logf(b, "BIOS", "unsupported call %s", Name(comment))
		}
	}

	return nil
}

// UndefinedInstruction implements the arm7.Interrupts interface.
func (b *BIOS) UndefinedInstruction(opcode uint16) error {
	if b.prefs != nil && b.prefs.AbortOnUndefined.Get().(bool) {
		return curated.Errorf(UndefinedInstruction, opcode)
	}
	return nil
}
