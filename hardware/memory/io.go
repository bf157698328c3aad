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

// Channel identifies one of the two direct sound channels.
type Channel int

// List of valid Channel values.
const (
	ChannelA Channel = iota
	ChannelB
)

func (c Channel) String() string {
	if c == ChannelA {
		return "A"
	}
	return "B"
}

// FIFO receives samples written to the direct sound FIFO registers.
type FIFO interface {
	Push(channel Channel, sample int8)
	Reset(channel Channel)
}

// offsets of the IO registers that have side effects
const (
	regSOUNDCNTH = 0x082
	regFIFOA     = 0x0a0
	regFIFOB     = 0x0a4
	regTM0CNTL   = 0x100
	regTM0CNTH   = 0x102
	regTM1CNTL   = 0x104
	regTM1CNTH   = 0x106
	regWAITCNT   = 0x204
)

type registers struct {
	data   []byte
	timing *Timing
	fifo   FIFO

	// the value written to TMxCNT_L. reads of TMxCNT_L return this value
	// rather than the current counter
	reload [2]uint16
}

func newRegisters(timing *Timing) *registers {
	return &registers{
		data:   make([]byte, SizeIO),
		timing: timing,
	}
}

func (io *registers) halfword(reg uint32) uint16 {
	return uint16(io.data[reg]) | uint16(io.data[reg+1])<<8
}

// write8 stores the byte. writes to the FIFO registers are forwarded
// immediately and not stored
func (io *registers) write8(addr uint32, val uint8) {
	if addr&0x00ffffff >= SizeIO {
		return
	}
	reg := addr & (SizeIO - 1)

	switch {
	case reg >= regFIFOA && reg < regFIFOA+4:
		if io.fifo != nil {
			io.fifo.Push(ChannelA, int8(val))
		}
		return
	case reg >= regFIFOB && reg < regFIFOB+4:
		if io.fifo != nil {
			io.fifo.Push(ChannelB, int8(val))
		}
		return
	}

	io.data[reg] = val
}

// commit the halfword register at the address. called after every write
func (io *registers) commit(addr uint32) {
	if addr&0x00ffffff >= SizeIO {
		return
	}
	reg := addr & (SizeIO - 1)

	switch reg {
	case regWAITCNT:
		io.timing.SetWaitCnt(io.halfword(reg))
	case regTM0CNTL:
		io.reload[0] = io.halfword(reg)
	case regTM1CNTL:
		io.reload[1] = io.halfword(reg)
	case regSOUNDCNTH:
		v := io.halfword(reg)
		if io.fifo != nil {
			if v&0x0800 == 0x0800 {
				io.fifo.Reset(ChannelA)
			}
			if v&0x8000 == 0x8000 {
				io.fifo.Reset(ChannelB)
			}
		}
		// the reset bits always read back as zero
		io.data[reg+1] &^= 0x88
	}
}

// TimerPeriod returns the number of CPU cycles between overflows of the
// timer. Returns zero if the timer is not running or if it is counting
// overflows of the previous timer.
func (mem *Memory) TimerPeriod(timer int) int {
	if timer < 0 || timer > 1 {
		return 0
	}

	ctrl := mem.io.halfword(regTM0CNTH + uint32(timer)*4)
	if ctrl&0x80 != 0x80 || ctrl&0x04 == 0x04 {
		return 0
	}

	prescale := [4]int{1, 64, 256, 1024}[ctrl&0x03]
	return prescale * (0x10000 - int(mem.io.reload[timer]))
}

// DirectSoundTimer returns the timer that drives the direct sound channel.
func (mem *Memory) DirectSoundTimer(channel Channel) int {
	bit := uint16(0x0400)
	if channel == ChannelB {
		bit = 0x4000
	}
	if mem.io.halfword(regSOUNDCNTH)&bit == bit {
		return 1
	}
	return 0
}

// DirectSoundOutput returns the output routing of the direct sound channel and
// whether it is played at full volume. A channel at half volume should be
// attenuated by the mixer.
func (mem *Memory) DirectSoundOutput(channel Channel) (left bool, right bool, full bool) {
	v := mem.io.halfword(regSOUNDCNTH)
	if channel == ChannelB {
		return v&0x2000 == 0x2000, v&0x1000 == 0x1000, v&0x0008 == 0x0008
	}
	return v&0x0200 == 0x0200, v&0x0100 == 0x0100, v&0x0004 == 0x0004
}
