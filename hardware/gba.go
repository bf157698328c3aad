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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/hardware/bios"
	"github.com/jetsetilly/gsfplayer/hardware/clocks"
	"github.com/jetsetilly/gsfplayer/hardware/instance"
	"github.com/jetsetilly/gsfplayer/hardware/memory"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	GBAError    = "gba: %v"
	NotResetErr = "gba: emulation has not been reset"
)

// Stack pointer at reset. The BIOS sets the stacks for the user, IRQ and
// supervisor modes before handing control to the ROM. Only the user mode
// stack matters because the CPU never leaves user mode.
const (
	ResetSP    = 0x03007f00
	ResetIRQSP = 0x03007fa0
	ResetSVCSP = 0x03007fe0
)

// FrameListener implementations are notified at the end of every frame.
type FrameListener interface {
	EndFrame(cycles int) error
}

// GBA is the root of the emulation.
type GBA struct {
	Instance *instance.Instance

	CPU   *arm7.CPU
	Mem   *memory.Memory
	BIOS  *bios.BIOS
	Clock *arm7.Clock

	// the entry point of the program. set by Reset()
	entry uint32
	reset bool

	// number of completed frames and the cycle count at which the current
	// frame ends
	frame    int
	frameEnd int

	listeners []FrameListener
}

// NewGBA creates a new GBA and everything associated with the hardware.
func NewGBA(ins *instance.Instance) (*GBA, error) {
	if ins == nil || ins.Prefs == nil {
		return nil, curated.Errorf(GBAError, "no preferences")
	}

	gba := &GBA{
		Instance: ins,
		Clock:    &arm7.Clock{},
	}

	gba.Mem = memory.NewMemory(ins.Prefs.ARM7)
	gba.CPU = arm7.NewCPU(ins.Prefs.ARM7, gba.Mem, gba.Mem.Timing)
	gba.BIOS = bios.NewBIOS(ins.Prefs.ARM7, gba.CPU, gba.Mem, gba.Clock)
	gba.CPU.PlumbInterrupts(gba.BIOS)

	return gba, nil
}

func (gba *GBA) String() string {
	return fmt.Sprintf("frame: %d cycles: %d\n%s", gba.frame, gba.Clock.Total, gba.CPU.String())
}

// AddFrameListener adds a listener to be notified at the end of every frame.
func (gba *GBA) AddFrameListener(l FrameListener) {
	gba.listeners = append(gba.listeners, l)
}

// LoadProgram copies the program into memory at the address.
func (gba *GBA) LoadProgram(addr uint32, data []byte) error {
	if err := gba.Mem.Load(addr, data); err != nil {
		return curated.Errorf(GBAError, err)
	}
	return nil
}

// Reset the emulation and begin execution at the entry point. Execution
// begins in Thumb mode if bit zero of the entry address is set.
func (gba *GBA) Reset(entry uint32) {
	gba.Mem.Reset()
	gba.BIOS.Reset()
	gba.CPU.Reset(entry)
	gba.CPU.SetRegister(arm7.SP, ResetSP)

	*gba.Clock = arm7.Clock{Horizon: clocks.CyclesPerFrame}
	gba.frame = 0
	gba.frameEnd = clocks.CyclesPerFrame
	gba.entry = entry
	gba.reset = true

	logger.Logf(logger.Allow, gba.Instance.Tag("gba"), "reset to %08x (%s)", entry, gba.CPU.Mode())
}

// Entry returns the entry point of the program.
func (gba *GBA) Entry() uint32 {
	return gba.entry
}

// Frame returns the number of completed frames.
func (gba *GBA) Frame() int {
	return gba.frame
}

// Cycles returns the number of CPU cycles since the last reset.
func (gba *GBA) Cycles() int {
	return gba.Clock.Total
}

// run the CPU until the horizon. the Hold and Pending fields of the clock
// are dealt with
func (gba *GBA) run() error {
	stop, err := gba.CPU.Run(gba.Clock)

	switch stop {
	case arm7.StopFatal:
		return curated.Errorf(GBAError, err)

	case arm7.StopHold:
		// the CPU is waiting for the vertical blank. the remaining cycles
		// of the frame pass without any instructions executing
		if gba.Clock.Total < gba.frameEnd {
			gba.Clock.Total = gba.frameEnd
		}

	case arm7.StopInterrupt:
		// interrupts are not delivered to the program
		gba.Clock.Pending = 0

	case arm7.StopModeSwitch:
		// the next call to CPU.Run() uses the interpreter for the new mode.
		// if the mode is not supported it will return an error
	}

	return nil
}

// the frame has ended. the hold is released and the horizon moves forward
func (gba *GBA) endFrame() error {
	gba.frame++
	gba.frameEnd += clocks.CyclesPerFrame
	gba.Clock.Hold = false

	for _, l := range gba.listeners {
		if err := l.EndFrame(clocks.CyclesPerFrame); err != nil {
			return curated.Errorf(GBAError, err)
		}
	}
	return nil
}

// RunFrame runs the emulation until the end of the current frame.
func (gba *GBA) RunFrame() error {
	if !gba.reset {
		return curated.Errorf(NotResetErr)
	}

	gba.Clock.Horizon = gba.frameEnd
	for gba.Clock.Total < gba.frameEnd {
		if err := gba.run(); err != nil {
			return err
		}
	}
	return gba.endFrame()
}
