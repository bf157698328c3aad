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
	"github.com/jetsetilly/gsfplayer/hardware/arm7"
	"github.com/jetsetilly/gsfplayer/hardware/memory"
)

// State stores the GBA sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU   *arm7.State
	Mem   *memory.Memory
	Clock arm7.Clock

	Entry    uint32
	Frame    int
	FrameEnd int
}

// Snapshot creates a copy of a previously snapshotted GBA State.
func (s *State) Snapshot() *State {
	n := *s
	n.CPU = s.CPU.Snapshot()
	n.Mem = s.Mem.Snapshot()
	return &n
}

// Snapshot the state of the GBA sub-systems.
func (gba *GBA) Snapshot() *State {
	return &State{
		CPU:      gba.CPU.Snapshot(),
		Mem:      gba.Mem.Snapshot(),
		Clock:    *gba.Clock,
		Entry:    gba.entry,
		Frame:    gba.frame,
		FrameEnd: gba.frameEnd,
	}
}

// Plumb a previously snapshotted system.
func (gba *GBA) Plumb(state *State) {
	if state == nil {
		panic("gba: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state
	gba.Mem = state.Mem.Snapshot()
	gba.CPU.Plumb(state.CPU)
	gba.CPU.PlumbBus(gba.Mem, gba.Mem.Timing)
	gba.BIOS.Plumb(gba.CPU, gba.Mem)

	*gba.Clock = state.Clock
	gba.entry = state.Entry
	gba.frame = state.Frame
	gba.frameEnd = state.FrameEnd
	gba.reset = true
}
