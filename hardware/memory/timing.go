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

	"github.com/jetsetilly/gsfplayer/hardware/arm7"
)

// wait states selected by the WAITCNT register
var (
	sramWait   = [4]int{4, 3, 2, 8}
	romWait    = [4]int{4, 3, 2, 8}
	ws0SeqWait = [2]int{2, 1}
	ws1SeqWait = [2]int{4, 1}
	ws2SeqWait = [2]int{8, 1}
)

// Timing implements the arm7.Timing interface for the GBA memory map. The
// tables are indexed by region and give the number of wait states for
// non-sequential and sequential accesses, at 16bit and 32bit widths.
//
// The game pak prefetch buffer is modelled by the Count field of the
// arm7.Prefetch type. Each set bit in the low byte is a halfword that has
// been prefetched while the CPU was busy with something else.
type Timing struct {
	wait      [16]int
	wait32    [16]int
	waitSeq   [16]int
	waitSeq32 [16]int

	waitcnt         uint16
	prefetchEnabled bool

	// the prefetch counter is owned by the CPU. changes to WAITCNT invalidate
	// the counter the next time the CPU asks for a cost
	invalidate bool
}

// NewTiming is the preferred method of initialisation for the Timing type.
func NewTiming() *Timing {
	t := &Timing{
		wait:      [16]int{0, 0, 2, 0, 0, 0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 0},
		wait32:    [16]int{0, 0, 5, 0, 0, 1, 1, 0, 7, 7, 9, 9, 13, 13, 4, 0},
		waitSeq:   [16]int{0, 0, 2, 0, 0, 0, 0, 0, 2, 2, 4, 4, 8, 8, 4, 0},
		waitSeq32: [16]int{0, 0, 5, 0, 0, 1, 1, 0, 5, 5, 9, 9, 17, 17, 4, 0},
	}
	return t
}

func (t *Timing) String() string {
	return fmt.Sprintf("WAITCNT: %04x prefetch: %v ROM: %d/%d %d/%d %d/%d SRAM: %d",
		t.waitcnt, t.prefetchEnabled,
		t.wait[WS0], t.waitSeq[WS0], t.wait[WS1], t.waitSeq[WS1], t.wait[WS2], t.waitSeq[WS2],
		t.wait[SRAM])
}

// WaitCnt returns the last value written to the WAITCNT register.
func (t *Timing) WaitCnt() uint16 {
	return t.waitcnt
}

// PrefetchEnabled returns true if the game pak prefetch buffer is enabled.
func (t *Timing) PrefetchEnabled() bool {
	return t.prefetchEnabled
}

// SetWaitCnt reconfigures the wait states in the same way as a write to the
// WAITCNT register.
func (t *Timing) SetWaitCnt(v uint16) {
	t.waitcnt = v

	t.wait[SRAM] = sramWait[v&0x03]
	t.waitSeq[SRAM] = t.wait[SRAM]

	t.wait[WS0] = romWait[(v>>2)&0x03]
	t.waitSeq[WS0] = ws0SeqWait[(v>>4)&0x01]
	t.wait[WS1] = romWait[(v>>5)&0x03]
	t.waitSeq[WS1] = ws1SeqWait[(v>>7)&0x01]
	t.wait[WS2] = romWait[(v>>8)&0x03]
	t.waitSeq[WS2] = ws2SeqWait[(v>>10)&0x01]

	for _, r := range []Region{WS0, WS1, WS2} {
		t.wait[r+1] = t.wait[r]
		t.waitSeq[r+1] = t.waitSeq[r]
	}

	for r := WS0; r < Unused; r++ {
		t.wait32[r] = t.wait[r] + t.waitSeq[r] + 1
		t.waitSeq32[r] = t.waitSeq[r]*2 + 1
	}

	t.prefetchEnabled = v&0x4000 == 0x4000
	t.invalidate = true
}

func (t *Timing) sync(pf *arm7.Prefetch) {
	if t.invalidate {
		t.invalidate = false
		pf.Active = false
		pf.Count = 0
	}
}

// shift the counter right by n bits, keeping the saturation bit
func consume(pf *arm7.Prefetch, n uint) {
	pf.Count = ((pf.Count & 0xff) >> n) | (pf.Count & 0xffffff00)
}

// CodeCycles implements the arm7.Timing interface.
func (t *Timing) CodeCycles(pf *arm7.Prefetch, addr uint32, width arm7.Width, sequential bool) int {
	t.sync(pf)

	r := RegionOf(addr)

	if !r.isGamePak() {
		if width == arm7.Word {
			if sequential {
				return t.waitSeq32[r]
			}
			pf.Count = 0
			return t.wait32[r]
		}
		pf.Count = 0
		if sequential {
			return t.waitSeq[r]
		}
		return t.wait[r]
	}

	// a halfword is waiting in the prefetch buffer
	if pf.Count&0x01 == 0x01 {
		if width == arm7.Halfword && sequential {
			consume(pf, 1)
			return 0
		}

		// two halfwords are waiting
		if pf.Count&0x02 == 0x02 {
			consume(pf, 2)
			return 0
		}
		consume(pf, 1)

		if width == arm7.Word && sequential {
			return t.waitSeq[r]
		}
		return t.waitSeq[r] - 1
	}

	if sequential {
		if pf.Count > 0xff {
			pf.Count = 0
			if width == arm7.Word {
				return t.waitSeq32[r]
			}
			return t.wait[r]
		}
		if width == arm7.Word {
			return t.waitSeq32[r]
		}
		return t.waitSeq[r]
	}

	pf.Count = 0
	if width == arm7.Word {
		return t.wait32[r]
	}
	return t.wait[r]
}

// DataCycles implements the arm7.Timing interface.
func (t *Timing) DataCycles(pf *arm7.Prefetch, addr uint32, width arm7.Width, sequential bool) int {
	t.sync(pf)

	r := RegionOf(addr)

	var v int
	switch {
	case width == arm7.Word && sequential:
		v = t.waitSeq32[r]
	case width == arm7.Word:
		v = t.wait32[r]
	case sequential:
		v = t.waitSeq[r]
	default:
		v = t.wait[r]
	}

	if r >= WS0 || r < EWRAM {
		// the prefetch buffer is interrupted by accesses to the game pak and
		// the BIOS
		pf.Count = 0
		pf.Active = false
	} else if pf.Active {
		// the access happens in parallel with prefetching
		ws := v
		if ws == 0 {
			ws = 1
		}
		pf.Count = ((pf.Count + 1) << ws) - 1
	}

	return v
}

// RequestPrefetch implements the arm7.Timing interface.
func (t *Timing) RequestPrefetch(pf *arm7.Prefetch) {
	t.sync(pf)
	pf.Active = t.prefetchEnabled
}
