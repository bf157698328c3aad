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

package preferences

import (
	"github.com/jetsetilly/gsfplayer/prefs"
)

// ARM7Preferences are the preference values for the CPU and the memory bus.
type ARM7Preferences struct {
	// speed of processor
	Clock prefs.Float // Mhz

	// the value of the WAITCNT register after a reset. rips usually set the
	// register themselves but some drivers rely on the value left by the game
	WaitCnt prefs.Int

	// log every undefined instruction
	LogUndefined prefs.Bool

	// an undefined instruction will stop emulation with an error
	AbortOnUndefined prefs.Bool
}

func newARM7Preferences(dsk *prefs.Disk) (*ARM7Preferences, error) {
	p := &ARM7Preferences{}
	p.SetDefaults()

	err := dsk.Add("hardware.arm7.clock", &p.Clock)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("hardware.arm7.waitcnt", &p.WaitCnt)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("hardware.arm7.logUndefined", &p.LogUndefined)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("hardware.arm7.abortOnUndefined", &p.AbortOnUndefined)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all ARM7 settings to default values.
func (p *ARM7Preferences) SetDefaults() {
	// GBA processor runs at 2^24 Hz
	p.Clock.Set(16.777216)
	p.WaitCnt.Set(0)
	p.LogUndefined.Set(false)
	p.AbortOnUndefined.Set(false)
}

// CyclesPerSecond returns the clock speed in Hz.
func (p *ARM7Preferences) CyclesPerSecond() float64 {
	return p.Clock.Get().(float64) * 1000000
}
