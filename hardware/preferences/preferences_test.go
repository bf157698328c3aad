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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/prefs"
	"github.com/jetsetilly/gsfplayer/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.DefaultPreferences()
	test.ExpectApproximate(t, p.ARM7.CyclesPerSecond(), 16777216.0, 0.5)
	test.ExpectEquality(t, p.ARM7.WaitCnt.Get().(int), 0)
	test.ExpectFailure(t, p.ARM7.LogUndefined.Get().(bool))
	test.ExpectEquality(t, p.Audio.Volume.Get().(float64), 1.0)

	// no disk attached
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	// missing file has been created with default values
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.arm7.waitcnt :: 0\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "audio.volume :: 1\n"))

	test.ExpectSuccess(t, p.ARM7.WaitCnt.Set(0x4317))
	test.ExpectSuccess(t, p.Audio.Volume.Set(0.5))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ARM7.WaitCnt.Get().(int), 0x4317)
	test.ExpectEquality(t, q.Audio.Volume.Get().(float64), 0.5)
}

func TestVolumeRange(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Audio.Volume.Set(1.5))
	test.ExpectEquality(t, p.Audio.Volume.Get().(float64), 1.0)
}
