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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/hardware/clocks"
	"github.com/jetsetilly/gsfplayer/performance"
	"github.com/jetsetilly/gsfplayer/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, trace")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfile("all")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectApproximate(t, fps, 60.0, 0.0001)
	test.ExpectApproximate(t, accuracy, 100*60.0/clocks.FramesPerSecond, 0.0001)

	fps, _ = performance.CalcFPS(120, 0)
	test.ExpectApproximate(t, fps, 0.0, 0.0)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")
	ran := false
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_trace.profile")
	test.ExpectFailure(t, err)
}
