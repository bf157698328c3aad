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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
)

// Sentinal error patterns.
const (
	ProfileError = "profile: %v"
)

// Profile specifies which profiles are to be generated. Values can be
// combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone  Profile = 0x00
	ProfileCPU   Profile = 0x01
	ProfileMem   Profile = 0x02
	ProfileTrace Profile = 0x04
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile names into a
// Profile value. Valid names are CPU, MEM, TRACE, ALL and NONE.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for f := range strings.SplitSeq(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(f)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile type (%s)", f))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function through the profilers specified by
// the Profile argument. Profile files are named with the filenameHeader
// followed by the profile type.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileTrace == ProfileTrace {
		traceRun := run
		run = func() error {
			return profileTrace(fmt.Sprintf("%s_trace.profile", filenameHeader), traceRun)
		}
	}

	if profile&ProfileCPU == ProfileCPU {
		cpuRun := run
		run = func() error {
			return profileCPU(fmt.Sprintf("%s_cpu.profile", filenameHeader), cpuRun)
		}
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		return profileMem(fmt.Sprintf("%s_mem.profile", filenameHeader))
	}

	return nil
}

// profileCPU runs the supplied function with the CPU profiler running.
func profileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// profileMem writes a heap profile.
func profileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}

// profileTrace runs the supplied function with the execution tracer running.
func profileTrace(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	err = trace.Start(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer trace.Stop()

	return run()
}
