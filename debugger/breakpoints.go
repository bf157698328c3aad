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

package debugger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
)

// Sentinal error patterns.
const (
	BreakpointError = "breakpoint: %v"
)

type breakpoints struct {
	addrs []uint32
}

// ParseBreakpoints parses a comma separated list of hexadecimal addresses.
// The addresses can have a 0x or $ prefix. Bit zero of an address is ignored.
func ParseBreakpoints(s string) ([]uint32, error) {
	var addrs []uint32
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		f = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(f), "$"), "0x")
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, curated.Errorf(BreakpointError, err)
		}
		addrs = append(addrs, uint32(v)&^0x01)
	}
	return addrs, nil
}

func (bp *breakpoints) add(addr uint32) {
	addr &^= 0x01
	if !bp.check(addr) {
		bp.addrs = append(bp.addrs, addr)
		slices.Sort(bp.addrs)
	}
}

func (bp *breakpoints) check(addr uint32) bool {
	_, ok := slices.BinarySearch(bp.addrs, addr&^0x01)
	return ok
}

func (bp *breakpoints) String() string {
	if len(bp.addrs) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addrs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%08x", a))
	}
	return s.String()
}
