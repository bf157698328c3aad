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

package otoplay

import (
	"testing"

	"github.com/jetsetilly/gsfplayer/test"
)

func TestRing(t *testing.T) {
	r := newRing(4)
	r.write([]int16{1, -2})
	test.ExpectEquality(t, r.buffered(), 2)

	p := make([]byte, 6)
	test.ExpectEquality(t, r.read(p), 6)
	test.ExpectEquality(t, p[0], 0x01)
	test.ExpectEquality(t, p[1], 0x00)
	test.ExpectEquality(t, p[2], 0xfe)
	test.ExpectEquality(t, p[3], 0xff)

	// silence after the buffer is exhausted
	test.ExpectEquality(t, p[4], 0x00)
	test.ExpectEquality(t, p[5], 0x00)
	test.ExpectEquality(t, r.underflow, 1)
	test.ExpectEquality(t, r.buffered(), 0)
}

func TestRingOverflow(t *testing.T) {
	r := newRing(4)
	r.write([]int16{1, 2, 3, 4, 5, 6})
	test.ExpectEquality(t, r.buffered(), 4)
	test.ExpectEquality(t, r.overflow, 2)

	// oldest samples were overwritten
	p := make([]byte, 2)
	r.read(p)
	test.ExpectEquality(t, p[0], 0x03)

	r.reset()
	test.ExpectEquality(t, r.buffered(), 0)
}
