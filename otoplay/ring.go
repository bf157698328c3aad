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
	"sync"
)

// ring is a fixed size circular buffer of samples. writes that would
// overflow the buffer overwrite the oldest samples.
type ring struct {
	crit sync.Mutex
	data []int16
	head int
	used int

	// number of samples lost to overflows and underflows
	overflow  int
	underflow int
}

func newRing(size int) *ring {
	return &ring{
		data: make([]int16, size),
	}
}

func (r *ring) write(samples []int16) {
	r.crit.Lock()
	defer r.crit.Unlock()

	for _, s := range samples {
		tail := (r.head + r.used) % len(r.data)
		r.data[tail] = s
		if r.used == len(r.data) {
			r.head = (r.head + 1) % len(r.data)
			r.overflow++
		} else {
			r.used++
		}
	}
}

// read fills p with little endian samples. silence is used if there are not
// enough samples in the buffer. always returns len(p)
func (r *ring) read(p []byte) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	for i := 0; i+1 < len(p); i += 2 {
		var s int16
		if r.used > 0 {
			s = r.data[r.head]
			r.head = (r.head + 1) % len(r.data)
			r.used--
		} else {
			r.underflow++
		}
		p[i] = byte(s)
		p[i+1] = byte(uint16(s) >> 8)
	}
	return len(p)
}

func (r *ring) reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.head = 0
	r.used = 0
}

func (r *ring) buffered() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.used
}
