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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/digest"
	"github.com/jetsetilly/gsfplayer/test"
)

func render(dig *digest.Audio, rate int, n int) {
	samples := make([]int16, 0, 100)
	for i := range n {
		samples = append(samples, int16(i), int16(-i))
		if len(samples) == cap(samples) {
			_ = dig.SetAudio(rate, samples)
			samples = samples[:0]
		}
	}
	_ = dig.SetAudio(rate, samples)
	_ = dig.EndMixing()
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	test.DemandImplements[audio.Sink](t, a)
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")

	render(a, 32768, 1000)
	h := a.Hash()
	test.ExpectInequality(t, h, "0000000000000000000000000000000000000000")

	// the same audio gives the same digest
	b := digest.NewAudio()
	render(b, 32768, 1000)
	test.ExpectEquality(t, b.Hash(), h)

	// different sample rate
	c := digest.NewAudio()
	render(c, 22050, 1000)
	test.ExpectInequality(t, c.Hash(), h)

	// one sample fewer
	c.Reset()
	render(c, 32768, 999)
	test.ExpectInequality(t, c.Hash(), h)

	c.Reset()
	render(c, 32768, 1000)
	test.ExpectEquality(t, c.Hash(), h)
}
