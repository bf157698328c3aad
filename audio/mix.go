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

package audio

import "math"

// the mixing parameters for a channel during a single frame
type level struct {
	step  float64
	scale int
	left  bool
	right bool
}

// channel is the queue of samples for one of the direct sound FIFOs.
type channel struct {
	queue []int8

	// position of the next sample in the queue. advanced by the ratio of the
	// input rate to the output rate
	pos float64

	// the most recent sample. repeated when the queue runs dry
	last int8
}

func (ch *channel) reset() {
	ch.queue = ch.queue[:0]
	ch.pos = 0
	ch.last = 0
}

// next returns the sample at the current position and advances the
// position. the bool is false if the queue is exhausted, in which case the
// most recent sample is returned and the position is not advanced.
func (ch *channel) next(step float64) (int8, bool) {
	i := int(ch.pos)
	if i >= len(ch.queue) {
		return ch.last, false
	}
	ch.last = ch.queue[i]
	ch.pos += step
	return ch.last, true
}

// discard consumed samples from the front of the queue.
func (ch *channel) discard() {
	n := min(int(ch.pos), len(ch.queue))
	ch.queue = ch.queue[:copy(ch.queue, ch.queue[n:])]
	ch.pos -= float64(n)
}

// Clamp rounds the value to the nearest int16.
func Clamp(v float64) int16 {
	v = math.Round(v)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Mono returns the average of a stereo pair.
func Mono(left int16, right int16) int16 {
	return int16((int32(left) + int32(right)) >> 1)
}

// Envelope returns the gain at the elapsed time (in seconds) of a rendering
// that plays at full volume for length seconds and then fades to silence over
// fade seconds.
func Envelope(elapsed float64, length float64, fade float64) float64 {
	if elapsed < length {
		return 1.0
	}
	if fade <= 0 || elapsed >= length+fade {
		return 0.0
	}
	return 1.0 - (elapsed-length)/fade
}
