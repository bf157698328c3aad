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

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gsfplayer/hardware/memory"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Source describes the sound hardware state the Capture needs to mix the
// queued samples. Implemented by memory.Memory.
type Source interface {
	TimerPeriod(timer int) int
	DirectSoundTimer(channel memory.Channel) int
	DirectSoundOutput(channel memory.Channel) (left bool, right bool, full bool)
}

// DefaultSampleRate is used when the sample rate can not be derived from a
// timer.
const DefaultSampleRate = 32768

// the maximum number of samples queued for a single channel. a program
// writing to the FIFO faster than the timer consumes the samples would
// otherwise grow the queue without limit
const maxQueue = 8192

// Stats records the activity of the Capture.
type Stats struct {
	Frames  int
	Skipped int

	Pushed    [2]int
	Underruns [2]int
	Overruns  [2]int
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d skipped=%d pushed=%d/%d underruns=%d/%d overruns=%d/%d",
		s.Frames, s.Skipped,
		s.Pushed[0], s.Pushed[1],
		s.Underruns[0], s.Underruns[1],
		s.Overruns[0], s.Overruns[1])
}

// Capture implements the memory.FIFO interface.
type Capture struct {
	prefs *preferences.Preferences
	src   Source

	channels [2]channel
	sinks    []Sink

	// zero until the first frame that produces audio unless the sample rate
	// preference is set
	sampleRate int

	// true once a sample has been pushed to either channel
	started bool

	// fraction of a sample carried over from the previous frame
	remainder float64

	// applied in addition to the volume preference
	gain float64

	buffer []int16

	Stats Stats
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture(prefs *preferences.Preferences, src Source) *Capture {
	c := &Capture{
		prefs: prefs,
		src:   src,
	}
	c.Clear()
	return c
}

// AddSink adds a destination for the mixed audio.
func (c *Capture) AddSink(s Sink) {
	c.sinks = append(c.sinks, s)
}

// Clear discards all queued samples and resets the sinks. The sample rate
// will be decided again on the next frame with sound.
func (c *Capture) Clear() {
	for i := range c.channels {
		c.channels[i].reset()
	}
	c.sampleRate = c.prefs.Audio.SampleRate.Get().(int)
	c.started = false
	c.remainder = 0
	c.gain = 1.0
	c.Stats = Stats{}
	for _, s := range c.sinks {
		s.Reset()
	}
}

// Push implements the memory.FIFO interface.
func (c *Capture) Push(ch memory.Channel, sample int8) {
	q := &c.channels[ch]
	q.queue = append(q.queue, sample)
	c.Stats.Pushed[ch]++
	if len(q.queue) > maxQueue {
		n := len(q.queue) - maxQueue
		q.queue = q.queue[:copy(q.queue, q.queue[n:])]
		q.pos = max(0, q.pos-float64(n))
		c.Stats.Overruns[ch]++
	}
}

// Reset implements the memory.FIFO interface.
func (c *Capture) Reset(ch memory.Channel) {
	c.channels[ch].reset()
}

// SampleRate returns the output sample rate. Zero if it has not been decided
// yet.
func (c *Capture) SampleRate() int {
	return c.sampleRate
}

// SetGain sets the gain applied to the mixed audio. Used to fade out the end
// of a rendering. The value is clamped to the range 0.0 to 1.0.
func (c *Capture) SetGain(gain float64) {
	c.gain = math.Max(0.0, math.Min(1.0, gain))
}

// inputRate returns the rate at which the channel is consumed in samples per
// second. Zero if the timer driving the channel is not running.
func (c *Capture) inputRate(ch memory.Channel) float64 {
	period := c.src.TimerPeriod(c.src.DirectSoundTimer(ch))
	if period == 0 {
		return 0
	}
	return c.prefs.ARM7.CyclesPerSecond() / float64(period)
}

// decide the output sample rate from the first channel with a running timer
func (c *Capture) deriveRate() int {
	for _, ch := range []memory.Channel{memory.ChannelA, memory.ChannelB} {
		if len(c.channels[ch].queue) == 0 {
			continue
		}
		if r := c.inputRate(ch); r > 0 {
			return int(math.Round(r))
		}
	}
	return DefaultSampleRate
}

// EndFrame mixes the samples queued during a frame of the specified number
// of CPU cycles and forwards the result to the sinks.
//
// Frames before the first sample is pushed produce no audio.
func (c *Capture) EndFrame(cycles int) error {
	c.Stats.Frames++

	if !c.started {
		if len(c.channels[memory.ChannelA].queue) == 0 && len(c.channels[memory.ChannelB].queue) == 0 {
			c.Stats.Skipped++
			return nil
		}
		c.started = true
		if c.sampleRate == 0 {
			c.sampleRate = c.deriveRate()
		}
		logger.Logf(logger.Allow, "audio", "sample rate is %dHz", c.sampleRate)
	}

	exact := float64(c.sampleRate)*float64(cycles)/c.prefs.ARM7.CyclesPerSecond() + c.remainder
	n := int(exact)
	c.remainder = exact - float64(n)

	var lvl [2]level
	for i := range lvl {
		ch := memory.Channel(i)
		lvl[i] = level{step: 1.0}
		if r := c.inputRate(ch); r > 0 {
			lvl[i].step = r / float64(c.sampleRate)
		}
		left, right, full := c.src.DirectSoundOutput(ch)
		if full {
			lvl[i].scale = 128
		} else {
			lvl[i].scale = 64
		}
		lvl[i].left = left
		lvl[i].right = right
	}

	gain := c.gain * c.prefs.Audio.Volume.Get().(float64)

	c.buffer = c.buffer[:0]
	for range n {
		var left, right int
		for i := range c.channels {
			v, ok := c.channels[i].next(lvl[i].step)
			if !ok {
				c.Stats.Underruns[i]++
			}
			s := int(v) * lvl[i].scale
			if lvl[i].left {
				left += s
			}
			if lvl[i].right {
				right += s
			}
		}
		c.buffer = append(c.buffer, Clamp(float64(left)*gain), Clamp(float64(right)*gain))
	}

	for i := range c.channels {
		c.channels[i].discard()
	}

	for _, s := range c.sinks {
		if err := s.SetAudio(c.sampleRate, c.buffer); err != nil {
			return err
		}
	}

	return nil
}

// EndMixing concludes every sink. The first error encountered is returned
// but every sink will have EndMixing() called.
func (c *Capture) EndMixing() error {
	var err error
	for _, s := range c.sinks {
		if e := s.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
