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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/hardware/memory"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/test"
)

type testSource struct {
	period int
	left   [2]bool
	right  [2]bool
	full   [2]bool
}

func (src *testSource) TimerPeriod(timer int) int {
	return src.period
}

func (src *testSource) DirectSoundTimer(channel memory.Channel) int {
	return 0
}

func (src *testSource) DirectSoundOutput(channel memory.Channel) (bool, bool, bool) {
	return src.left[channel], src.right[channel], src.full[channel]
}

type testSink struct {
	rate    int
	samples []int16
	calls   int
	ended   bool
	resets  int
}

func (s *testSink) SetAudio(sampleRate int, samples []int16) error {
	s.rate = sampleRate
	s.samples = append(s.samples, samples...)
	s.calls++
	return nil
}

func (s *testSink) EndMixing() error {
	s.ended = true
	return nil
}

func (s *testSink) Reset() {
	s.samples = s.samples[:0]
	s.resets++
}

// the number of cycles for n and a half samples at the default sample rate
func cycles(n int) int {
	return n*512 + 256
}

func newCapture(t *testing.T, src audio.Source) (*audio.Capture, *testSink) {
	t.Helper()
	c := audio.NewCapture(preferences.DefaultPreferences(), src)
	test.DemandImplements[memory.FIFO](t, c)
	snk := &testSink{}
	c.AddSink(snk)
	return c, snk
}

func TestSkippedFrames(t *testing.T) {
	c, snk := newCapture(t, &testSource{})
	test.ExpectSuccess(t, c.EndFrame(cycles(10)))
	test.ExpectSuccess(t, c.EndFrame(cycles(10)))
	test.ExpectEquality(t, c.Stats.Frames, 2)
	test.ExpectEquality(t, c.Stats.Skipped, 2)
	test.ExpectEquality(t, c.SampleRate(), 0)
	test.ExpectEquality(t, snk.calls, 0)
}

func TestMixing(t *testing.T) {
	src := &testSource{}
	src.left[0], src.right[0], src.full[0] = true, true, true
	c, snk := newCapture(t, src)

	for i := 1; i <= 5; i++ {
		c.Push(memory.ChannelA, int8(i))
	}
	test.ExpectSuccess(t, c.EndFrame(cycles(5)))
	test.ExpectEquality(t, snk.rate, audio.DefaultSampleRate)
	test.DemandEquality(t, len(snk.samples), 10)
	for i := range 5 {
		test.ExpectEquality(t, snk.samples[i*2], int16((i+1)*128))
		test.ExpectEquality(t, snk.samples[i*2+1], int16((i+1)*128))
	}
	test.ExpectEquality(t, c.Stats.Pushed[0], 5)
	test.ExpectEquality(t, c.Stats.Underruns[0], 0)
}

func TestUnderrun(t *testing.T) {
	src := &testSource{}
	src.left[0], src.full[0] = true, true
	c, snk := newCapture(t, src)

	c.Push(memory.ChannelA, 1)
	c.Push(memory.ChannelA, 2)
	test.ExpectSuccess(t, c.EndFrame(cycles(5)))
	test.DemandEquality(t, len(snk.samples), 10)

	// last sample is repeated
	expected := []int16{128, 256, 256, 256, 256}
	for i, v := range expected {
		test.ExpectEquality(t, snk.samples[i*2], v)
		test.ExpectEquality(t, snk.samples[i*2+1], 0)
	}
	test.ExpectEquality(t, c.Stats.Underruns[0], 3)

	// the following frame continues from the repeated sample
	snk.samples = snk.samples[:0]
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, snk.samples[0], 256)
}

func TestRouting(t *testing.T) {
	src := &testSource{}
	src.left[0], src.full[0] = true, true
	src.right[1] = true
	c, snk := newCapture(t, src)

	c.Push(memory.ChannelA, 1)
	c.Push(memory.ChannelB, 2)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.DemandEquality(t, len(snk.samples), 2)

	// channel B is at half volume
	test.ExpectEquality(t, snk.samples[0], 128)
	test.ExpectEquality(t, snk.samples[1], 128)
}

func TestSampleRate(t *testing.T) {
	// 16.777216MHz divided by 512
	src := &testSource{period: 512}
	c, _ := newCapture(t, src)
	c.Push(memory.ChannelA, 0)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, c.SampleRate(), 32768)

	prefs := preferences.DefaultPreferences()
	test.DemandSuccess(t, prefs.Audio.SampleRate.Set(22050))
	c = audio.NewCapture(prefs, src)
	test.ExpectEquality(t, c.SampleRate(), 22050)
}

func TestGain(t *testing.T) {
	src := &testSource{}
	src.left[0], src.full[0] = true, true
	c, snk := newCapture(t, src)

	c.SetGain(0.5)
	c.Push(memory.ChannelA, 2)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, snk.samples[0], 128)

	c.SetGain(2.0)
	c.Push(memory.ChannelA, 2)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, snk.samples[2], 256)
}

func TestOverrun(t *testing.T) {
	c, _ := newCapture(t, &testSource{})
	for range 8192 + 10 {
		c.Push(memory.ChannelB, 1)
	}
	test.ExpectEquality(t, c.Stats.Overruns[1], 10)
	test.ExpectEquality(t, c.Stats.Pushed[1], 8202)
}

func TestClearAndEnd(t *testing.T) {
	c, snk := newCapture(t, &testSource{})
	c.Push(memory.ChannelA, 1)
	c.Clear()
	test.ExpectEquality(t, snk.resets, 1)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, c.Stats.Skipped, 1)

	test.ExpectSuccess(t, c.EndMixing())
	test.ExpectSuccess(t, snk.ended)
}

func TestMemoryFIFO(t *testing.T) {
	mem := memory.NewMemory(preferences.DefaultPreferences().ARM7)
	c := audio.NewCapture(preferences.DefaultPreferences(), mem)
	mem.PlumbFIFO(c)

	mem.Write32(0x040000a0, 0x04030201)
	test.ExpectEquality(t, c.Stats.Pushed[0], 4)

	// reset channel A
	mem.Write16(0x04000082, 0x0800)
	test.ExpectSuccess(t, c.EndFrame(cycles(1)))
	test.ExpectEquality(t, c.Stats.Skipped, 1)

	// channel A to both outputs at full volume
	mem.Write16(0x04000082, 0x0304)
	left, right, full := mem.DirectSoundOutput(memory.ChannelA)
	test.ExpectSuccess(t, left && right && full)
}

func TestEnvelope(t *testing.T) {
	test.ExpectApproximate(t, audio.Envelope(10, 20, 10), 1.0, 0.0001)
	test.ExpectApproximate(t, audio.Envelope(25, 20, 10), 0.5, 0.0001)
	test.ExpectApproximate(t, audio.Envelope(30, 20, 10), 0.0, 0.0001)
	test.ExpectApproximate(t, audio.Envelope(20, 20, 0), 0.0, 0.0001)
}

func TestClamp(t *testing.T) {
	test.ExpectEquality(t, audio.Clamp(40000), 32767)
	test.ExpectEquality(t, audio.Clamp(-40000), -32768)
	test.ExpectEquality(t, audio.Clamp(1.6), 2)
	test.ExpectEquality(t, audio.Mono(100, 200), 150)
}
