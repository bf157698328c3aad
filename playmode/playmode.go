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

package playmode

import (
	"time"

	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/debugger/govern"
	"github.com/jetsetilly/gsfplayer/hardware"
	"github.com/jetsetilly/gsfplayer/hardware/clocks"
	"github.com/jetsetilly/gsfplayer/hardware/instance"
	"github.com/jetsetilly/gsfplayer/logger"
	"github.com/jetsetilly/gsfplayer/performance/limiter"
	"github.com/jetsetilly/gsfplayer/rip"
)

// Sentinal error patterns.
const (
	PlayError = "play: %v"
)

// DefaultFade is used when the rip has no fade tag.
const DefaultFade = 10 * time.Second

// Options for a new Session.
type Options struct {
	// a length of zero means the length is taken from the rip
	Length time.Duration

	// a negative fade means the fade is taken from the rip
	Fade time.Duration

	// an entry point of zero means the entry point of the rip is used
	Entry uint32

	// pace the emulation to the frame rate of the hardware
	Realtime bool
}

// Session is a rip installed in a GBA with the audio being captured.
type Session struct {
	Rip     *rip.Rip
	GBA     *hardware.GBA
	Capture *audio.Capture

	Length time.Duration
	Fade   time.Duration

	realtime bool
}

// NewSession installs the rip in a new GBA and resets it to the entry point.
func NewSession(ins *instance.Instance, r *rip.Rip, opts Options) (*Session, error) {
	gba, err := hardware.NewGBA(ins)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	s := &Session{
		Rip:      r,
		GBA:      gba,
		Capture:  audio.NewCapture(ins.Prefs, gba.Mem),
		realtime: opts.Realtime,
	}

	gba.Mem.PlumbFIFO(s.Capture)
	gba.AddFrameListener(s.Capture)

	err = r.Install(gba)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	entry := r.Entry
	if opts.Entry != 0 {
		entry = opts.Entry
	}
	gba.Reset(entry)

	var ok bool

	s.Length = opts.Length
	if s.Length <= 0 {
		s.Length, ok = r.Tags.Length()
		if !ok {
			s.Length = time.Duration(ins.Prefs.Audio.DefaultLength.Get().(float64) * float64(time.Second))
		}
	}

	s.Fade = opts.Fade
	if s.Fade < 0 {
		s.Fade, ok = r.Tags.Fade()
		if !ok {
			s.Fade = DefaultFade
		}
	}

	logger.Logf(logger.Allow, ins.Tag("play"), "%s: length %s fade %s", r.Filename, s.Length, s.Fade)

	return s, nil
}

// AddSink adds a destination for the audio.
func (s *Session) AddSink(snk audio.Sink) {
	s.Capture.AddSink(snk)
}

// Elapsed returns the emulated time since reset.
func (s *Session) Elapsed() time.Duration {
	cps := s.GBA.Instance.Prefs.ARM7.CyclesPerSecond()
	return time.Duration(float64(s.GBA.Cycles()) / cps * float64(time.Second))
}

// Play runs the session until the playing time has elapsed or until
// something is received on the quit channel. The quit channel can be nil.
//
// The sinks are concluded before returning, even if the emulation stopped
// with an error.
func (s *Session) Play(quit <-chan bool) error {
	var lim *limiter.FpsLimiter
	if s.realtime {
		cps := s.GBA.Instance.Prefs.ARM7.CyclesPerSecond()
		lim = limiter.NewFPSLimiter(cps / clocks.CyclesPerFrame)
		defer lim.Stop()
	}

	total := s.Length + s.Fade

	err := s.GBA.Run(func() (govern.State, error) {
		select {
		case <-quit:
			return govern.Ending, nil
		default:
		}

		elapsed := s.Elapsed()
		if elapsed >= total {
			return govern.Ending, nil
		}
		s.Capture.SetGain(audio.Envelope(elapsed.Seconds(), s.Length.Seconds(), s.Fade.Seconds()))

		if lim != nil {
			lim.Wait()
		}

		return govern.Running, nil
	})

	endErr := s.Capture.EndMixing()

	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	if endErr != nil {
		return curated.Errorf(PlayError, endErr)
	}

	logger.Logf(logger.Allow, s.GBA.Instance.Tag("play"), "%s", s.Capture.Stats)

	return nil
}
