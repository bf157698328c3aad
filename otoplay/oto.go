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

//go:build !headless

package otoplay

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	OtoError    = "oto: %v"
	RateChanged = "oto: sample rate changed from %d to %d"
)

// length of the ring buffer in seconds
const bufferLength = 0.5

// Available returns true if audio output is available.
func Available() bool {
	return true
}

// OtoPlayer implements the audio.Sink interface.
type OtoPlayer struct {
	crit   sync.Mutex
	ctx    *oto.Context
	player *oto.Player

	sampleRate int
	buffer     *ring
}

// NewOtoPlayer is the preferred method of initialisation for the OtoPlayer
// type.
func NewOtoPlayer() *OtoPlayer {
	return &OtoPlayer{}
}

// Read implements the io.Reader interface. Called by oto.
func (op *OtoPlayer) Read(p []byte) (int, error) {
	return op.buffer.read(p), nil
}

func (op *OtoPlayer) start(sampleRate int) error {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.NumChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return curated.Errorf(OtoError, err)
	}
	<-ready

	op.ctx = ctx
	op.sampleRate = sampleRate
	op.buffer = newRing(int(float64(sampleRate)*bufferLength) * audio.NumChannels)
	op.player = op.ctx.NewPlayer(op)
	op.player.Play()

	logger.Logf(logger.Allow, "oto", "playing at %dHz", sampleRate)

	return nil
}

// SetAudio implements the audio.Sink interface.
func (op *OtoPlayer) SetAudio(sampleRate int, samples []int16) error {
	op.crit.Lock()
	defer op.crit.Unlock()

	if op.ctx == nil {
		if err := op.start(sampleRate); err != nil {
			return err
		}
	} else if sampleRate != op.sampleRate {
		return curated.Errorf(RateChanged, op.sampleRate, sampleRate)
	}

	op.buffer.write(samples)
	return nil
}

// Buffered returns the number of samples waiting to be played.
func (op *OtoPlayer) Buffered() int {
	op.crit.Lock()
	defer op.crit.Unlock()
	if op.buffer == nil {
		return 0
	}
	return op.buffer.buffered()
}

// EndMixing implements the audio.Sink interface.
func (op *OtoPlayer) EndMixing() error {
	op.crit.Lock()
	defer op.crit.Unlock()

	if op.player == nil {
		return nil
	}

	logger.Logf(logger.Allow, "oto", "overflow=%d underflow=%d", op.buffer.overflow, op.buffer.underflow)

	err := op.player.Close()
	op.player = nil
	if err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}

// Reset implements the audio.Sink interface. The sample rate of the oto
// context can not be changed.
func (op *OtoPlayer) Reset() {
	op.crit.Lock()
	defer op.crit.Unlock()
	if op.buffer != nil {
		op.buffer.reset()
	}
}
