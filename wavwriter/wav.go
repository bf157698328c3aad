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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing has ended.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
	"github.com/youpy/go-wav"
)

// Sentinal error patterns.
const (
	WavWriterError = "wavwriter: %v"
	RateChanged    = "wavwriter: sample rate changed from %d to %d"
)

// WavWriter implements the audio.Sink interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavWriterError, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio implements the audio.Sink interface.
func (aw *WavWriter) SetAudio(sampleRate int, samples []int16) error {
	if aw.sampleRate == 0 {
		aw.sampleRate = sampleRate
	} else if aw.sampleRate != sampleRate {
		return curated.Errorf(RateChanged, aw.sampleRate, sampleRate)
	}

	for i := 0; i+1 < len(samples); i += audio.NumChannels {
		w := wav.Sample{}
		w.Values[0] = int(samples[i])
		w.Values[1] = int(samples[i+1])
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// NumSamples returns the number of stereo samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing implements the audio.Sink interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	// no audio was produced. write a valid but empty file
	rate := aw.sampleRate
	if rate == 0 {
		rate = audio.DefaultSampleRate
	}

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), audio.NumChannels, uint32(rate), 16)
	if enc == nil {
		return curated.Errorf(WavWriterError, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples at %dHz to %s", len(aw.buffer), rate, aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

// Reset implements the audio.Sink interface.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.sampleRate = 0
}
