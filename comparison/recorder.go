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

package comparison

import (
	goaudio "github.com/go-audio/audio"
	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/curated"
)

// Recorder implements the audio.Sink interface. It keeps everything it is
// sent so that the audio of one rip can be used as the reference for another.
type Recorder struct {
	sampleRate int
	samples    []int16
}

// SetAudio implements the audio.Sink interface.
func (rec *Recorder) SetAudio(sampleRate int, samples []int16) error {
	rec.sampleRate = sampleRate
	rec.samples = append(rec.samples, samples...)
	return nil
}

// EndMixing implements the audio.Sink interface.
func (rec *Recorder) EndMixing() error {
	return nil
}

// Reset implements the audio.Sink interface.
func (rec *Recorder) Reset() {
	rec.samples = rec.samples[:0]
	rec.sampleRate = 0
}

// Buffer returns the recorded audio. It is an error if nothing was recorded.
func (rec *Recorder) Buffer() (*goaudio.Float32Buffer, error) {
	if rec.sampleRate == 0 {
		return nil, curated.Errorf(ComparisonError, "no audio was recorded")
	}
	return FromSamples(rec.sampleRate, audio.NumChannels, rec.samples), nil
}
