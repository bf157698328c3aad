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

//go:build headless

package otoplay

// Available returns true if audio output is available.
func Available() bool {
	return false
}

// OtoPlayer implements the audio.Sink interface. In headless builds all
// audio is discarded.
type OtoPlayer struct {
	sampleRate int
	discarded  int
}

// NewOtoPlayer is the preferred method of initialisation for the OtoPlayer
// type.
func NewOtoPlayer() *OtoPlayer {
	return &OtoPlayer{}
}

// SetAudio implements the audio.Sink interface.
func (op *OtoPlayer) SetAudio(sampleRate int, samples []int16) error {
	op.sampleRate = sampleRate
	op.discarded += len(samples)
	return nil
}

// Buffered returns the number of samples waiting to be played.
func (op *OtoPlayer) Buffered() int {
	return 0
}

// EndMixing implements the audio.Sink interface.
func (op *OtoPlayer) EndMixing() error {
	return nil
}

// Reset implements the audio.Sink interface.
func (op *OtoPlayer) Reset() {
}
