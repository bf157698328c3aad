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

// Sink receives mixed audio from the Capture.
type Sink interface {
	// SetAudio is called once per frame with interleaved stereo samples.
	// The sample rate will not change between calls unless Reset() has been
	// called
	SetAudio(sampleRate int, samples []int16) error

	// some sinks may need to conclude and/or dispose of resources gently.
	// the Sink should be considered unusable after EndMixing() has been
	// called
	EndMixing() error

	// Reset discards any buffered audio
	Reset()
}

// NumChannels is the number of channels in the mixed audio.
const NumChannels = 2
