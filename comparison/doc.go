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

// Package comparison measures the difference between rendered audio and a
// reference recording.
//
// A reference can be a WAV or MP3 file. MP3 files are decoded to 16-bit
// stereo regardless of the number of channels in the source. The reference
// is resampled to the sample rate of the rendered audio before comparison.
//
// The Comparison type implements the audio.Sink interface and so can be
// attached directly to an audio.Capture. The result of the comparison is
// available after EndMixing() has been called.
package comparison
