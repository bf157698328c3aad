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

// Package audio captures the samples written to the direct sound FIFOs and
// mixes them into 16-bit stereo PCM.
//
// The Capture type implements the memory.FIFO interface. Samples are queued
// per channel as they are written by the program and are resampled to the
// output sample rate at the end of every frame. The mixed audio is forwarded
// to every Sink that has been added to the Capture.
//
// The output sample rate is taken from the audio.samplerate preference. If
// that value is zero the rate is derived from the timer driving the first
// channel that produces sound.
package audio
