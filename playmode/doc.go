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

// Package playmode runs a rip from reset until the end of its playing time.
// The playing time is the length of the rip followed by the fade. During the
// fade the audio is attenuated linearly to silence.
//
// The length and fade are taken from the rip's tags unless they are
// specified in the Options. A rip with no length tag plays for the
// audio.defaultLength preference.
//
// A Session can run as quickly as possible, which is suitable for
// rendering, or it can be paced to the frame rate of the hardware, which is
// required for live playback.
package playmode
