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

// Package otoplay plays mixed audio through the host's sound device. The
// package implements the audio.Sink interface.
//
// Audio output is provided by "github.com/ebitengine/oto/v3". Building with
// the headless build constraint replaces the output with a stub that discards
// all audio, which is useful for machines without a sound device.
//
// The oto context is created on the first call to SetAudio() because the
// sample rate is not known until then. Note that oto allows only one context
// per process so a sample rate change after that is an error.
package otoplay
