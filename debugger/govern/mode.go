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

package govern

// Mode indicates the broad condition of the emulation.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModeRender:
		return "Render"
	case ModePlay:
		return "Play"
	case ModeStep:
		return "Step"
	}

	return ""
}

// List of defined modes.
//
// ModeRender runs the emulation as quickly as possible. ModePlay is limited
// to real time by the audio device. ModeStep runs under the control of the
// stepper.
const (
	ModeNone Mode = iota
	ModeRender
	ModePlay
	ModeStep
)
