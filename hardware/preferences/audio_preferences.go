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

package preferences

import (
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/prefs"
)

// VolumeRange is returned when the volume is set to a value outside of the
// range 0.0 to 1.0.
const VolumeRange = "audio: volume out of range (%.2f)"

// AudioPreferences are the preference values for rendering and playback.
type AudioPreferences struct {
	// output sample rate. a value of zero means the rate is derived from the
	// timer driving the sound FIFO
	SampleRate prefs.Int

	// output volume in the range 0.0 to 1.0
	Volume prefs.Float

	// length of a rendering in seconds when the rip doesn't have a length tag
	DefaultLength prefs.Float
}

func newAudioDefaults() *AudioPreferences {
	p := &AudioPreferences{}
	p.SetDefaults()
	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf(VolumeRange, f)
		}
		return nil
	})
	return p
}

func newAudioPreferences(dsk *prefs.Disk) (*AudioPreferences, error) {
	p := newAudioDefaults()

	err := dsk.Add("audio.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("audio.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("audio.defaultLength", &p.DefaultLength)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all audio settings to default values.
func (p *AudioPreferences) SetDefaults() {
	p.SampleRate.Set(0)
	p.Volume.Set(1.0)
	p.DefaultLength.Set(150.0)
}
