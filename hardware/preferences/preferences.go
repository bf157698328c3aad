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

// Package preferences defines and collates the preference values used by the
// emulated hardware and the audio output.
package preferences

import (
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/paths"
	"github.com/jetsetilly/gsfplayer/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware and the audio output.
type Preferences struct {
	dsk *prefs.Disk

	ARM7  *ARM7Preferences
	Audio *AudioPreferences
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile initialises Preferences with values from the named
// file. A missing file is not an error.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	var err error

	p := &Preferences{}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.ARM7, err = newARM7Preferences(p.dsk)
	if err != nil {
		return nil, err
	}

	p.Audio, err = newAudioPreferences(p.dsk)
	if err != nil {
		return nil, err
	}

	// a missing file is not an error. the file will have been created with
	// the default values
	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// DefaultPreferences returns Preferences with default values that are not
// attached to a file. Calling Load() or Save() has no effect.
func DefaultPreferences() *Preferences {
	p := &Preferences{
		ARM7:  &ARM7Preferences{},
		Audio: newAudioDefaults(),
	}
	p.ARM7.SetDefaults()
	return p
}

// Load all preference values from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save all preference values to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Reset all preference values to the default values.
func (p *Preferences) Reset() {
	p.ARM7.SetDefaults()
	p.Audio.SetDefaults()
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}
