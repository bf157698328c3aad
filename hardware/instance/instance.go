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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the GBA type, but is not actually the GBA itself.
//
// Particularly useful when running more than one instance of the emulation,
// for example when comparing the output of two rips.
package instance

import (
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main       Label = ""
	Comparison Label = "comparison"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the GBA type.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from the preferences file. Providing a non-nil value allows the
// preferences of more than one GBA instance to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Tag returns the logging tag for the instance.
func (ins *Instance) Tag(tag string) string {
	if ins.Label == Main {
		return tag
	}
	return string(ins.Label) + ": " + tag
}
