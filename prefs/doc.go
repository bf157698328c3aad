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

// Package prefs holds the preference value types and the Disk type that saves
// and loads them.
//
// A preference value is one of Bool, String, Int or Float. Values are safe to
// read and write from more than one goroutine. Hook functions can be attached
// to a value to react to or to veto a change.
//
// Values are attached to a Disk instance with a key. The key is the name of the
// value in the preferences file. Saving a Disk does not remove entries from
// the file that the Disk doesn't know about, so more than one Disk can share
// the same file.
//
// Preferences can also be set from the command line with a string of the form:
//
//	hardware.arm7.logUndefined::true; audio.volume::0.5
//
// The values are pushed onto a stack with PushCommandLineStack() and take
// precedence over values in the file when a Disk is loaded.
package prefs
