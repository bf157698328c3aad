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

package rip

import (
	"path"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// rip package.
var FileExtensions = [...]string{
	".GSF", ".MINIGSF", ".GSFLIB", ".PSF",
}

// RawExtensions is the list of file extensions that are loaded as raw
// binaries.
var RawExtensions = [...]string{
	".GBA", ".BIN", ".AGB", ".MB",
}

// IsRaw returns true if the filename has one of the RawExtensions.
func IsRaw(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range RawExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
