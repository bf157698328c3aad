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

// Package paths contains functions to prepare paths to gsfplayer resources.
//
// The ResourcePath() function joins the supplied sub-path and filename to the
// resource directory. For example, the following will return the path to the
// preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a directory called ".gsfplayer" is present in the current directory then
// that is the resource directory. If it is not present then the "gsfplayer"
// directory in the user's config directory is used. The sub-path is created if
// it does not exist.
package paths
