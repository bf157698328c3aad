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

// Package rip is used to load GSF rips and prepare them for the emulated GBA.
//
// A GSF file is a PSF container with version byte 0x22. The container holds
// a zlib compressed program and an optional tag section. The decompressed
// program begins with a header giving the entry point, the load address and
// the size of the program data.
//
// A rip is usually made of a library file (.gsflib) holding the game's sound
// driver and data, and many small files (.minigsf) that each patch the
// library to select one song. The relationship is given by the _lib tag in
// the small file. Libraries are loaded first and the files that refer to them
// are loaded on top.
//
// Files that are not PSF containers can be loaded as raw binaries with the
// OpenRaw() function. An explicit load address and entry point must be
// given.
//
// The Loader type handles the reading of data from the local filesystem or
// over HTTP:
//
//	ld := rip.NewLoader("rips/song.minigsf")
//	err := ld.Load()
//
// Most callers should use Open(), which resolves libraries relative to the
// location of the file being opened.
package rip
