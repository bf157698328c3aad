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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// A mode is the first argument on the command line that isn't a flag. The
// modes available to the parser are listed with AddSubModes(). The first mode
// in the list is the default and is selected if the first argument is not a
// recognised mode. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Printf("* %s\n", err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		...
//	}
//
// Flags for the selected mode are added after a call to NewMode(). The
// following call to Parse() will parse the arguments that follow the mode:
//
//	md.NewMode()
//	seconds := md.AddFloat64("seconds", 150, "length of the rendering")
//	p, err := md.Parse()
//
// The Path() function returns the series of modes that have been selected,
// separated by a forward slash. It is useful for error and help messages.
//
// Help is printed to the Output writer when the -help flag is found. The help
// message lists the flags for the current mode and the sub-modes that are
// available.
package modalflag
