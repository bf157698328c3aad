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
	"fmt"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	RipError     = "rip: %v"
	LibraryDepth = "rip: too many nested libraries (%s)"
)

// MaxLibDepth is the maximum nesting of _lib tags.
const MaxLibDepth = 10

// Segment of program data and the address it is to be loaded at.
type Segment struct {
	Addr uint32
	Data []byte
}

func (s Segment) String() string {
	return fmt.Sprintf("%08x -> %08x (%d bytes)", s.Addr, s.Addr+uint32(len(s.Data)), len(s.Data))
}

// Rip is a program ready to be installed in the GBA's memory.
type Rip struct {
	Filename string

	// the hash of the top level file
	Hash string

	// the entry point of the first program loaded. this will be the entry
	// point of the deepest library
	Entry uint32

	// segments in the order they should be installed. later segments
	// overwrite earlier segments
	Segments []Segment

	// the tags of the top level file
	Tags Tags

	// the files that have been loaded, including the top level file
	Files []string

	hasEntry bool
}

// Open the file and any libraries it refers to.
func Open(filename string) (*Rip, error) {
	r := &Rip{
		Filename: filename,
	}

	err := r.load(NewLoader(filename), 0)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// OpenRaw loads the file as a raw binary to be installed at the address. The
// program starts at the entry point.
func OpenRaw(filename string, addr uint32, entry uint32) (*Rip, error) {
	ld := NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}

	return &Rip{
		Filename: filename,
		Hash:     ld.Hash,
		Entry:    entry,
		Segments: []Segment{{Addr: addr, Data: ld.Data}},
		Files:    []string{filename},
		hasEntry: true,
	}, nil
}

func (r *Rip) load(ld Loader, depth int) error {
	if depth > MaxLibDepth {
		return curated.Errorf(LibraryDepth, ld.Filename)
	}

	if err := ld.Load(); err != nil {
		return err
	}

	psf, err := ParsePSF(ld.Data)
	if err != nil {
		return curated.Errorf(RipError, fmt.Errorf("%s: %w", ld.ShortName(), err))
	}
	if psf.Version != VersionGSF {
		return curated.Errorf(BadHeader, fmt.Sprintf("version %02x is not GSF", psf.Version))
	}

	if depth == 0 {
		r.Tags = psf.Tags
		r.Hash = ld.Hash
	}

	libs := psf.Tags.Libs()

	// the first library is loaded before the program in this file
	if len(libs) > 0 {
		if err := r.load(NewLoader(ld.Resolve(libs[0])), depth+1); err != nil {
			return err
		}
	}

	r.Files = append(r.Files, ld.Filename)

	if len(psf.Program) > 0 {
		p, err := ParseProgram(psf.Program)
		if err != nil {
			return err
		}

		if !r.hasEntry {
			r.Entry = p.Entry
			r.hasEntry = true
		}

		r.Segments = append(r.Segments, Segment{Addr: p.Offset, Data: p.Data})
		logger.Logf(logger.Allow, "rip", "%s: %s", ld.ShortName(), r.Segments[len(r.Segments)-1])
	}

	// remaining libraries are loaded after the program in this file
	for _, l := range libs[min(1, len(libs)):] {
		if err := r.load(NewLoader(ld.Resolve(l)), depth+1); err != nil {
			return err
		}
	}

	return nil
}

// ProgramLoader is implemented by the types that rips can be installed into.
type ProgramLoader interface {
	LoadProgram(addr uint32, data []byte) error
}

// Install the segments of the rip in order.
func (r *Rip) Install(dst ProgramLoader) error {
	if len(r.Segments) == 0 {
		return curated.Errorf(RipError, "no program data")
	}
	for _, s := range r.Segments {
		if err := dst.LoadProgram(s.Addr, s.Data); err != nil {
			return err
		}
	}
	return nil
}
