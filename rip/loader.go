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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
)

// Sentinal error patterns.
const (
	LoaderError = "rip: loader: %v"
	HashError   = "rip: loader: unexpected hash value"
)

// Loader is used to read the data of a single file.
type Loader struct {
	// filename of the file to load. can be a URL
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	s = strings.TrimSuffix(s, path.Ext(ld.Filename))
	return s
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func scheme(filename string) string {
	u, err := url.Parse(filename)
	if err != nil {
		return "file"
	}

	// single letter schemes are windows drive letters
	if len(u.Scheme) <= 1 {
		return "file"
	}
	return u.Scheme
}

// Resolve returns the name of a file referred to by the Loader's file. For
// example, the _lib tag of a GSF file.
func (ld Loader) Resolve(name string) string {
	switch scheme(ld.Filename) {
	case "http", "https":
		base, err := url.Parse(ld.Filename)
		if err != nil {
			return name
		}
		ref, err := url.Parse(name)
		if err != nil {
			return name
		}
		return base.ResolveReference(ref).String()
	}

	if path.IsAbs(name) {
		return name
	}
	return path.Join(path.Dir(ld.Filename), name)
}

// Load the file data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	var err error

	switch s := scheme(ld.Filename); s {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		ld.Data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", s))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(HashError)
	}

	ld.Hash = hash

	return nil
}
