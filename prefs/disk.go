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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gsfplayer/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Error patterns returned by the Disk type.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	PrefsFileErr  = "prefs: %v"
	InvalidKey    = "prefs: invalid key (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	InvalidFormat = "prefs: invalid line in prefs file (%s)"
)

// separates key and value in the preferences file
const separator = " :: "

// Disk represents a preferences file on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(PrefsFileErr, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is the name of the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " :;\n") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the preferences file into a map of strings. a missing file is not an
// error and results in an empty map
func (dsk *Disk) read() (map[string]string, bool, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, false, nil
		}
		return nil, false, curated.Errorf(PrefsFileErr, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := scanner.Text()
		if len(l) == 0 || l == WarningBoilerPlate {
			continue
		}
		kv := strings.SplitN(l, separator, 2)
		if len(kv) != 2 {
			return nil, true, curated.Errorf(InvalidFormat, l)
		}
		values[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf(PrefsFileErr, err)
	}

	return values, true, nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	return nil
}

// Load preference values from disk. Values set on the command line take
// precedence over values in the file.
//
// If the file does not exist the NoPrefsFile error is returned. The current
// values are written to a new file if saveOnFail is true.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, err)
			}
			continue
		}
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, err)
			}
		}
	}

	if !exists {
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Reset all preference values in the Disk instance.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
	}
	return nil
}
