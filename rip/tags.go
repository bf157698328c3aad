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
	"strconv"
	"strings"
	"time"
)

// Tag is a single key/value pair from the tag section of a PSF file.
type Tag struct {
	Key   string
	Value string
}

// Tags in the order they appear in the file. Keys are stored in lower case.
type Tags []Tag

// trim whitespace as defined by the PSF format. any character below 0x21
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= 0x20 })
}

// ParseTags parses the text that follows the [TAG] marker. Each line is a
// key=value pair. A key that appears more than once has its values joined
// with a newline.
func ParseTags(s string) Tags {
	var tags Tags

	for _, l := range strings.Split(s, "\n") {
		k, v, ok := strings.Cut(l, "=")
		if !ok {
			continue
		}

		k = strings.ToLower(trim(k))
		if k == "" {
			continue
		}
		v = trim(v)

		if i := tags.index(k); i >= 0 {
			tags[i].Value = tags[i].Value + "\n" + v
			continue
		}
		tags = append(tags, Tag{Key: k, Value: v})
	}

	return tags
}

func (tags Tags) index(key string) int {
	key = strings.ToLower(key)
	for i, t := range tags {
		if t.Key == key {
			return i
		}
	}
	return -1
}

// Get the value of the tag.
func (tags Tags) Get(key string) (string, bool) {
	if i := tags.index(key); i >= 0 {
		return tags[i].Value, true
	}
	return "", false
}

// Set the value of the tag. A new tag is added to the end of the list.
func (tags *Tags) Set(key string, value string) {
	if i := tags.index(key); i >= 0 {
		(*tags)[i].Value = value
		return
	}
	*tags = append(*tags, Tag{Key: strings.ToLower(key), Value: value})
}

// String returns the tags in the form used by the tag section of a PSF file.
func (tags Tags) String() string {
	s := strings.Builder{}
	for _, t := range tags {
		for _, v := range strings.Split(t.Value, "\n") {
			s.WriteString(fmt.Sprintf("%s=%s\n", t.Key, v))
		}
	}
	return s.String()
}

// Libs returns the values of the _lib, _lib2, _lib3 (etc.) tags. The list
// ends at the first missing number.
func (tags Tags) Libs() []string {
	var libs []string

	if v, ok := tags.Get("_lib"); ok && v != "" {
		libs = append(libs, v)
	}

	for n := 2; ; n++ {
		v, ok := tags.Get(fmt.Sprintf("_lib%d", n))
		if !ok || v == "" {
			break
		}
		libs = append(libs, v)
	}

	return libs
}

// Length returns the value of the length tag. Returns false if there is no
// length tag or if it can not be parsed.
func (tags Tags) Length() (time.Duration, bool) {
	return tags.duration("length")
}

// Fade returns the value of the fade tag. Returns false if there is no fade
// tag or if it can not be parsed.
func (tags Tags) Fade() (time.Duration, bool) {
	return tags.duration("fade")
}

func (tags Tags) duration(key string) (time.Duration, bool) {
	v, ok := tags.Get(key)
	if !ok {
		return 0, false
	}
	d, err := ParseTime(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

// ParseTime parses a time in the form used by PSF tags. The form is
// [[hours:]minutes:]seconds[.fraction]. A comma can be used in place of the
// decimal point.
func ParseTime(s string) (time.Duration, error) {
	s = strings.ReplaceAll(trim(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("too many fields in time value (%s)", s)
	}

	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid seconds in time value (%s)", s)
	}

	d := time.Duration(secs * float64(time.Second))

	unit := time.Minute
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid field in time value (%s)", s)
		}
		d += time.Duration(n) * unit
		unit *= 60
	}

	return d, nil
}
