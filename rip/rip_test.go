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

package rip_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/rip"
	"github.com/jetsetilly/gsfplayer/test"
)

func TestTags(t *testing.T) {
	tags := rip.ParseTags("title=Song\r\nartist=  A \ncomment=line1\ncomment=line2\nnoequals\nLENGTH=1:30.5\n=empty\n")

	v, ok := tags.Get("title")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "Song")

	v, _ = tags.Get("ARTIST")
	test.ExpectEquality(t, v, "A")

	v, _ = tags.Get("comment")
	test.ExpectEquality(t, v, "line1\nline2")

	_, ok = tags.Get("noequals")
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, len(tags), 4)

	d, ok := tags.Length()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, 90*time.Second+500*time.Millisecond)

	_, ok = tags.Fade()
	test.ExpectEquality(t, ok, false)

	tags.Set("fade", "10")
	d, ok = tags.Fade()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, 10*time.Second)

	// multi-line values are written as repeated keys
	test.ExpectEquality(t, rip.ParseTags(tags.String()).String(), tags.String())
}

func TestLibs(t *testing.T) {
	tags := rip.ParseTags("_lib=a.gsflib\n_lib2=b.gsflib\n_lib4=d.gsflib\n")
	libs := tags.Libs()
	test.DemandEquality(t, len(libs), 2)
	test.ExpectEquality(t, libs[0], "a.gsflib")
	test.ExpectEquality(t, libs[1], "b.gsflib")
}

func TestParseTime(t *testing.T) {
	for _, c := range []struct {
		s string
		d time.Duration
	}{
		{"5", 5 * time.Second},
		{"2:05", 125 * time.Second},
		{"1:00:00", time.Hour},
		{"0:01,25", 1250 * time.Millisecond},
	} {
		d, err := rip.ParseTime(c.s)
		test.ExpectSuccess(t, err, c.s)
		test.ExpectEquality(t, d, c.d, c.s)
	}

	for _, s := range []string{"", "a:10", "1:2:3:4", "-1"} {
		_, err := rip.ParseTime(s)
		test.ExpectFailure(t, err, s)
	}
}

func writeGSF(t *testing.T, dir string, name string, p rip.Program, tags rip.Tags) string {
	t.Helper()
	data, err := rip.EncodePSF(rip.VersionGSF, rip.EncodeProgram(p), tags)
	test.DemandSuccess(t, err)
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestPSF(t *testing.T) {
	p := rip.Program{Entry: 0x08000000, Offset: 0x08000000, Data: []byte{0x01, 0x02, 0x03}}
	data, err := rip.EncodePSF(rip.VersionGSF, rip.EncodeProgram(p), rip.Tags{{Key: "title", Value: "x"}})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rip.IsPSF(data))

	psf, err := rip.ParsePSF(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, psf.Version, rip.VersionGSF)
	v, _ := psf.Tags.Get("title")
	test.ExpectEquality(t, v, "x")

	q, err := rip.ParseProgram(psf.Program)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Entry, p.Entry)
	test.ExpectEquality(t, q.Offset, p.Offset)
	test.ExpectEquality(t, string(q.Data), string(p.Data))

	_, err = rip.ParsePSF([]byte("not a psf file"))
	test.ExpectSuccess(t, curated.Is(err, rip.NotPSF))

	_, err = rip.ParsePSF([]byte("PSF\x22\x00\x00"))
	test.ExpectSuccess(t, curated.Is(err, rip.BadHeader))

	// program header claims more data than exists
	_, err = rip.ParseProgram([]byte{0, 0, 0, 8, 0, 0, 0, 8, 0xff, 0, 0, 0, 0x01})
	test.ExpectSuccess(t, curated.Is(err, rip.BadProgram))
}

func TestCRC(t *testing.T) {
	data, err := rip.EncodePSF(rip.VersionGSF, rip.EncodeProgram(rip.Program{Data: []byte{0x01}}), nil)
	test.DemandSuccess(t, err)

	// the first byte of the compressed program
	data[16] ^= 0xff
	_, err = rip.ParsePSF(data)
	test.ExpectSuccess(t, curated.Is(err, rip.BadCRC))
}

type installer struct {
	loads []rip.Segment
}

func (in *installer) LoadProgram(addr uint32, data []byte) error {
	in.loads = append(in.loads, rip.Segment{Addr: addr, Data: data})
	return nil
}

func TestOpenWithLibrary(t *testing.T) {
	dir := t.TempDir()

	writeGSF(t, dir, "game.gsflib",
		rip.Program{Entry: 0x08000000, Offset: 0x08000000, Data: []byte{0x01, 0x02, 0x03, 0x04}},
		nil)
	writeGSF(t, dir, "extra.gsflib",
		rip.Program{Entry: 0x0badf00d, Offset: 0x08000003, Data: []byte{0xee}},
		nil)
	song := writeGSF(t, dir, "song.minigsf",
		rip.Program{Entry: 0x0badf00d, Offset: 0x08000002, Data: []byte{0x09}},
		rip.Tags{{Key: "_lib", Value: "game.gsflib"}, {Key: "_lib2", Value: "extra.gsflib"}, {Key: "title", Value: "Song"}})

	r, err := rip.Open(song)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, r.Entry, 0x08000000)
	test.DemandEquality(t, len(r.Segments), 3)
	test.ExpectEquality(t, r.Segments[0].Addr, 0x08000000)
	test.ExpectEquality(t, r.Segments[1].Addr, 0x08000002)
	test.ExpectEquality(t, r.Segments[2].Addr, 0x08000003)
	test.ExpectEquality(t, len(r.Files), 3)

	title, _ := r.Tags.Get("title")
	test.ExpectEquality(t, title, "Song")

	var in installer
	test.ExpectSuccess(t, r.Install(&in))
	test.ExpectEquality(t, len(in.loads), 3)
}

func TestLibraryDepth(t *testing.T) {
	dir := t.TempDir()
	loop := writeGSF(t, dir, "loop.minigsf", rip.Program{}, rip.Tags{{Key: "_lib", Value: "loop.minigsf"}})
	_, err := rip.Open(loop)
	test.ExpectSuccess(t, curated.Is(err, rip.LibraryDepth))
}

func TestMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	song := writeGSF(t, dir, "song.minigsf", rip.Program{}, rip.Tags{{Key: "_lib", Value: "missing.gsflib"}})
	_, err := rip.Open(song)
	test.ExpectSuccess(t, curated.Is(err, rip.LoaderError))
}

func TestOpenRaw(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "driver.bin")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0x01, 0x20}, 0o644))
	test.ExpectSuccess(t, rip.IsRaw(pth))

	r, err := rip.OpenRaw(pth, 0x02000000, 0x02000001)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Entry, 0x02000001)
	test.DemandEquality(t, len(r.Segments), 1)
	test.ExpectEquality(t, r.Segments[0].Addr, 0x02000000)

	// empty rips can not be installed
	var in installer
	test.ExpectFailure(t, (&rip.Rip{}).Install(&in))
}

func TestLoaderHash(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "file.gsf")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("PSF"), 0o644))

	ld := rip.NewLoader(pth)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.ShortName(), "file")
	test.ExpectEquality(t, ld.Resolve("lib.gsflib"), filepath.Join(dir, "lib.gsflib"))

	ld = rip.NewLoader(pth)
	ld.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), rip.HashError))

	web := rip.NewLoader("https://example.com/rips/song.minigsf")
	test.ExpectEquality(t, web.Resolve("game.gsflib"), "https://example.com/rips/game.gsflib")
}
