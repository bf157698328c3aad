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
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/jetsetilly/gsfplayer/curated"
)

// Sentinal error patterns.
const (
	BadHeader  = "rip: bad header: %v"
	BadCRC     = "rip: CRC mismatch (expected %08x got %08x)"
	BadProgram = "rip: bad program: %v"
	NotPSF     = "rip: not a PSF file"
)

// the version byte of a PSF container holding a GBA program
const VersionGSF = 0x22

// size of the PSF header
const psfHeaderSize = 16

// the marker that begins the tag section
const tagMarker = "[TAG]"

// the largest program we'll decompress. the ROM area is 32MB
const maxProgram = 0x2000000 + 12

// PSF is the content of a PSF container.
type PSF struct {
	Version uint8

	// the reserved area is not used by GSF files but is preserved
	Reserved []byte

	// decompressed program
	Program []byte

	// tags in the order they appear in the file
	Tags Tags
}

// IsPSF returns true if the data begins with the PSF signature.
func IsPSF(data []byte) bool {
	return len(data) >= 3 && string(data[:3]) == "PSF"
}

// ParsePSF parses the data as a PSF container. The CRC of the compressed
// program is checked and the program decompressed.
func ParsePSF(data []byte) (*PSF, error) {
	if !IsPSF(data) {
		return nil, curated.Errorf(NotPSF)
	}
	if len(data) < psfHeaderSize {
		return nil, curated.Errorf(BadHeader, "file too short")
	}

	psf := &PSF{
		Version: data[3],
	}

	reservedSize := binary.LittleEndian.Uint32(data[4:])
	programSize := binary.LittleEndian.Uint32(data[8:])
	crc := binary.LittleEndian.Uint32(data[12:])

	if uint64(psfHeaderSize)+uint64(reservedSize)+uint64(programSize) > uint64(len(data)) {
		return nil, curated.Errorf(BadHeader, fmt.Sprintf("sizes (%d + %d) exceed file size (%d)",
			reservedSize, programSize, len(data)))
	}

	idx := uint32(psfHeaderSize)
	psf.Reserved = data[idx : idx+reservedSize]
	idx += reservedSize
	compressed := data[idx : idx+programSize]
	idx += programSize

	if programSize > 0 {
		if c := crc32.ChecksumIEEE(compressed); c != crc {
			return nil, curated.Errorf(BadCRC, crc, c)
		}

		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, curated.Errorf(BadProgram, err)
		}
		defer zr.Close()

		psf.Program, err = io.ReadAll(io.LimitReader(zr, maxProgram+1))
		if err != nil {
			return nil, curated.Errorf(BadProgram, err)
		}
		if len(psf.Program) > maxProgram {
			return nil, curated.Errorf(BadProgram, "program too large")
		}
	}

	rest := data[idx:]
	if bytes.HasPrefix(rest, []byte(tagMarker)) {
		psf.Tags = ParseTags(string(rest[len(tagMarker):]))
	}

	return psf, nil
}

// Program is the decompressed program of a GSF file.
type Program struct {
	Entry  uint32
	Offset uint32
	Data   []byte
}

// size of the program header
const programHeaderSize = 12

// ParseProgram parses the decompressed program of a GSF file.
func ParseProgram(data []byte) (Program, error) {
	var p Program

	if len(data) < programHeaderSize {
		return p, curated.Errorf(BadProgram, "program header too short")
	}

	p.Entry = binary.LittleEndian.Uint32(data[0:])
	p.Offset = binary.LittleEndian.Uint32(data[4:])
	size := binary.LittleEndian.Uint32(data[8:])

	if uint64(size) > uint64(len(data)-programHeaderSize) {
		return p, curated.Errorf(BadProgram, fmt.Sprintf("size (%d) exceeds available data (%d)",
			size, len(data)-programHeaderSize))
	}

	p.Data = data[programHeaderSize : programHeaderSize+size]

	return p, nil
}

// EncodePSF creates a PSF container for the program with the tags. The
// inverse of ParsePSF(). Used to create test files and to write modified
// tags.
func EncodePSF(version uint8, program []byte, tags Tags) ([]byte, error) {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(program); err != nil {
		return nil, curated.Errorf(BadProgram, err)
	}
	if err := zw.Close(); err != nil {
		return nil, curated.Errorf(BadProgram, err)
	}

	var b bytes.Buffer
	b.WriteString("PSF")
	b.WriteByte(version)
	binary.Write(&b, binary.LittleEndian, uint32(0))
	binary.Write(&b, binary.LittleEndian, uint32(compressed.Len()))
	binary.Write(&b, binary.LittleEndian, crc32.ChecksumIEEE(compressed.Bytes()))
	b.Write(compressed.Bytes())

	if len(tags) > 0 {
		b.WriteString(tagMarker)
		b.WriteString(tags.String())
	}

	return b.Bytes(), nil
}

// EncodeProgram creates the decompressed program of a GSF file.
func EncodeProgram(p Program) []byte {
	b := make([]byte, programHeaderSize+len(p.Data))
	binary.LittleEndian.PutUint32(b[0:], p.Entry)
	binary.LittleEndian.PutUint32(b[4:], p.Offset)
	binary.LittleEndian.PutUint32(b[8:], uint32(len(p.Data)))
	copy(b[programHeaderSize:], p.Data)
	return b
}
