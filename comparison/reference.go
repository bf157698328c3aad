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

package comparison

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	ReferenceError = "reference: %v"
	WavError       = "reference: wav: %v"
	MP3Error       = "reference: mp3: %v"
)

const logTag = "reference"

// IsReference returns true if the filename has the extension of a supported
// reference recording.
func IsReference(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// LoadReference decodes the named WAV or MP3 file. Sample values are
// normalised to the range -1.0 to 1.0.
func LoadReference(filename string) (*goaudio.Float32Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ReferenceError, err)
	}
	defer f.Close()

	var buf *goaudio.Float32Buffer

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		buf, err = decodeWav(f)
	case ".mp3":
		buf, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(ReferenceError, "unsupported file type")
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, logTag, "%s: %d channels at %dHz", filepath.Base(filename), buf.Format.NumChannels, buf.Format.SampleRate)
	logger.Logf(logger.Allow, logTag, "%s: total time %.02fs", filepath.Base(filename), Duration(buf))

	return buf, nil
}

func decodeWav(r io.ReadSeeker) (*goaudio.Float32Buffer, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, curated.Errorf(WavError, "error decoding")
	}

	if !dec.IsValidFile() {
		return nil, curated.Errorf(WavError, "not a valid wav file")
	}

	// load all data at once
	ibuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(WavError, err)
	}

	buf := &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: int(dec.NumChans),
			SampleRate:  int(dec.SampleRate),
		},
		Data:           make([]float32, len(ibuf.Data)),
		SourceBitDepth: int(dec.BitDepth),
	}

	// 8-bit wav data is unsigned
	var bias int
	if dec.BitDepth == 8 {
		bias = 128
	}
	scale := float32(int(1) << (dec.BitDepth - 1))

	for i, v := range ibuf.Data {
		buf.Data[i] = float32(v-bias) / scale
	}

	return buf, nil
}

func decodeMP3(r io.Reader) (*goaudio.Float32Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(MP3Error, err)
	}

	// "The stream is always formatted as 16bit (little endian) 2 channels
	// even if the source is single channel MP3. Thus, a sample always
	// consists of 4 bytes."
	buf := &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: 2,
			SampleRate:  dec.SampleRate(),
		},
		SourceBitDepth: 16,
	}

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 2 {
			v := int16(binary.LittleEndian.Uint16(chunk[i:]))
			buf.Data = append(buf.Data, float32(v)/32768)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(MP3Error, err)
		}
	}

	return buf, nil
}

// FromSamples converts interleaved 16-bit samples to a normalised buffer.
func FromSamples(sampleRate int, numChannels int, samples []int16) *goaudio.Float32Buffer {
	buf := &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           make([]float32, len(samples)),
		SourceBitDepth: 16,
	}
	for i, v := range samples {
		buf.Data[i] = float32(v) / 32768
	}
	return buf
}

// Duration returns the length of the buffer in seconds.
func Duration(buf *goaudio.Float32Buffer) float64 {
	if buf.Format == nil || buf.Format.SampleRate == 0 || buf.Format.NumChannels == 0 {
		return 0
	}
	return float64(buf.NumFrames()) / float64(buf.Format.SampleRate)
}
