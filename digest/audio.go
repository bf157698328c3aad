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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow digests of audio streams longer than audioBufferLength, the
// previous digest value is put into the first part of the buffer and is
// included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio implements the audio.Sink interface.
type Audio struct {
	digest     [sha1.Size]byte
	buffer     []uint8
	bufferCt   int
	sampleRate int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.Reset()
	return dig
}

// Hash returns the current digest value as a hex string.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%s (%dHz)", dig.Hash(), dig.sampleRate)
}

// Reset implements the audio.Sink interface.
func (dig *Audio) Reset() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
	dig.sampleRate = 0
}

// SetAudio implements the audio.Sink interface. The sample rate is part of the
// digest.
func (dig *Audio) SetAudio(sampleRate int, samples []int16) error {
	if dig.sampleRate != sampleRate {
		dig.sampleRate = sampleRate
		if err := dig.write(uint16(sampleRate)); err != nil {
			return err
		}
		if err := dig.write(uint16(sampleRate >> 16)); err != nil {
			return err
		}
	}

	for _, s := range samples {
		if err := dig.write(uint16(s)); err != nil {
			return err
		}
	}

	return nil
}

func (dig *Audio) write(v uint16) error {
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], v)
	dig.bufferCt += 2
	if dig.bufferCt >= audioBufferLength {
		return dig.flush()
	}
	return nil
}

func (dig *Audio) flush() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing implements the audio.Sink interface. Any buffered samples are
// included in the final digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		return dig.flush()
	}
	return nil
}
