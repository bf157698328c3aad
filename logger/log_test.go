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

package logger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gsfplayer/logger"
	"github.com/jetsetilly/gsfplayer/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Log(logger.Allow, "ARM7", "undefined thumb instruction")
	log.Log(logger.Allow, "ARM7", "undefined thumb instruction")
	log.Log(logger.Allow, "ARM7", "undefined thumb instruction")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "ARM7: undefined thumb instruction (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	tw := &test.Writer{}

	log.Logf(logger.Allow, "tag", "%d", 1)
	log.Logf(logger.Allow, "tag", "%d", 2)
	log.Logf(logger.Allow, "tag", "%d", 3)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: 2\ntag: 3\n")

	n := 0
	log.BorrowLog(func(e []logger.Entry) {
		n = len(e)
	})
	test.ExpectEquality(t, n, 2)
}

type prohibitLogging struct{}

func (_ prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Log(prohibitLogging{}, "tag", "detail")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	err := errors.New("test error")
	log.Log(logger.Allow, "tag", err)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: test error\n")

	log.Clear()
	tw.Clear()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: wrapped: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.SetEcho(tw)
	log.Log(logger.Allow, "bios", "SoftReset")
	test.ExpectEquality(t, tw.String(), "bios: SoftReset\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "bios", "Halt")
	test.ExpectEquality(t, tw.String(), "bios: SoftReset\n")
}
