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

package debugger_test

import (
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/debugger"
	"github.com/jetsetilly/gsfplayer/debugger/govern"
	"github.com/jetsetilly/gsfplayer/hardware"
	"github.com/jetsetilly/gsfplayer/hardware/instance"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/test"
)

type keys struct {
	b []byte
}

func (k *keys) ReadKey() (byte, error) {
	if len(k.b) == 0 {
		return 0, io.EOF
	}
	b := k.b[0]
	k.b = k.b[1:]
	return b, nil
}

// MOV R0, #1; loop: ADD R0, #1; B loop
func newDebugger(t *testing.T, input string) (*debugger.Debugger, *hardware.GBA, *test.Writer) {
	t.Helper()

	ins, err := instance.NewInstance(instance.Main, preferences.DefaultPreferences())
	test.DemandSuccess(t, err)
	gba, err := hardware.NewGBA(ins)
	test.DemandSuccess(t, err)

	data := make([]byte, 6)
	for i, op := range []uint16{0x2001, 0x3001, 0xe7fd} {
		binary.LittleEndian.PutUint16(data[i*2:], op)
	}
	test.DemandSuccess(t, gba.LoadProgram(0x08000000, data))
	gba.Reset(0x08000001)

	w := &test.Writer{}
	return debugger.NewDebugger(gba, &keys{b: []byte(input)}, w), gba, w
}

func TestStep(t *testing.T) {
	dbg, gba, w := newDebugger(t, " rq")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, dbg.Mode(), govern.ModeStep)
	test.ExpectEquality(t, gba.CPU.Register(0), 1)

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "08000000  2001  mov"))
	test.ExpectSuccess(t, strings.Contains(out, "R0 : 00000001"))
}

func TestEndOfInput(t *testing.T) {
	dbg, _, _ := newDebugger(t, "ss")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestBreakpoint(t *testing.T) {
	dbg, gba, w := newDebugger(t, "c")
	dbg.AddBreakpoint(0x08000005)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, gba.CPU.ExecutionAddress(), 0x08000004)
	test.ExpectEquality(t, gba.CPU.Register(0), 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), "breakpoint at 08000004 (frame 0)"))
}

func TestRunToEndOfFrame(t *testing.T) {
	dbg, gba, w := newDebugger(t, "f")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, gba.Frame(), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "end of frame 1"))
}

func TestContinueLimit(t *testing.T) {
	dbg, gba, w := newDebugger(t, "c")
	dbg.ContinueLimit = 1
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, gba.Frame(), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "no breakpoint after 1 frames"))
}

func TestUnknownKey(t *testing.T) {
	dbg, _, w := newDebugger(t, "x")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown key"))
}

func TestParseBreakpoints(t *testing.T) {
	addrs, err := debugger.ParseBreakpoints("0x08000001, 0x08000010,")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(addrs), 2)
	test.ExpectEquality(t, addrs[0], 0x08000000)
	test.ExpectEquality(t, addrs[1], 0x08000010)

	_, err = debugger.ParseBreakpoints("0x0800000g")
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointError))
}

func TestParseBreakpointsNoPrefix(t *testing.T) {
	addrs, err := debugger.ParseBreakpoints("08000100,$080000ff")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(addrs), 2)
	test.ExpectEquality(t, addrs[0], 0x08000100)
	test.ExpectEquality(t, addrs[1], 0x080000fe)
}
