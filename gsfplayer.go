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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	goaudio "github.com/go-audio/audio"
	"github.com/jetsetilly/gsfplayer/comparison"
	"github.com/jetsetilly/gsfplayer/debugger"
	"github.com/jetsetilly/gsfplayer/debugger/easyterm"
	"github.com/jetsetilly/gsfplayer/digest"
	"github.com/jetsetilly/gsfplayer/disassembly"
	"github.com/jetsetilly/gsfplayer/hardware/instance"
	"github.com/jetsetilly/gsfplayer/hardware/preferences"
	"github.com/jetsetilly/gsfplayer/logger"
	"github.com/jetsetilly/gsfplayer/modalflag"
	"github.com/jetsetilly/gsfplayer/otoplay"
	"github.com/jetsetilly/gsfplayer/performance"
	"github.com/jetsetilly/gsfplayer/playmode"
	"github.com/jetsetilly/gsfplayer/prefs"
	"github.com/jetsetilly/gsfplayer/rip"
	"github.com/jetsetilly/gsfplayer/statsview"
	"github.com/jetsetilly/gsfplayer/version"
	"github.com/jetsetilly/gsfplayer/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler. the PLAY mode stops playback gracefully for example.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RENDER", "PLAY", "DISASM", "STEP", "STATE", "COMPARE", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *ver {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md)

	case "PLAY":
		err = play(md, sync)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = step(md)

	case "STATE":
		err = state(md)

	case "COMPARE":
		err = compare(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by every mode that runs a rip
type common struct {
	log     *bool
	prefs   *string
	profile *string
	stats   *bool
	entry   *string
	raw     *string
	length  *string
	fade    *string
}

func addCommon(md *modalflag.Modes) *common {
	c := &common{
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:   md.AddString("prefs", "", "override preferences (eg. 'audio.volume::0.5; hardware.arm7.clock::16.0')"),
		profile: md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)"),
		entry:   md.AddString("entry", "", "override the entry point of the rip (hex)"),
		raw:     md.AddString("raw", "", "load a raw binary at the address (hex)"),
		length:  md.AddString("length", "", "playing time (eg. 2:30.5). taken from the rip if not specified"),
		fade:    md.AddString("fade", "", "fade time (eg. 10). taken from the rip if not specified"),
	}
	if statsview.Available() {
		c.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// apply the flags that should be acted upon before anything else
func (c *common) apply() {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	if c.stats != nil && *c.stats {
		statsview.Launch(os.Stdout)
	}
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a hexadecimal address (%s)", s)
	}
	return uint32(v), nil
}

// options for a new playmode session
func (c *common) options(realtime bool) (playmode.Options, error) {
	opts := playmode.Options{
		Fade:     -1,
		Realtime: realtime,
	}

	var err error

	if *c.entry != "" {
		opts.Entry, err = parseHex(*c.entry)
		if err != nil {
			return opts, err
		}
	}
	if *c.length != "" {
		opts.Length, err = rip.ParseTime(*c.length)
		if err != nil {
			return opts, err
		}
	}
	if *c.fade != "" {
		opts.Fade, err = rip.ParseTime(*c.fade)
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// open the rip. files with a raw extension or a -raw flag are loaded as raw
// binaries
func (c *common) openRip(filename string) (*rip.Rip, error) {
	if *c.raw == "" && !rip.IsRaw(filename) {
		return rip.Open(filename)
	}

	addr := uint32(0x08000000)
	if *c.raw != "" {
		var err error
		addr, err = parseHex(*c.raw)
		if err != nil {
			return nil, err
		}
	}

	return rip.OpenRaw(filename, addr, addr|0x01)
}

// create a new session for the rip named by the single remaining argument
func (c *common) session(md *modalflag.Modes, label instance.Label, pref *preferences.Preferences, realtime bool) (*playmode.Session, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("rip required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
	return c.newSession(md.GetArg(0), label, pref, realtime)
}

func (c *common) newSession(filename string, label instance.Label, pref *preferences.Preferences, realtime bool) (*playmode.Session, error) {
	r, err := c.openRip(filename)
	if err != nil {
		return nil, err
	}

	opts, err := c.options(realtime)
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(label, pref)
	if err != nil {
		return nil, err
	}

	return playmode.NewSession(ins, r, opts)
}

func (c *common) run(header string, run func() error) error {
	profile, err := performance.ParseProfile(*c.profile)
	if err != nil {
		return err
	}
	return performance.RunProfiler(profile, header, run)
}

func render(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	output := md.AddString("wav", "", "name of output file. defaults to name of rip with a .wav extension")
	digestOnly := md.AddBool("digest", false, "print a digest of the audio instead of writing a file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	s, err := c.session(md, instance.Main, nil, false)
	if err != nil {
		return err
	}

	if *digestOnly {
		dig := digest.NewAudio()
		s.AddSink(dig)

		err = c.run("render", func() error {
			return s.Play(nil)
		})
		if err != nil {
			return err
		}

		fmt.Println(dig.Hash())
		return nil
	}

	fn := *output
	if fn == "" {
		fn = strings.TrimSuffix(filepath.Base(s.Rip.Filename), filepath.Ext(s.Rip.Filename)) + ".wav"
	}

	ww, err := wavwriter.New(fn)
	if err != nil {
		return err
	}
	s.AddSink(ww)

	err = c.run("render", func() error {
		return s.Play(nil)
	})
	if err != nil {
		return err
	}

	fmt.Printf("! %s written (%s)\n", fn, s.Length+s.Fade)
	return nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	if !otoplay.Available() {
		return fmt.Errorf("audio playback is not available in this build")
	}

	s, err := c.session(md, instance.Main, nil, true)
	if err != nil {
		return err
	}
	s.AddSink(otoplay.NewOtoPlayer())

	// playback ends gracefully on ctrl-c
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	quit := make(chan bool, 1)
	go func() {
		<-intChan
		quit <- true
	}()

	if title, ok := s.Rip.Tags.Get("title"); ok {
		fmt.Printf("playing %s (%s)\n", title, s.Length)
	} else {
		fmt.Printf("playing %s (%s)\n", filepath.Base(s.Rip.Filename), s.Length)
	}

	return c.run("play", func() error {
		return s.Play(quit)
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	start := md.AddString("start", "", "address to start disassembly from (hex). defaults to the entry point")
	count := md.AddInt("count", 64, "number of instructions to disassemble")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	s, err := c.session(md, instance.Main, preferences.DefaultPreferences(), false)
	if err != nil {
		return err
	}

	addr := s.GBA.Entry()
	if *start != "" {
		addr, err = parseHex(*start)
		if err != nil {
			return err
		}
	}

	dsm := disassembly.FromMemory(s.GBA.Mem, addr, *count)
	return dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: *bytecode})
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	device := md.AddString("tty", easyterm.DefaultDevice, "terminal device to read key presses from")
	breaks := md.AddString("break", "", "breakpoint addresses (hex, comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	bps, err := debugger.ParseBreakpoints(*breaks)
	if err != nil {
		return err
	}

	s, err := c.session(md, instance.Main, nil, false)
	if err != nil {
		return err
	}

	term, err := easyterm.Open(*device, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	dbg := debugger.NewDebugger(s.GBA, term, os.Stdout)
	for _, a := range bps {
		dbg.AddBreakpoint(a)
	}

	return c.run("step", dbg.Start)
}

func state(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	frames := md.AddInt("frames", 1, "number of frames to run before printing the CPU state")
	dot := md.AddBool("dot", false, "print the CPU state as a graphviz dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	s, err := c.session(md, instance.Main, nil, false)
	if err != nil {
		return err
	}

	err = c.run("state", func() error {
		return s.GBA.RunForFrameCount(*frames, nil)
	})
	if err != nil {
		return err
	}

	if *dot {
		memviz.Map(os.Stdout, s.GBA.CPU.Snapshot())
		return nil
	}

	fmt.Println(s.GBA.String())
	fmt.Println(s.GBA.Mem.Timing.String())
	return nil
}

func compare(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("a rip and a reference (wav, mp3 or another rip) are required for %s mode", md)
	}

	// both instances share the same preferences
	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	s, err := c.newSession(md.GetArg(0), instance.Main, pref, false)
	if err != nil {
		return err
	}

	return c.run("compare", func() error {
		ref, err := reference(c, md.GetArg(1), pref)
		if err != nil {
			return err
		}

		cmp := comparison.NewComparison(ref)
		s.AddSink(cmp)

		err = s.Play(nil)
		if err != nil {
			return err
		}

		fmt.Println(cmp.Result.String())
		return nil
	})
}

// the reference audio is either loaded from a file or rendered from a second
// rip
func reference(c *common, filename string, pref *preferences.Preferences) (*goaudio.Float32Buffer, error) {
	if comparison.IsReference(filename) {
		return comparison.LoadReference(filename)
	}

	s, err := c.newSession(filename, instance.Comparison, pref, false)
	if err != nil {
		return nil, err
	}

	rec := &comparison.Recorder{}
	s.AddSink(rec)

	err = s.Play(nil)
	if err != nil {
		return nil, err
	}

	return rec.Buffer()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.apply()

	profile, err := performance.ParseProfile(*c.profile)
	if err != nil {
		return err
	}

	s, err := c.session(md, instance.Main, nil, false)
	if err != nil {
		return err
	}

	// performance is measured with the audio being captured but without any
	// sinks
	start := time.Now()
	err = performance.Check(os.Stdout, profile, s.GBA, *duration)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "performance", "ran for %s (%s emulated)", time.Since(start), s.Elapsed())

	return nil
}
