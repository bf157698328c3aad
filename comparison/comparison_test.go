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

package comparison_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/comparison"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/test"
)

// stereo sine wave of n frames
func sine(n int, period int, amplitude float64) []int16 {
	s := make([]int16, 0, n*2)
	for i := range n {
		v := audio.Clamp(amplitude * math.Sin(2*math.Pi*float64(i)/float64(period)))
		s = append(s, v, v)
	}
	return s
}

func TestIdentical(t *testing.T) {
	a := comparison.FromSamples(32768, 2, sine(1000, 50, 10000))
	b := comparison.FromSamples(32768, 2, sine(1000, 50, 10000))

	res, err := comparison.Compare(a, b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 1000)
	test.ExpectApproximate(t, res.RMS, 0.0, 0.00001)
	test.ExpectApproximate(t, res.Peak, 0.0, 0.00001)
	test.ExpectApproximate(t, res.Correlation, 1.0, 0.00001)
}

func TestInverted(t *testing.T) {
	a := comparison.FromSamples(32768, 2, sine(1000, 50, 10000))
	b := comparison.FromSamples(32768, 2, sine(1000, 50, -10000))

	res, err := comparison.Compare(a, b)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, res.Correlation, -1.0, 0.00001)
	test.ExpectApproximate(t, res.Peak, 20000.0/32768.0, 0.01)
}

func TestResampling(t *testing.T) {
	// the reference is at half the sample rate but covers the same length of
	// time
	a := comparison.FromSamples(32768, 2, sine(2000, 100, 10000))
	b := comparison.FromSamples(16384, 2, sine(1000, 50, 10000))

	res, err := comparison.Compare(a, b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 2000)
	test.ExpectApproximate(t, res.RenderedLength, res.ReferenceLength, 0.0001)
	test.ExpectApproximate(t, res.Correlation, 1.0, 0.01)
}

func TestSilence(t *testing.T) {
	a := comparison.FromSamples(32768, 2, make([]int16, 200))
	b := comparison.FromSamples(32768, 2, sine(100, 50, 10000))

	res, err := comparison.Compare(a, b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 100)
	test.ExpectApproximate(t, res.Correlation, 0.0, 0.00001)
	test.ExpectInequality(t, res.RMS, 0.0)
}

func TestNoFormat(t *testing.T) {
	a := comparison.FromSamples(32768, 2, sine(100, 50, 10000))
	_, err := comparison.Compare(a, nil)
	test.ExpectSuccess(t, curated.Is(err, comparison.ComparisonError))
}

func TestSink(t *testing.T) {
	cmp := comparison.NewComparison(comparison.FromSamples(32768, 2, sine(1000, 50, 10000)))
	test.DemandImplements[audio.Sink](t, cmp)

	err := cmp.EndMixing()
	test.ExpectFailure(t, err)

	s := sine(1000, 50, 10000)
	test.DemandSuccess(t, cmp.SetAudio(32768, s[:1000]))
	test.DemandSuccess(t, cmp.SetAudio(32768, s[1000:]))
	test.DemandSuccess(t, cmp.EndMixing())
	test.ExpectEquality(t, cmp.Result.Frames, 1000)
	test.ExpectApproximate(t, cmp.Result.Correlation, 1.0, 0.00001)

	cmp.Reset()
	test.ExpectEquality(t, cmp.Result.Frames, 0)
}

func TestReferenceFiles(t *testing.T) {
	test.ExpectSuccess(t, comparison.IsReference("song.WAV"))
	test.ExpectSuccess(t, comparison.IsReference("song.mp3"))
	test.ExpectFailure(t, comparison.IsReference("song.minigsf"))

	_, err := comparison.LoadReference(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, comparison.ReferenceError))
}

func TestRecorder(t *testing.T) {
	var rec comparison.Recorder

	_, err := rec.Buffer()
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, rec.SetAudio(32768, sine(500, 50, 8000)))
	test.DemandSuccess(t, rec.SetAudio(32768, sine(500, 50, 8000)))
	test.DemandSuccess(t, rec.EndMixing())

	buf, err := rec.Buffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.NumFrames(), 1000)
	test.ExpectApproximate(t, comparison.Duration(buf), 1000.0/32768.0, 0.00001)

	cmp := comparison.NewComparison(buf)
	var sink audio.Sink = cmp
	test.DemandSuccess(t, sink.SetAudio(32768, append(sine(500, 50, 8000), sine(500, 50, 8000)...)))
	test.DemandSuccess(t, sink.EndMixing())
	test.ExpectApproximate(t, cmp.Result.Correlation, 1.0, 0.00001)

	rec.Reset()
	_, err = rec.Buffer()
	test.ExpectFailure(t, err)
}
