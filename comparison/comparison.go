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
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/jetsetilly/gsfplayer/audio"
	"github.com/jetsetilly/gsfplayer/curated"
	"github.com/jetsetilly/gsfplayer/logger"
)

// Sentinal error patterns.
const (
	ComparisonError = "comparison: %v"
)

// Result of a comparison. All values are calculated on the mono mix of the
// two sources.
type Result struct {
	// number of frames compared. this is the length of the shorter source
	// after resampling
	Frames int

	// root mean square and peak of the difference between the sources
	RMS  float64
	Peak float64

	// pearson correlation coefficient. zero if either source is silent
	Correlation float64

	// length of each source in seconds
	RenderedLength  float64
	ReferenceLength float64
}

func (r Result) String() string {
	return fmt.Sprintf("%d frames: rms=%.5f peak=%.5f correlation=%.4f (rendered %.2fs, reference %.2fs)",
		r.Frames, r.RMS, r.Peak, r.Correlation, r.RenderedLength, r.ReferenceLength)
}

// mono mix of the buffer
func mono(buf *goaudio.Float32Buffer) []float64 {
	n := buf.Format.NumChannels
	m := make([]float64, 0, len(buf.Data)/n)
	for i := 0; i+n <= len(buf.Data); i += n {
		var v float64
		for c := range n {
			v += float64(buf.Data[i+c])
		}
		m = append(m, v/float64(n))
	}
	return m
}

// resample using linear interpolation
func resample(data []float64, from int, to int) []float64 {
	if from == to || len(data) == 0 {
		return data
	}
	step := float64(from) / float64(to)
	n := int(float64(len(data)) / step)
	r := make([]float64, n)
	for i := range r {
		p := float64(i) * step
		j := int(p)
		if j+1 >= len(data) {
			r[i] = data[len(data)-1]
			continue
		}
		f := p - float64(j)
		r[i] = data[j]*(1-f) + data[j+1]*f
	}
	return r
}

// Compare rendered audio with a reference. The reference is resampled to the
// sample rate of the rendered audio.
func Compare(rendered *goaudio.Float32Buffer, reference *goaudio.Float32Buffer) (Result, error) {
	for _, b := range []*goaudio.Float32Buffer{rendered, reference} {
		if b == nil || b.Format == nil || b.Format.NumChannels == 0 || b.Format.SampleRate == 0 {
			return Result{}, curated.Errorf(ComparisonError, "buffer has no format")
		}
	}

	res := Result{
		RenderedLength:  Duration(rendered),
		ReferenceLength: Duration(reference),
	}

	a := mono(rendered)
	b := resample(mono(reference), reference.Format.SampleRate, rendered.Format.SampleRate)

	res.Frames = min(len(a), len(b))
	if res.Frames == 0 {
		return res, nil
	}

	var sumA, sumB, sumAA, sumBB, sumAB, sumDiff float64
	for i := range res.Frames {
		d := a[i] - b[i]
		sumDiff += d * d
		res.Peak = math.Max(res.Peak, math.Abs(d))

		sumA += a[i]
		sumB += b[i]
		sumAA += a[i] * a[i]
		sumBB += b[i] * b[i]
		sumAB += a[i] * b[i]
	}

	n := float64(res.Frames)
	res.RMS = math.Sqrt(sumDiff / n)

	cov := sumAB - sumA*sumB/n
	varA := sumAA - sumA*sumA/n
	varB := sumBB - sumB*sumB/n
	if varA > 0 && varB > 0 {
		res.Correlation = cov / math.Sqrt(varA*varB)
	}

	return res, nil
}

// Comparison implements the audio.Sink interface. Rendered audio is buffered
// and compared with the reference when mixing ends.
type Comparison struct {
	reference  *goaudio.Float32Buffer
	sampleRate int
	samples    []int16

	// valid after EndMixing() has been called
	Result Result
}

// NewComparison is the preferred method of initialisation for the Comparison
// type.
func NewComparison(reference *goaudio.Float32Buffer) *Comparison {
	return &Comparison{
		reference: reference,
	}
}

// SetAudio implements the audio.Sink interface.
func (cmp *Comparison) SetAudio(sampleRate int, samples []int16) error {
	cmp.sampleRate = sampleRate
	cmp.samples = append(cmp.samples, samples...)
	return nil
}

// EndMixing implements the audio.Sink interface.
func (cmp *Comparison) EndMixing() error {
	if cmp.sampleRate == 0 {
		return curated.Errorf(ComparisonError, "no audio was rendered")
	}

	var err error
	cmp.Result, err = Compare(FromSamples(cmp.sampleRate, audio.NumChannels, cmp.samples), cmp.reference)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "comparison", "%s", cmp.Result)
	return nil
}

// Reset implements the audio.Sink interface.
func (cmp *Comparison) Reset() {
	cmp.samples = cmp.samples[:0]
	cmp.sampleRate = 0
	cmp.Result = Result{}
}
