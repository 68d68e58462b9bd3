// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Buffer holds a fully generated sample sequence together with the scalars
// derived from it. Peak, RMS and Count are computed once while the buffer
// is filled and are never recomputed.
type Buffer struct {
	// PCM holds the mono sample data.
	PCM *goaudio.FloatBuffer
	// Peak is the maximum absolute amplitude in the buffer.
	Peak float64
	// RMS is the root-mean-square power level of the buffer.
	RMS float64
	// Count is the number of samples processed; equal to len(PCM.Data).
	Count int
}

// Generate produces a Buffer of size synthetic samples at sampleRate,
// computing peak amplitude and RMS power in the same pass. size must be
// positive; otherwise ErrEmptyBuffer is returned.
func Generate(size, sampleRate int) (*Buffer, error) {
	gen, err := NewGenerator(size, sampleRate)
	if err != nil {
		return nil, err
	}
	return Analyze(gen, size)
}

// Analyze drains up to size samples from src into a Buffer, tracking peak
// amplitude and accumulating squared values for the RMS calculation.
func Analyze(src Source, size int) (*Buffer, error) {
	if size <= 0 {
		return nil, ErrEmptyBuffer
	}

	buf := &Buffer{
		PCM: &goaudio.FloatBuffer{
			Format: &goaudio.Format{
				NumChannels: 1,
				SampleRate:  src.SampleRate(),
			},
			Data: make([]float64, 0, size),
		},
	}

	var rmsAccumulator float64

	tmp := make([]float64, min(size, 4096))
	for len(buf.PCM.Data) < size {
		want := size - len(buf.PCM.Data)
		if want > len(tmp) {
			want = len(tmp)
		}
		n, err := src.ReadSamples(tmp[:want])
		for _, sample := range tmp[:n] {
			buf.PCM.Data = append(buf.PCM.Data, sample)
			buf.Peak = math.Max(buf.Peak, math.Abs(sample))
			rmsAccumulator += sample * sample
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	buf.Count = len(buf.PCM.Data)
	if buf.Count == 0 {
		return nil, ErrEmptyBuffer
	}
	buf.RMS = math.Sqrt(rmsAccumulator / float64(buf.Count))

	return buf, nil
}

// DynamicRange returns the ratio of peak amplitude to RMS power.
// Returns ErrZeroRMS when the RMS power is exactly zero, since the ratio
// is undefined for a silent buffer.
func (b *Buffer) DynamicRange() (float64, error) {
	if b.RMS == 0 {
		return 0, ErrZeroRMS
	}
	return b.Peak / b.RMS, nil
}
