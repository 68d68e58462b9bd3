// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// Generator is a deterministic Source producing a modulated sine wave.
// For a generator of size N, sample i is
//
//	sin(2π·i/N) · (0.5 + 0.3·sin(0.1·i))
//
// so two generators with the same size emit identical streams.
type Generator struct {
	size       int
	sampleRate int
	pos        int
}

// NewGenerator creates a generator emitting size samples at sampleRate.
// size must be positive.
func NewGenerator(size, sampleRate int) (*Generator, error) {
	if size <= 0 {
		return nil, ErrEmptyBuffer
	}

	return &Generator{
		size:       size,
		sampleRate: sampleRate,
	}, nil
}

func (g *Generator) SampleRate() int { return g.sampleRate }

func (g *Generator) ReadSamples(dst []float64) (int, error) {
	if g.pos >= g.size {
		return 0, io.EOF
	}

	n := len(dst)
	if remaining := g.size - g.pos; n > remaining {
		n = remaining
	}

	for i := 0; i < n; i++ {
		idx := g.pos + i
		amplitude := math.Sin(2.0 * math.Pi * float64(idx) / float64(g.size))
		amplitude *= 0.5 + 0.3*math.Sin(float64(idx)*0.1)
		dst[i] = amplitude
	}
	g.pos += n

	if g.pos >= g.size {
		return n, io.EOF
	}
	return n, nil
}
