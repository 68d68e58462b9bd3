package audio

import "io"

// mockSource is a test helper that generates audio data for testing.
// It implements the Source interface with an arbitrary waveform function.
type mockSource struct {
	sampleRate   int
	totalSamples int
	generated    int
	waveform     func(sample int) float64
}

// newMockSource creates a new mock audio source.
// waveform generates sample values given the sample index.
func newMockSource(sampleRate, totalSamples int, waveform func(sample int) float64) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, totalSamples int) *mockSource {
	return newMockSource(sampleRate, totalSamples, func(sample int) float64 {
		return 0.0
	})
}

// newConstantSource creates a mock source with constant value.
func newConstantSource(sampleRate, totalSamples int, value float64) *mockSource {
	return newMockSource(sampleRate, totalSamples, func(sample int) float64 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }

func (m *mockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	available := m.totalSamples - m.generated
	n := len(dst)
	if n > available {
		n = available
	}

	for i := 0; i < n; i++ {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}
	return n, nil
}
