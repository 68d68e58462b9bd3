// SPDX-License-Identifier: EPL-2.0

package audio

// Source yields a stream of synthetic audio samples.
type Source interface {
	// SampleRate of the sample stream in Hz.
	SampleRate() int
	// ReadSamples fills dst with float64 samples in [-1,1].
	// Returns the number of samples written. When n == 0 with
	// err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)
}
