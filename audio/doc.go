// SPDX-License-Identifier: EPL-2.0

// Package audio generates and analyzes synthetic audio buffers.
//
// This package contains the signal side of the simulation:
//   - Source interface for streams of float64 samples
//   - Generator, a deterministic modulated-sine Source
//   - Buffer, a generated sample sequence with derived scalars
//
// # Generating a Buffer
//
// Generate produces a buffer and its analysis in one step:
//
//	buf, err := audio.Generate(1024, 44100)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(buf.Peak, buf.RMS, buf.Count)
//
// The generator is closed-form, so the same size always yields the same
// sample sequence and the same peak/RMS values.
//
// # Sample Format
//
// Samples are float64 values in [-1.0, 1.0], stored in a
// github.com/go-audio/audio FloatBuffer (mono). The derived scalars are:
//   - Peak: maximum absolute sample value
//   - RMS: sqrt of the mean of squared sample values
//   - Count: number of samples, always equal to the buffer length
//
// # Dynamic Range
//
// DynamicRange reports Peak/RMS. A silent buffer has zero RMS, for which
// the ratio is undefined; the method returns ErrZeroRMS instead of a
// non-finite value:
//
//	dr, err := buf.DynamicRange()
//	if errors.Is(err, audio.ErrZeroRMS) {
//	    // silent buffer, no meaningful dynamic range
//	}
//
// # Custom Sources
//
// Analyze accepts any Source, which is how tests feed known waveforms
// through the same analysis path:
//
//	buf, err := audio.Analyze(src, 256)
package audio
