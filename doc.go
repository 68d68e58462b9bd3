// SPDX-License-Identifier: EPL-2.0

// Package mediasim is an educational media player processing simulation.
//
// The simulation fabricates everything it reports on: the media resource
// is a fixed metadata record, the audio buffer is a closed-form modulated
// sine wave, and each "codec processing" cycle is a constant sleep plus a
// fixed arithmetic loop timed against the wall clock. The output is a
// console report with per-cycle progress bars and descriptive statistics.
// No real decoding, file access or playback is involved.
//
// # Quick Start
//
// Running the whole simulation takes one call:
//
//	err := mediasim.Run(os.Stdout, mediasim.DefaultConfig())
//
// The default configuration runs ten 100ms cycles over a 1024-sample
// buffer for a fictitious 320 kbps MP3 resource, matching the reference
// report layout.
//
// # Components
//
// The work is split across subpackages, in dependency order:
//
//   - media: immutable metadata for the simulated resource, with a fixed
//     codec-support allow-list (MP3, WAV, FLAC)
//   - audio: the deterministic buffer generator and its derived scalars
//     (peak amplitude, RMS power, dynamic range)
//   - codec: the per-cycle delay/workload simulator and the synthetic
//     efficiency index
//   - report: progress and summary formatting
//
// Run wires them together: builder and generator execute once, the
// simulator runs once per cycle feeding two index-aligned measurement
// series, and the summary report aggregates everything at the end.
//
// # Determinism
//
// The buffer generator is bit-for-bit reproducible for a given size. The
// cycle timings are wall-clock measurements and therefore jitter slightly
// from host scheduling; tests inject a deterministic codec.Clock through
// Config.Clock to make full runs reproducible.
//
// # Error Handling
//
// All inputs are trusted literals, so the only failure paths are the two
// guarded divide-by-zero hazards: a zero measured processing time
// (codec.ErrZeroProcessingTime) and a zero RMS power, for which the
// report prints an explicit "undefined" line instead of a non-finite
// value.
package mediasim
