// SPDX-License-Identifier: EPL-2.0

package media

// Metadata describes a single media resource. All fields are set once by
// New and never mutated afterwards.
type Metadata struct {
	// Identifier names the media resource (e.g. a file name).
	Identifier string
	// Format is the media format tag (e.g. "MP3", "WAV").
	Format string
	// Duration is the total playback duration in seconds.
	Duration float64
	// BitRate is the encoding bit rate in kbit/s.
	BitRate int
	// CodecSupported reports whether Format is on the supported-format
	// list. Derived once from Format at construction time.
	CodecSupported bool
}

// supportedFormats is the fixed set of formats the simulated player can
// process. Matching is case-sensitive.
var supportedFormats = map[string]struct{}{
	"MP3":  {},
	"WAV":  {},
	"FLAC": {},
}

// FormatSupported reports whether format is on the supported-format list.
func FormatSupported(format string) bool {
	_, ok := supportedFormats[format]
	return ok
}

// New builds a Metadata value for the given resource. All inputs are
// trusted literals in this system, so there are no error cases.
func New(identifier, format string, duration float64, bitRate int) Metadata {
	return Metadata{
		Identifier:     identifier,
		Format:         format,
		Duration:       duration,
		BitRate:        bitRate,
		CodecSupported: FormatSupported(format),
	}
}
