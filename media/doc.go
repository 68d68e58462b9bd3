// SPDX-License-Identifier: EPL-2.0

// Package media holds metadata for simulated media resources.
//
// A Metadata value is built once from caller-supplied literals and is
// immutable afterwards:
//
//	meta := media.New("song.mp3", "MP3", 180.0, 320)
//	if meta.CodecSupported {
//	    // format is on the supported list
//	}
//
// Codec support is a fixed, case-sensitive allow-list (MP3, WAV, FLAC);
// it can also be queried directly with FormatSupported.
package media
