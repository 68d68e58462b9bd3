// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyBuffer = errors.New("buffer size must be positive")
	ErrZeroRMS     = errors.New("dynamic range undefined: RMS power is zero")
)
