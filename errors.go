// SPDX-License-Identifier: EPL-2.0

package mediasim

import "errors"

var (
	ErrInvalidCycleCount = errors.New("cycle count must be positive")
)
