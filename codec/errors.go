// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrZeroProcessingTime = errors.New("efficiency undefined: processing time is zero")
)
