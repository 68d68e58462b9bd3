// SPDX-License-Identifier: EPL-2.0

package report

import "errors"

var (
	ErrEmptySeries = errors.New("measurement series is empty")
)
