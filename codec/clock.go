// SPDX-License-Identifier: EPL-2.0

package codec

import "time"

// Clock abstracts the wall clock so the simulator can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// wallClock is the real-time Clock used outside of tests.
type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }
