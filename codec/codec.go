// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"math"
	"time"
)

const (
	// DefaultDelay is the simulated per-cycle codec processing delay.
	DefaultDelay = 100 * time.Millisecond

	// workloadIterations is the fixed size of the arithmetic loop run on
	// every cycle to stand in for codec computation.
	workloadIterations = 1000

	// ReferenceBitRate is the bit rate (kbit/s) against which processing
	// efficiency is normalized.
	ReferenceBitRate = 320
)

// Simulator fakes codec processing by sleeping for a fixed delay and
// running a fixed-count trigonometric workload, measuring the combined
// wall-clock time.
type Simulator struct {
	delay time.Duration
	clock Clock
}

// NewSimulator creates a simulator with the given per-cycle delay, timed
// against the real wall clock.
func NewSimulator(delay time.Duration) *Simulator {
	return NewSimulatorClock(delay, wallClock{})
}

// NewSimulatorClock creates a simulator timed against the given clock.
func NewSimulatorClock(delay time.Duration, clock Clock) *Simulator {
	return &Simulator{delay: delay, clock: clock}
}

// Process runs one simulated processing cycle and returns the measured
// elapsed time in whole milliseconds. cycle is the 1-based cycle number;
// it only varies the workload operands.
func (s *Simulator) Process(cycle int) float64 {
	start := s.clock.Now()

	s.clock.Sleep(s.delay)

	// The workload result is discarded; only the elapsed time matters.
	accumulator := 0.0
	for k := 0; k < workloadIterations; k++ {
		accumulator += math.Sin(float64(k)*0.01) * math.Cos(float64(cycle)*0.02)
	}

	elapsed := s.clock.Now().Sub(start)
	return float64(elapsed.Milliseconds())
}

// Efficiency derives the processing efficiency index for one cycle:
// inversely proportional to the measured time and proportional to the
// configured bit rate relative to ReferenceBitRate. A zero measured time
// would divide by zero, so it is rejected with ErrZeroProcessingTime
// rather than producing a non-finite value.
func Efficiency(processingTimeMS float64, bitRateKbps int) (float64, error) {
	if processingTimeMS == 0 {
		return 0, ErrZeroProcessingTime
	}
	return (1000.0 / processingTimeMS) * (float64(bitRateKbps) / ReferenceBitRate), nil
}
