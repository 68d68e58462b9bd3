// SPDX-License-Identifier: EPL-2.0

// Package codec simulates codec processing cycles with timing measurement.
//
// A Simulator runs one cycle at a time: it blocks for a configured delay,
// performs a fixed-count trigonometric workload, and reports the measured
// wall-clock elapsed time in whole milliseconds:
//
//	sim := codec.NewSimulator(codec.DefaultDelay)
//	elapsedMS := sim.Process(1)
//
// The measured time is dominated by the delay, so it clusters tightly
// around the delay's nominal value with small host-scheduler jitter. Tests
// should assert approximate bounds (elapsed >= delay), not exact values,
// or inject a deterministic Clock via NewSimulatorClock.
//
// Efficiency converts a measured time into the synthetic efficiency index
//
//	(1000 / elapsedMS) · (bitRate / 320)
//
// which has no physical meaning beyond being inversely proportional to
// latency and proportional to the configured bit rate relative to a
// 320 kbit/s reference.
package codec
