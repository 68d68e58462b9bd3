// SPDX-License-Identifier: EPL-2.0

// Package report formats the simulation's console output.
//
// A Reporter writes every section of the run to a single io.Writer: the
// header banner, the configuration blocks, one progress line per cycle and
// the final performance analysis report. Progress rendering is pure
// formatting; no state is kept between calls.
//
// Describe computes the descriptive statistics (min, max, mean, sum) the
// report is built from, using gonum.
package report
