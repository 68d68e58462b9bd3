// SPDX-License-Identifier: EPL-2.0

package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds the descriptive statistics of one measurement series.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Sum  float64
}

// Describe computes min, max, arithmetic mean and sum of xs.
// Returns ErrEmptySeries for an empty series.
func Describe(xs []float64) (Stats, error) {
	if len(xs) == 0 {
		return Stats{}, ErrEmptySeries
	}

	return Stats{
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
		Mean: stat.Mean(xs, nil),
		Sum:  floats.Sum(xs),
	}, nil
}
