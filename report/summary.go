// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// A Summary is a summary of the proportion
// of the counts created in the time window.
type Summary struct {
	// Proportion of each row.
	// It is zero for rows without counts.
	Proportion []float64

	// InWindow and Total are the sums
	// over all the rows.
	InWindow int
	Total    int

	// Pooled is the proportion of the sums.
	Pooled float64

	// Mean and Median of the proportions
	// of the rows with counts.
	Mean   float64
	Median float64
}

// Summary returns a summary of the report.
func (r *Report) Summary() Summary {
	s := Summary{
		Proportion: make([]float64, len(r.Rows)),
	}

	var p []float64
	for i, rw := range r.Rows {
		s.InWindow += rw.InWindow
		s.Total += rw.Total
		if rw.Total == 0 {
			continue
		}
		v := float64(rw.InWindow) / float64(rw.Total)
		s.Proportion[i] = v
		p = append(p, v)
	}
	if s.Total > 0 {
		s.Pooled = float64(s.InWindow) / float64(s.Total)
	}
	if len(p) == 0 {
		return s
	}

	s.Mean = stat.Mean(p, nil)
	slices.Sort(p)
	s.Median = stat.Quantile(0.5, stat.Empirical, p, nil)
	return s
}
