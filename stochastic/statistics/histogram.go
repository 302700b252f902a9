// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package statistics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts a sample in bins of equal width.
type Histogram struct {
	Dividers []float64 // bin boundaries, one more than bins
	Counts   []float64 // number of values per bin
	N        int       // number of counted values
}

// NewHistogram counts the values of a sample that lie in [lower, upper]
// in the given number of bins. Values outside of the range are ignored.
func NewHistogram(xs []float64, bins int, lower, upper float64) (*Histogram, error) {
	if bins < 2 {
		return nil, ErrTooFewBins
	}
	if !(lower < upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return nil, fmt.Errorf("invalid histogram range [%v, %v]", lower, upper)
	}
	inside := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x >= lower && x <= upper {
			inside = append(inside, x)
		}
	}
	dividers := floats.Span(make([]float64, bins+1), lower, upper)
	// the last bin is closed
	dividers[bins] = math.Nextafter(upper, math.Inf(1))

	counts := make([]float64, bins)
	if len(inside) > 0 {
		counts = stat.Histogram(counts, dividers, Sorted(inside), nil)
	}
	dividers[bins] = upper
	return &Histogram{Dividers: dividers, Counts: counts, N: len(inside)}, nil
}

// NewSampleHistogram counts a sample over its own range.
func NewSampleHistogram(xs []float64, bins int) (*Histogram, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	lower, upper := floats.Min(xs), floats.Max(xs)
	if lower == upper {
		lower, upper = lower-0.5, upper+0.5
	}
	return NewHistogram(xs, bins, lower, upper)
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Centers returns the midpoints of the bins.
func (h *Histogram) Centers() []float64 {
	res := make([]float64, h.Bins())
	for i := range res {
		res[i] = (h.Dividers[i] + h.Dividers[i+1]) / 2.0
	}
	return res
}

// Density returns the counts normalised to a density over the counted
// values.
func (h *Histogram) Density() []float64 {
	res := make([]float64, h.Bins())
	if h.N == 0 {
		return res
	}
	for i, c := range h.Counts {
		res[i] = c / (float64(h.N) * (h.Dividers[i+1] - h.Dividers[i]))
	}
	return res
}

// Mode returns the center of the fullest bin.
func (h *Histogram) Mode() float64 {
	return h.Centers()[floats.MaxIdx(h.Counts)]
}
