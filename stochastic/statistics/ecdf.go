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

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// ECDF is a piecewise linear approximation of an empirical cumulative
// distribution function, given by points (x, F(x)). The x coordinates are
// non-decreasing, the first point has a probability of 0 and the last
// point a probability of 1.
type ECDF [][2]float64

// NewECDF computes the ECDF of a sample and compresses it to at most
// numPoints points with the Visvalingam-Whyatt algorithm.
func NewECDF(xs []float64, numPoints int) (ECDF, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("an ECDF requires at least two points, got %d", numPoints)
	}
	sorted := Sorted(xs)
	n := float64(len(sorted))

	ls := orb.LineString{}
	ls = append(ls, orb.Point{sorted[0], 0.0})
	for i, x := range sorted {
		// ties collapse to the last occurrence
		if i+1 < len(sorted) && sorted[i+1] == x {
			continue
		}
		ls = append(ls, orb.Point{x, float64(i+1) / n})
	}

	// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
	simplifier := simplify.VisvalingamKeep(numPoints)
	compressed := simplifier.Simplify(ls).(orb.LineString)
	ecdf := make(ECDF, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	if err := ecdf.Check(); err != nil {
		return nil, fmt.Errorf("cannot create valid ECDF from sample; %w", err)
	}
	return ecdf, nil
}

// Check tests whether the points describe a valid cumulative distribution.
func (f ECDF) Check() error {
	if len(f) < 2 {
		return fmt.Errorf("ECDF must have at least start and end point")
	}
	if f[0][1] != 0.0 {
		return fmt.Errorf("ECDF must start with probability 0, but starts with %v", f[0][1])
	}
	if last := len(f) - 1; f[last][1] != 1.0 {
		return fmt.Errorf("ECDF must end with probability 1, but ends with %v", f[last][1])
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i][0] > f[i+1][0] || f[i][1] > f[i+1][1] {
			return fmt.Errorf("ECDF points must be monotonically increasing, but point %v (%v,%v) is greater than point %v (%v,%v)",
				i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}

// CDF evaluates the piecewise linear function at x.
func (f ECDF) CDF(x float64) float64 {
	if x < f[0][0] {
		return 0.0
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i+1][0] > x {
			scale := (x - f[i][0]) / (f[i+1][0] - f[i][0])
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0
}

// Quantile evaluates the inverse of the piecewise linear function at p.
func (f ECDF) Quantile(p float64) float64 {
	if p <= 0.0 {
		return f[0][0]
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i+1][1] >= p {
			if f[i+1][1] == f[i][1] {
				return f[i][0]
			}
			scale := (p - f[i][1]) / (f[i+1][1] - f[i][1])
			return f[i][0] + scale*(f[i+1][0]-f[i][0])
		}
	}
	return f[len(f)-1][0]
}

// MaxDistance returns the largest absolute difference between the ECDF
// and a cumulative distribution function at the points of the ECDF.
func (f ECDF) MaxDistance(cdf func(x float64) float64) float64 {
	d := 0.0
	for _, p := range f {
		d = math.Max(d, math.Abs(p[1]-cdf(p[0])))
	}
	return d
}
