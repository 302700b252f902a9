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
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// GoodnessOfFit is the outcome of comparing a sample with a distribution.
type GoodnessOfFit struct {
	Bins             int
	Statistic        float64 // Pearson's chi-squared statistic
	DegreesOfFreedom int
	PValue           float64
	KS               float64 // Kolmogorov-Smirnov distance
}

// Reject reports whether the fit is rejected at significance level alpha.
func (g GoodnessOfFit) Reject(alpha float64) bool {
	return g.PValue < alpha
}

// String prints the test outcome.
func (g GoodnessOfFit) String() string {
	return fmt.Sprintf("chi2=%.4f df=%d p=%.4f ks=%.5f", g.Statistic, g.DegreesOfFreedom, g.PValue, g.KS)
}

// Fit compares a sample with a cumulative distribution function. The
// sample is mapped through the function (probability integral transform)
// and counted in equiprobable bins; under the hypothesis the counts are
// uniform.
func Fit(xs []float64, cdf func(xs []float64) []float64, bins int) (GoodnessOfFit, error) {
	if len(xs) == 0 {
		return GoodnessOfFit{}, ErrEmptySample
	}
	if bins < 2 {
		return GoodnessOfFit{}, ErrTooFewBins
	}
	us := cdf(xs)
	if len(us) != len(xs) {
		return GoodnessOfFit{}, fmt.Errorf("distribution returned %d probabilities for %d values", len(us), len(xs))
	}

	counts := make([]float64, bins)
	for i, u := range us {
		if math.IsNaN(u) || u < 0.0 || u > 1.0 {
			return GoodnessOfFit{}, fmt.Errorf("probability %v of value %v outside of [0,1]", u, xs[i])
		}
		b := int(u * float64(bins))
		if b == bins {
			b--
		}
		counts[b]++
	}
	expected := float64(len(xs)) / float64(bins)
	chi2 := 0.0
	for _, c := range counts {
		chi2 += (c - expected) * (c - expected) / expected
	}
	df := bins - 1

	return GoodnessOfFit{
		Bins:             bins,
		Statistic:        chi2,
		DegreesOfFreedom: df,
		PValue:           distuv.ChiSquared{K: float64(df)}.Survival(chi2),
		KS:               ksDistance(us),
	}, nil
}

// ksDistance computes the Kolmogorov-Smirnov distance of probabilities
// to the standard-uniform distribution.
func ksDistance(us []float64) float64 {
	sorted := make([]float64, len(us))
	copy(sorted, us)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	d := 0.0
	for i, u := range sorted {
		d = math.Max(d, math.Max(float64(i+1)/n-u, u-float64(i)/n))
	}
	return d
}
