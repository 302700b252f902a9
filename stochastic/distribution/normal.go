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

package distribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// normal is the Gaussian distribution parameterised by mean and standard deviation.
type normal struct{}

func (normal) roles() []string {
	return []string{"mean", "std"}
}

func (normal) check(p []float64) error {
	return checkScale("standard deviation", p[1])
}

func (normal) lower([]float64) float64 {
	return math.Inf(-1)
}

func (normal) upper([]float64) float64 {
	return math.Inf(1)
}

func (normal) pdf(x float64, p []float64) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.Prob(x)
}

func (normal) cdf(x float64, p []float64) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.CDF(x)
}

func (normal) icdf(u float64, p []float64) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.Quantile(u)
}

// logNormal is the distribution of exp(Y) for a normally distributed Y
// with mean mu and standard deviation sigma.
type logNormal struct{}

func (logNormal) roles() []string {
	return []string{"mu", "sigma"}
}

func (logNormal) check(p []float64) error {
	return checkScale("standard deviation", p[1])
}

func (logNormal) lower([]float64) float64 {
	return 0.0
}

func (logNormal) upper([]float64) float64 {
	return math.Inf(1)
}

func (logNormal) pdf(x float64, p []float64) float64 {
	return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.Prob(x)
}

func (logNormal) cdf(x float64, p []float64) float64 {
	return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.CDF(x)
}

func (logNormal) icdf(u float64, p []float64) float64 {
	return distuv.LogNormal{Mu: p[0], Sigma: p[1]}.Quantile(u)
}

// checkScale checks that a scale parameter is strictly positive and finite.
func checkScale(role string, v float64) error {
	if v <= 0.0 || math.IsInf(v, 1) {
		return fmt.Errorf("%v must be strictly positive and finite, got %v", role, v)
	}
	return nil
}

// checkFiniteInterval checks that lower < upper and both bounds are finite.
func checkFiniteInterval(lower, upper float64) error {
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("bounds [%v, %v] must be finite", lower, upper)
	}
	return checkInterval(lower, upper)
}

// checkInterval checks that lower < upper.
func checkInterval(lower, upper float64) error {
	if lower >= upper {
		return fmt.Errorf("lower bound %v must be smaller than upper bound %v", lower, upper)
	}
	return nil
}
