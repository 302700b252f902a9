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

	"github.com/Fantom-foundation/uqinput/stochastic/exponential"
	"gonum.org/v1/gonum/stat/distuv"
)

// exponentialFamily is the exponential distribution with a rate parameter.
type exponentialFamily struct{}

func (exponentialFamily) roles() []string {
	return []string{"rate"}
}

func (exponentialFamily) check(p []float64) error {
	return checkScale("rate", p[0])
}

func (exponentialFamily) lower([]float64) float64 {
	return 0.0
}

func (exponentialFamily) upper([]float64) float64 {
	return math.Inf(1)
}

func (exponentialFamily) pdf(x float64, p []float64) float64 {
	return distuv.Exponential{Rate: p[0]}.Prob(x)
}

func (exponentialFamily) cdf(x float64, p []float64) float64 {
	return distuv.Exponential{Rate: p[0]}.CDF(x)
}

func (exponentialFamily) icdf(u float64, p []float64) float64 {
	return distuv.Exponential{Rate: p[0]}.Quantile(u)
}

// truncExponential is the exponential distribution truncated to
// [lower, upper] with 0 <= lower < upper. The upper bound may be infinite.
type truncExponential struct{}

func (truncExponential) roles() []string {
	return []string{"rate", "lower", "upper"}
}

func (truncExponential) check(p []float64) error {
	if err := checkScale("rate", p[0]); err != nil {
		return err
	}
	if p[1] < 0.0 {
		return fmt.Errorf("lower bound %v must not be negative", p[1])
	}
	return checkInterval(p[1], p[2])
}

func (truncExponential) lower(p []float64) float64 {
	return p[1]
}

func (truncExponential) upper(p []float64) float64 {
	return p[2]
}

func (truncExponential) pdf(x float64, p []float64) float64 {
	return exponential.Pdf(p[0], x, p[1], p[2])
}

func (truncExponential) cdf(x float64, p []float64) float64 {
	return exponential.Cdf(p[0], x, p[1], p[2])
}

func (truncExponential) icdf(u float64, p []float64) float64 {
	return exponential.Quantile(p[0], u, p[1], p[2])
}
