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

	"gonum.org/v1/gonum/stat/distuv"
)

// beta is the four-parameter beta distribution, i.e., a standard beta
// distribution with shapes alpha and beta scaled onto [lower, upper].
type beta struct{}

func (beta) roles() []string {
	return []string{"alpha", "beta", "lower", "upper"}
}

func (beta) check(p []float64) error {
	if p[0] <= 0.0 {
		return fmt.Errorf("shape alpha must be strictly positive, got %v", p[0])
	}
	if p[1] <= 0.0 {
		return fmt.Errorf("shape beta must be strictly positive, got %v", p[1])
	}
	return checkFiniteInterval(p[2], p[3])
}

func (beta) lower(p []float64) float64 {
	return p[2]
}

func (beta) upper(p []float64) float64 {
	return p[3]
}

func (beta) pdf(x float64, p []float64) float64 {
	width := p[3] - p[2]
	return distuv.Beta{Alpha: p[0], Beta: p[1]}.Prob((x-p[2])/width) / width
}

func (beta) cdf(x float64, p []float64) float64 {
	return distuv.Beta{Alpha: p[0], Beta: p[1]}.CDF((x - p[2]) / (p[3] - p[2]))
}

func (beta) icdf(u float64, p []float64) float64 {
	return p[2] + (p[3]-p[2])*distuv.Beta{Alpha: p[0], Beta: p[1]}.Quantile(u)
}
