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
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// gumbel is the Gumbel (maximum) distribution with location and scale.
type gumbel struct{}

func (gumbel) roles() []string {
	return []string{"location", "scale"}
}

func (gumbel) check(p []float64) error {
	return checkScale("scale", p[1])
}

func (gumbel) lower([]float64) float64 {
	return math.Inf(-1)
}

func (gumbel) upper([]float64) float64 {
	return math.Inf(1)
}

func (gumbel) pdf(x float64, p []float64) float64 {
	return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.Prob(x)
}

func (gumbel) cdf(x float64, p []float64) float64 {
	return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.CDF(x)
}

func (gumbel) icdf(u float64, p []float64) float64 {
	return distuv.GumbelRight{Mu: p[0], Beta: p[1]}.Quantile(u)
}
