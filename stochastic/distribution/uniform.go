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
	"gonum.org/v1/gonum/stat/distuv"
)

// uniform is the continuous uniform distribution on [min, max].
type uniform struct{}

func (uniform) roles() []string {
	return []string{"min", "max"}
}

func (uniform) check(p []float64) error {
	return checkFiniteInterval(p[0], p[1])
}

func (uniform) lower(p []float64) float64 {
	return p[0]
}

func (uniform) upper(p []float64) float64 {
	return p[1]
}

func (uniform) pdf(x float64, p []float64) float64 {
	return distuv.Uniform{Min: p[0], Max: p[1]}.Prob(x)
}

func (uniform) cdf(x float64, p []float64) float64 {
	return distuv.Uniform{Min: p[0], Max: p[1]}.CDF(x)
}

func (uniform) icdf(u float64, p []float64) float64 {
	return distuv.Uniform{Min: p[0], Max: p[1]}.Quantile(u)
}
