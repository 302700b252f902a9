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

// triangular is the triangular distribution on [min, max] with a mode.
type triangular struct{}

func (triangular) roles() []string {
	return []string{"min", "max", "mode"}
}

func (triangular) check(p []float64) error {
	if err := checkFiniteInterval(p[0], p[1]); err != nil {
		return err
	}
	if p[2] < p[0] || p[2] > p[1] {
		return fmt.Errorf("mode %v must lie inside the bounds [%v, %v]", p[2], p[0], p[1])
	}
	return nil
}

func (triangular) lower(p []float64) float64 {
	return p[0]
}

func (triangular) upper(p []float64) float64 {
	return p[1]
}

func (triangular) pdf(x float64, p []float64) float64 {
	return distuv.NewTriangle(p[0], p[1], p[2], nil).Prob(x)
}

func (triangular) cdf(x float64, p []float64) float64 {
	return distuv.NewTriangle(p[0], p[1], p[2], nil).CDF(x)
}

func (triangular) icdf(u float64, p []float64) float64 {
	return distuv.NewTriangle(p[0], p[1], p[2], nil).Quantile(u)
}
