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

// logitNormal is the distribution of a random variable whose logit is
// normally distributed. The support is fixed to [0, 1].
type logitNormal struct{}

func (logitNormal) roles() []string {
	return []string{"mu", "sigma"}
}

func (logitNormal) check(p []float64) error {
	return checkScale("standard deviation", p[1])
}

func (logitNormal) lower([]float64) float64 {
	return 0.0
}

func (logitNormal) upper([]float64) float64 {
	return 1.0
}

// pdf applies the Jacobian 1/(x(1-x)) of the logit transform. The point x
// lies strictly inside (0,1) so the Jacobian is finite.
func (logitNormal) pdf(x float64, p []float64) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.Prob(logit(x)) / (x * (1.0 - x))
}

func (logitNormal) cdf(x float64, p []float64) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.CDF(logit(x))
}

func (logitNormal) icdf(u float64, p []float64) float64 {
	return logistic(distuv.Normal{Mu: p[0], Sigma: p[1]}.Quantile(u))
}

// logit maps (0,1) onto the real line.
func logit(x float64) float64 {
	return math.Log(x / (1.0 - x))
}

// logistic is the inverse of logit.
func logistic(t float64) float64 {
	if t >= 0 {
		return 1.0 / (1.0 + math.Exp(-t))
	}
	e := math.Exp(t)
	return e / (1.0 + e)
}
