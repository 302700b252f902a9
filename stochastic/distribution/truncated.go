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

// Truncated families share the parameter layout (location, scale, lower,
// upper). The location must lie strictly inside (lower, upper); a location
// equal to one of the bounds is rejected.

// univariate is the part of a gonum distribution needed for truncation.
type univariate interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
}

// truncatedPDF renormalises the base density by the mass on [lower, upper].
func truncatedPDF(d univariate, x, lower, upper float64) float64 {
	return d.Prob(x) / (d.CDF(upper) - d.CDF(lower))
}

// truncatedCDF rescales the base cumulative probability onto [lower, upper].
func truncatedCDF(d univariate, x, lower, upper float64) float64 {
	fl := d.CDF(lower)
	return (d.CDF(x) - fl) / (d.CDF(upper) - fl)
}

// truncatedICDF maps u onto the probability range [F(lower), F(upper)]
// of the base distribution before inverting it.
func truncatedICDF(d univariate, u, lower, upper float64) float64 {
	fl := d.CDF(lower)
	fu := d.CDF(upper)
	return d.Quantile(fl + u*(fu-fl))
}

// checkTruncated verifies scale, interval, and location of a truncated family.
func checkTruncated(scaleRole string, p []float64) error {
	if err := checkScale(scaleRole, p[1]); err != nil {
		return err
	}
	if err := checkInterval(p[2], p[3]); err != nil {
		return err
	}
	if p[0] <= p[2] || p[0] >= p[3] {
		return fmt.Errorf("location %v must lie strictly inside the bounds (%v, %v)", p[0], p[2], p[3])
	}
	return nil
}

// truncNormal is the normal distribution truncated to [lower, upper].
type truncNormal struct{}

func (truncNormal) roles() []string {
	return []string{"mean", "std", "lower", "upper"}
}

func (truncNormal) check(p []float64) error {
	return checkTruncated("standard deviation", p)
}

func (truncNormal) lower(p []float64) float64 {
	return p[2]
}

func (truncNormal) upper(p []float64) float64 {
	return p[3]
}

func (truncNormal) pdf(x float64, p []float64) float64 {
	return truncatedPDF(distuv.Normal{Mu: p[0], Sigma: p[1]}, x, p[2], p[3])
}

func (truncNormal) cdf(x float64, p []float64) float64 {
	return truncatedCDF(distuv.Normal{Mu: p[0], Sigma: p[1]}, x, p[2], p[3])
}

func (truncNormal) icdf(u float64, p []float64) float64 {
	return truncatedICDF(distuv.Normal{Mu: p[0], Sigma: p[1]}, u, p[2], p[3])
}

// truncGumbel is the Gumbel (maximum) distribution truncated to [lower, upper].
type truncGumbel struct{}

func (truncGumbel) roles() []string {
	return []string{"location", "scale", "lower", "upper"}
}

func (truncGumbel) check(p []float64) error {
	return checkTruncated("scale", p)
}

func (truncGumbel) lower(p []float64) float64 {
	return p[2]
}

func (truncGumbel) upper(p []float64) float64 {
	return p[3]
}

func (truncGumbel) pdf(x float64, p []float64) float64 {
	return truncatedPDF(distuv.GumbelRight{Mu: p[0], Beta: p[1]}, x, p[2], p[3])
}

func (truncGumbel) cdf(x float64, p []float64) float64 {
	return truncatedCDF(distuv.GumbelRight{Mu: p[0], Beta: p[1]}, x, p[2], p[3])
}

func (truncGumbel) icdf(u float64, p []float64) float64 {
	return truncatedICDF(distuv.GumbelRight{Mu: p[0], Beta: p[1]}, u, p[2], p[3])
}
