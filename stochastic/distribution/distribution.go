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
)

// Distribution is the capability shared by every family of the catalog.
// All operations are pure and evaluate element-wise over sample points.
// The evaluation functions expect parameters that passed Verify and the
// bounds returned by Lower and Upper (or explicit truncation bounds).
type Distribution interface {
	// Kind returns the family identifier.
	Kind() Kind
	// NumParameters returns the arity of the parameter vector.
	NumParameters() int
	// Roles names the parameters in order.
	Roles() []string

	// Verify checks the arity and the numeric constraints of parameters.
	Verify(params []float64) error
	// Lower returns the lower support bound derived from the parameters.
	Lower(params []float64) float64
	// Upper returns the upper support bound derived from the parameters.
	Upper(params []float64) float64

	// PDF evaluates the density. Points outside the open support
	// interval have a density of zero.
	PDF(xs, params []float64, lower, upper float64) []float64
	// CDF evaluates the cumulative probability. Points at or below the
	// lower bound map to 0, points at or above the upper bound map to 1.
	CDF(xs, params []float64, lower, upper float64) []float64
	// ICDF evaluates the inverse cumulative probability. A probability
	// of 0 maps to lower, a probability of 1 maps to upper, and values
	// outside [0,1] map to NaN.
	ICDF(us, params []float64, lower, upper float64) []float64
}

// family is the scalar contract of a distribution family. The functions
// pdf, cdf, and icdf are only called for points strictly inside the
// support and probabilities strictly inside (0,1), respectively.
type family interface {
	roles() []string
	check(p []float64) error
	lower(p []float64) float64
	upper(p []float64) float64
	pdf(x float64, p []float64) float64
	cdf(x float64, p []float64) float64
	icdf(u float64, p []float64) float64
}

// registry maps every kind to its implementation.
var registry = [NumKinds]Distribution{
	UniformID:          &distribution{UniformID, uniform{}},
	NormalID:           &distribution{NormalID, normal{}},
	LogNormalID:        &distribution{LogNormalID, logNormal{}},
	BetaID:             &distribution{BetaID, beta{}},
	GumbelID:           &distribution{GumbelID, gumbel{}},
	TruncNormalID:      &distribution{TruncNormalID, truncNormal{}},
	TruncGumbelID:      &distribution{TruncGumbelID, truncGumbel{}},
	LogitNormalID:      &distribution{LogitNormalID, logitNormal{}},
	ExponentialID:      &distribution{ExponentialID, exponentialFamily{}},
	TruncExponentialID: &distribution{TruncExponentialID, truncExponential{}},
	TriangularID:       &distribution{TriangularID, triangular{}},
}

// Lookup returns the implementation of a kind.
func Lookup(k Kind) (Distribution, error) {
	if !k.IsValid() || registry[k] == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDistributionKind, k)
	}
	return registry[k], nil
}

// distribution lifts a scalar family to the vectorised Distribution
// contract and enforces the saturation rules at the support bounds.
type distribution struct {
	kind Kind
	f    family
}

func (d *distribution) Kind() Kind {
	return d.kind
}

func (d *distribution) NumParameters() int {
	return len(d.f.roles())
}

func (d *distribution) Roles() []string {
	roles := d.f.roles()
	res := make([]string, len(roles))
	copy(res, roles)
	return res
}

// Verify checks the arity first and the family-specific constraints second.
func (d *distribution) Verify(params []float64) error {
	if n := d.NumParameters(); len(params) != n {
		return fmt.Errorf("%w: %v distribution requires %d parameters (%v), got %d",
			ErrInvalidParameterCount, d.kind, n, d.f.roles(), len(params))
	}
	for i, p := range params {
		if math.IsNaN(p) {
			return fmt.Errorf("%w: %v parameter %v is NaN", ErrInvalidParameterValue, d.kind, d.f.roles()[i])
		}
	}
	if err := d.f.check(params); err != nil {
		return fmt.Errorf("%w: %v distribution: %v", ErrInvalidParameterValue, d.kind, err)
	}
	return nil
}

func (d *distribution) Lower(params []float64) float64 {
	return d.f.lower(params)
}

func (d *distribution) Upper(params []float64) float64 {
	return d.f.upper(params)
}

func (d *distribution) PDF(xs, params []float64, lower, upper float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case math.IsNaN(x):
			res[i] = math.NaN()
		case x <= lower || x >= upper:
			res[i] = 0.0
		default:
			res[i] = d.f.pdf(x, params)
		}
	}
	return res
}

func (d *distribution) CDF(xs, params []float64, lower, upper float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case math.IsNaN(x):
			res[i] = math.NaN()
		case x <= lower:
			res[i] = 0.0
		case x >= upper:
			res[i] = 1.0
		default:
			res[i] = clamp(d.f.cdf(x, params), 0.0, 1.0)
		}
	}
	return res
}

func (d *distribution) ICDF(us, params []float64, lower, upper float64) []float64 {
	res := make([]float64, len(us))
	for i, u := range us {
		switch {
		case math.IsNaN(u) || u < 0.0 || u > 1.0:
			res[i] = math.NaN()
		case u == 0.0:
			res[i] = lower
		case u == 1.0:
			res[i] = upper
		default:
			res[i] = clamp(d.f.icdf(u, params), lower, upper)
		}
	}
	return res
}

// clamp restricts x to the closed interval [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
