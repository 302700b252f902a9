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

package input

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
)

// Marginal is a named univariate random variable. It is validated at
// construction and immutable afterwards.
type Marginal struct {
	name        string
	description string
	kind        distribution.Kind
	dist        distribution.Distribution
	params      []float64
	lower       float64
	upper       float64
}

// marginalConfig collects the optional arguments of NewMarginal.
type marginalConfig struct {
	description string
	bounds      *[2]float64
}

// MarginalOption configures a marginal under construction.
type MarginalOption func(*marginalConfig)

// WithDescription attaches a description to a marginal.
func WithDescription(description string) MarginalOption {
	return func(c *marginalConfig) {
		c.description = description
	}
}

// WithBounds truncates a marginal to [lower, upper]. Only kinds with a
// truncated counterpart accept explicit bounds.
func WithBounds(lower, upper float64) MarginalOption {
	return func(c *marginalConfig) {
		c.bounds = &[2]float64{lower, upper}
	}
}

// NewMarginal creates a marginal of a given kind. The parameters are
// copied and verified; explicit bounds turn the kind into its truncated
// counterpart.
func NewMarginal(name string, kind distribution.Kind, params []float64, opts ...MarginalOption) (*Marginal, error) {
	var cfg marginalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !kind.IsValid() {
		return nil, fmt.Errorf("marginal %q: %w: %v", name, distribution.ErrUnknownDistributionKind, kind)
	}
	p := make([]float64, len(params))
	copy(p, params)

	if cfg.bounds != nil {
		var err error
		if kind, p, err = truncate(kind, p, cfg.bounds[0], cfg.bounds[1]); err != nil {
			return nil, fmt.Errorf("marginal %q: %w", name, err)
		}
	}

	dist, err := distribution.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("marginal %q: %w", name, err)
	}
	if err := dist.Verify(p); err != nil {
		return nil, fmt.Errorf("marginal %q: %w", name, err)
	}

	return &Marginal{
		name:        name,
		description: cfg.description,
		kind:        kind,
		dist:        dist,
		params:      p,
		lower:       dist.Lower(p),
		upper:       dist.Upper(p),
	}, nil
}

// truncate rewrites kind and parameters for explicit truncation bounds.
func truncate(kind distribution.Kind, p []float64, lower, upper float64) (distribution.Kind, []float64, error) {
	trunc, ok := kind.Truncated()
	if !ok {
		return kind, nil, fmt.Errorf("%w: %v distribution does not support explicit bounds", distribution.ErrInvalidArgument, kind)
	}
	// parameters of the untruncated kind, followed by the bounds
	base := p
	if trunc == kind {
		if len(p) < 2 {
			return kind, nil, fmt.Errorf("%w: %v distribution requires bounds among its parameters", distribution.ErrInvalidParameterCount, kind)
		}
		base = p[:len(p)-2]
	}
	res := make([]float64, 0, len(base)+2)
	res = append(res, base...)
	return trunc, append(res, lower, upper), nil
}

// Name returns the name of the marginal.
func (m *Marginal) Name() string {
	return m.name
}

// Description returns the description of the marginal.
func (m *Marginal) Description() string {
	return m.description
}

// Kind returns the distribution kind.
func (m *Marginal) Kind() distribution.Kind {
	return m.kind
}

// Parameters returns a copy of the parameter vector.
func (m *Marginal) Parameters() []float64 {
	p := make([]float64, len(m.params))
	copy(p, m.params)
	return p
}

// Lower returns the lower support bound.
func (m *Marginal) Lower() float64 {
	return m.lower
}

// Upper returns the upper support bound.
func (m *Marginal) Upper() float64 {
	return m.upper
}

// Density evaluates the probability density function.
func (m *Marginal) Density(xs []float64) []float64 {
	return m.dist.PDF(xs, m.params, m.lower, m.upper)
}

// Probability evaluates the cumulative distribution function.
func (m *Marginal) Probability(xs []float64) []float64 {
	return m.dist.CDF(xs, m.params, m.lower, m.upper)
}

// Quantile evaluates the inverse cumulative distribution function.
// Probabilities must lie in [0,1].
func (m *Marginal) Quantile(us []float64) ([]float64, error) {
	for i, u := range us {
		if math.IsNaN(u) || u < 0.0 || u > 1.0 {
			return nil, fmt.Errorf("%w: marginal %q: probability %v at index %d outside of [0,1]",
				distribution.ErrInvalidArgument, m.name, u, i)
		}
	}
	return m.dist.ICDF(us, m.params, m.lower, m.upper), nil
}

// Draw produces n variates by inverse-transform sampling from rg.
func (m *Marginal) Draw(n int, rg *rand.Rand) ([]float64, error) {
	return sampling.Draw(rg, m, n)
}

// String returns a short description of the marginal.
func (m *Marginal) String() string {
	return fmt.Sprintf("%v ~ %v%v on [%v, %v]", m.name, m.kind, m.params, m.lower, m.upper)
}
