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

// Package input composes named marginals and an optional copula into a
// multivariate probabilistic input with its own random stream.
package input

import (
	"fmt"
	"math/rand"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
	"gonum.org/v1/gonum/mat"
)

// ProbInput is an ordered collection of marginals with an optional
// dependence structure. Each instance owns its generator; an instance must
// not be sampled concurrently without external synchronisation.
type ProbInput struct {
	name        string
	description string
	marginals   []*Marginal
	copula      Copula
	seed        int64
	rg          *rand.Rand
}

// config collects the optional arguments of New.
type config struct {
	name        string
	description string
	copula      Copula
	seed        *int64
}

// Option configures an input under construction.
type Option func(*config)

// WithSeed sets the seed of the random stream. Without a seed the stream
// is seeded from process entropy and runs are not reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithCopula couples the marginals by a dependence structure.
func WithCopula(copula Copula) Option {
	return func(c *config) {
		c.copula = copula
	}
}

// WithName names the input.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithInputDescription describes the input.
func WithInputDescription(description string) Option {
	return func(c *config) {
		c.description = description
	}
}

// New creates a multivariate input from at least one marginal.
func New(marginals []*Marginal, opts ...Option) (*ProbInput, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(marginals) == 0 {
		return nil, fmt.Errorf("%w: an input requires at least one marginal", distribution.ErrInvalidArgument)
	}
	for i, m := range marginals {
		if m == nil {
			return nil, fmt.Errorf("%w: marginal %d is nil", distribution.ErrInvalidArgument, i)
		}
	}
	if cfg.copula != nil && cfg.copula.Dim() != len(marginals) {
		return nil, fmt.Errorf("%w: copula of dimension %d for %d marginals",
			distribution.ErrInvalidArgument, cfg.copula.Dim(), len(marginals))
	}

	seed := sampling.NewSeed()
	if cfg.seed != nil {
		seed = *cfg.seed
	}
	ms := make([]*Marginal, len(marginals))
	copy(ms, marginals)

	return &ProbInput{
		name:        cfg.name,
		description: cfg.description,
		marginals:   ms,
		copula:      cfg.copula,
		seed:        seed,
		rg:          sampling.NewGenerator(seed),
	}, nil
}

// Canonical creates an input of independent uniform marginals X1..Xdim on
// [min, max].
func Canonical(dim int, min, max float64, opts ...Option) (*ProbInput, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d must be positive", distribution.ErrInvalidArgument, dim)
	}
	marginals := make([]*Marginal, dim)
	for i := range marginals {
		m, err := NewMarginal(fmt.Sprintf("X%d", i+1), distribution.UniformID, []float64{min, max})
		if err != nil {
			return nil, err
		}
		marginals[i] = m
	}
	return New(marginals, opts...)
}

// Name returns the name of the input.
func (p *ProbInput) Name() string {
	return p.name
}

// Description returns the description of the input.
func (p *ProbInput) Description() string {
	return p.description
}

// Dim returns the number of marginals.
func (p *ProbInput) Dim() int {
	return len(p.marginals)
}

// Marginal returns the i-th marginal.
func (p *ProbInput) Marginal(i int) *Marginal {
	return p.marginals[i]
}

// Marginals returns the marginals in order.
func (p *ProbInput) Marginals() []*Marginal {
	ms := make([]*Marginal, len(p.marginals))
	copy(ms, p.marginals)
	return ms
}

// Names returns the names of the marginals in order.
func (p *ProbInput) Names() []string {
	names := make([]string, len(p.marginals))
	for i, m := range p.marginals {
		names[i] = m.Name()
	}
	return names
}

// Copula returns the dependence structure or nil for independent marginals.
func (p *ProbInput) Copula() Copula {
	return p.copula
}

// Seed returns the seed of the random stream.
func (p *ProbInput) Seed() int64 {
	return p.seed
}

// quantilers returns the marginals as quantile functions.
func (p *ProbInput) quantilers() []sampling.Quantiler {
	qs := make([]sampling.Quantiler, len(p.marginals))
	for i, m := range p.marginals {
		qs[i] = m
	}
	return qs
}

// Sample draws an n-by-Dim matrix of realizations from the random stream.
func (p *ProbInput) Sample(n int) (*mat.Dense, error) {
	var dep sampling.Dependence
	if p.copula != nil {
		dep = p.copula
	}
	return sampling.Sample(p.rg, p.quantilers(), dep, n)
}

// Transform maps an n-by-Dim matrix of probabilities through the
// quantile functions of the marginals.
func (p *ProbInput) Transform(u *mat.Dense) (*mat.Dense, error) {
	return sampling.InverseTransform(u, p.quantilers())
}

// checkPoints checks the column count of an evaluation matrix.
func (p *ProbInput) checkPoints(points *mat.Dense) (int, error) {
	if points == nil || points.IsEmpty() {
		return 0, nil
	}
	n, m := points.Dims()
	if m != len(p.marginals) {
		return 0, fmt.Errorf("%w: points have %d columns, input has dimension %d",
			distribution.ErrInvalidArgument, m, len(p.marginals))
	}
	return n, nil
}

// CDF evaluates the cumulative distribution function of every marginal on
// the corresponding column of points.
func (p *ProbInput) CDF(points *mat.Dense) (*mat.Dense, error) {
	n, err := p.checkPoints(points)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	res := mat.NewDense(n, len(p.marginals), nil)
	col := make([]float64, n)
	for j, m := range p.marginals {
		mat.Col(col, j, points)
		res.SetCol(j, m.Probability(col))
	}
	return res, nil
}

// JointDensity evaluates the joint density on every row of points: the
// product of the marginal densities, times the copula density if present.
func (p *ProbInput) JointDensity(points *mat.Dense) ([]float64, error) {
	n, err := p.checkPoints(points)
	if err != nil {
		return nil, err
	}
	res := make([]float64, n)
	if n == 0 {
		return res, nil
	}
	for i := range res {
		res[i] = 1.0
	}
	col := make([]float64, n)
	for j, m := range p.marginals {
		mat.Col(col, j, points)
		for i, f := range m.Density(col) {
			res[i] *= f
		}
	}
	if p.copula == nil {
		return res, nil
	}
	probs, err := p.CDF(points)
	if err != nil {
		return nil, err
	}
	for i := range res {
		// copula density is not evaluated outside of the support
		if res[i] == 0.0 {
			continue
		}
		res[i] *= p.copula.Density(probs.RawRowView(i))
	}
	return res, nil
}
