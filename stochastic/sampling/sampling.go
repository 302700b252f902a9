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

// Package sampling implements inverse-transform sampling. Standard-uniform
// variates are drawn from an explicitly owned generator, optionally coupled
// by a dependence structure, and mapped through the quantile function of
// each dimension. This is the only code path producing random variates.
package sampling

import (
	"fmt"
	"math/rand"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"gonum.org/v1/gonum/mat"
)

// Quantiler is a univariate random variable with an inverse CDF.
type Quantiler interface {
	Quantile(us []float64) ([]float64, error)
}

// Dependence couples independent standard-uniform rows into dependent
// ones while keeping every column standard-uniform.
type Dependence interface {
	Dim() int
	Transform(u *mat.Dense) error
}

// NewSeed returns a seed from the process entropy. Streams seeded with it
// are not reproducible unless the seed is recorded.
func NewSeed() int64 {
	return rand.Int63()
}

// NewGenerator creates a generator with its own source.
func NewGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a standard-uniform variate from the open interval (0,1).
func Uniform(rg *rand.Rand) float64 {
	for {
		if u := rg.Float64(); u > 0.0 {
			return u
		}
	}
}

// Uniforms draws n standard-uniform variates.
func Uniforms(rg *rand.Rand, n int) []float64 {
	us := make([]float64, n)
	for i := range us {
		us[i] = Uniform(rg)
	}
	return us
}

// UniformMatrix draws an n-by-m matrix of independent standard-uniform
// variates. Columns are filled one after another.
func UniformMatrix(rg *rand.Rand, n, m int) *mat.Dense {
	u := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			u.Set(i, j, Uniform(rg))
		}
	}
	return u
}

// Draw produces n variates of a single random variable.
func Draw(rg *rand.Rand, q Quantiler, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", distribution.ErrInvalidArgument, n)
	}
	if n == 0 {
		return []float64{}, nil
	}
	return q.Quantile(Uniforms(rg, n))
}

// InverseTransform maps every column j of u through the quantile function
// of qs[j]. The matrix u is not modified.
func InverseTransform(u *mat.Dense, qs []Quantiler) (*mat.Dense, error) {
	n, m := u.Dims()
	if m != len(qs) {
		return nil, fmt.Errorf("%w: matrix has %d columns, expected %d", distribution.ErrInvalidArgument, m, len(qs))
	}
	x := mat.NewDense(n, m, nil)
	col := make([]float64, n)
	for j, q := range qs {
		mat.Col(col, j, u)
		xs, err := q.Quantile(col)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", j, err)
		}
		x.SetCol(j, xs)
	}
	return x, nil
}

// Sample draws an n-by-len(qs) matrix of variates. If dep is not nil, the
// uniform rows are coupled before they are transformed.
func Sample(rg *rand.Rand, qs []Quantiler, dep Dependence, n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", distribution.ErrInvalidArgument, n)
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: no dimensions to sample", distribution.ErrInvalidArgument)
	}
	if dep != nil && dep.Dim() != len(qs) {
		return nil, fmt.Errorf("%w: dependence of dimension %d for %d dimensions", distribution.ErrInvalidArgument, dep.Dim(), len(qs))
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	u := UniformMatrix(rg, n, len(qs))
	if dep != nil {
		if err := dep.Transform(u); err != nil {
			return nil, err
		}
	}
	return InverseTransform(u, qs)
}
