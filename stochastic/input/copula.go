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

//go:generate mockgen -source copula.go -destination copula_mocks.go -package input

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Copula is a dependence structure between the marginals of an input.
type Copula interface {
	// Dim returns the number of coupled dimensions.
	Dim() int
	// Transform replaces the independent standard-uniform rows of u by
	// dependent ones in place. Every column stays standard-uniform.
	Transform(u *mat.Dense) error
	// Density evaluates the copula density at a point of the unit cube.
	Density(u []float64) float64
}

// correlationEps is the tolerance for the unit diagonal of a correlation matrix.
const correlationEps = 1e-12

// GaussianCopula couples uniforms through a multivariate normal
// distribution with a given correlation matrix.
type GaussianCopula struct {
	dim  int
	corr [][]float64    // correlation matrix
	chol mat.TriDense   // lower Cholesky factor of the correlation matrix
	mvn  *distmv.Normal // standard multivariate normal with the correlation as covariance
}

// NewGaussianCopula creates a Gaussian copula. The correlation matrix must
// be symmetric with a unit diagonal and positive definite.
func NewGaussianCopula(corr [][]float64) (*GaussianCopula, error) {
	n := len(corr)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty correlation matrix", distribution.ErrInvalidArgument)
	}
	for _, row := range corr {
		if len(row) != n {
			return nil, fmt.Errorf("%w: correlation matrix is not square", distribution.ErrInvalidArgument)
		}
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if math.Abs(corr[i][i]-1.0) > correlationEps {
			return nil, fmt.Errorf("%w: correlation matrix has diagonal entry %v at %d", distribution.ErrInvalidArgument, corr[i][i], i)
		}
		for j := 0; j < n; j++ {
			if corr[i][j] != corr[j][i] {
				return nil, fmt.Errorf("%w: correlation matrix is not symmetric at (%d,%d)", distribution.ErrInvalidArgument, i, j)
			}
			if math.IsNaN(corr[i][j]) || corr[i][j] < -1.0 || corr[i][j] > 1.0 {
				return nil, fmt.Errorf("%w: correlation %v at (%d,%d) outside of [-1,1]", distribution.ErrInvalidArgument, corr[i][j], i, j)
			}
		}
		for j := i; j < n; j++ {
			sym.SetSym(i, j, corr[i][j])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: correlation matrix is not positive definite", distribution.ErrInvalidArgument)
	}
	mvn, ok := distmv.NewNormal(make([]float64, n), sym, nil)
	if !ok {
		return nil, fmt.Errorf("%w: correlation matrix is not positive definite", distribution.ErrInvalidArgument)
	}

	c := &GaussianCopula{dim: n, corr: make([][]float64, n), mvn: mvn}
	for i := range corr {
		c.corr[i] = make([]float64, n)
		copy(c.corr[i], corr[i])
	}
	chol.LTo(&c.chol)
	return c, nil
}

// Dim returns the number of coupled dimensions.
func (c *GaussianCopula) Dim() int {
	return c.dim
}

// Correlation returns a copy of the correlation matrix.
func (c *GaussianCopula) Correlation() [][]float64 {
	res := make([][]float64, c.dim)
	for i := range c.corr {
		res[i] = make([]float64, c.dim)
		copy(res[i], c.corr[i])
	}
	return res
}

// Transform maps uniforms to standard normals, correlates them with the
// Cholesky factor, and maps them back to uniforms.
func (c *GaussianCopula) Transform(u *mat.Dense) error {
	n, m := u.Dims()
	if m != c.dim {
		return fmt.Errorf("%w: matrix has %d columns, copula has dimension %d", distribution.ErrInvalidArgument, m, c.dim)
	}
	z := make([]float64, m)
	for i := 0; i < n; i++ {
		row := u.RawRowView(i)
		for j, v := range row {
			if !(v > 0.0 && v < 1.0) {
				return fmt.Errorf("%w: uniform %v at (%d,%d) outside of (0,1)", distribution.ErrInvalidArgument, v, i, j)
			}
			z[j] = distuv.UnitNormal.Quantile(v)
		}
		for j := 0; j < m; j++ {
			y := 0.0
			for k := 0; k <= j; k++ {
				y += c.chol.At(j, k) * z[k]
			}
			row[j] = distuv.UnitNormal.CDF(y)
		}
	}
	return nil
}

// Density evaluates the Gaussian copula density. Points on the boundary
// of the unit cube have a density of zero.
func (c *GaussianCopula) Density(u []float64) float64 {
	if len(u) != c.dim {
		return math.NaN()
	}
	z := make([]float64, len(u))
	independent := 0.0
	for j, v := range u {
		if !(v > 0.0 && v < 1.0) {
			return 0.0
		}
		z[j] = distuv.UnitNormal.Quantile(v)
		independent += distuv.UnitNormal.LogProb(z[j])
	}
	return math.Exp(c.mvn.LogProb(z) - independent)
}
