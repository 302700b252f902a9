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

// Package mixture produces coefficients from a two-component Gaussian
// mixture. The coefficients feed the basis terms of generated benchmarks.
package mixture

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultPhi is the default weight of component 0.
const DefaultPhi = 0.7

// Default standard deviations of the components.
var (
	DefaultSigma0 = math.Sqrt(0.5)
	DefaultSigma1 = math.Sqrt(5.0)
)

// GaussianMixture is a mixture of two normal components. Component 0 is
// selected with probability Phi, component 1 with probability 1-Phi.
type GaussianMixture struct {
	Phi    float64 // weight of component 0
	Mu0    float64 // mean of component 0
	Sigma0 float64 // standard deviation of component 0
	Mu1    float64 // mean of component 1
	Sigma1 float64 // standard deviation of component 1
}

// Default returns the mixture with weight 0.7, zero means, and standard
// deviations sqrt(0.5) and sqrt(5).
func Default() GaussianMixture {
	return GaussianMixture{
		Phi:    DefaultPhi,
		Sigma0: DefaultSigma0,
		Sigma1: DefaultSigma1,
	}
}

// Validate checks the mixture coefficients.
func (g GaussianMixture) Validate() error {
	if math.IsNaN(g.Phi) || g.Phi < 0.0 || g.Phi > 1.0 {
		return fmt.Errorf("%w: mixture weight %v outside of [0,1]", distribution.ErrInvalidParameterValue, g.Phi)
	}
	for i, sigma := range []float64{g.Sigma0, g.Sigma1} {
		if !(sigma > 0.0) || math.IsInf(sigma, 0) {
			return fmt.Errorf("%w: standard deviation %v of component %d must be positive and finite", distribution.ErrInvalidParameterValue, sigma, i)
		}
	}
	for i, mu := range []float64{g.Mu0, g.Mu1} {
		if math.IsNaN(mu) || math.IsInf(mu, 0) {
			return fmt.Errorf("%w: mean %v of component %d must be finite", distribution.ErrInvalidParameterValue, mu, i)
		}
	}
	return nil
}

// components returns the two normal components.
func (g GaussianMixture) components() [2]distuv.Normal {
	return [2]distuv.Normal{
		{Mu: g.Mu0, Sigma: g.Sigma0},
		{Mu: g.Mu1, Sigma: g.Sigma1},
	}
}

// Generate draws n coefficients from rg.
func (g GaussianMixture) Generate(rg *rand.Rand, n int) ([]float64, error) {
	values, _, err := g.GenerateWithComponents(rg, n)
	return values, err
}

// GenerateWithComponents draws n coefficients from rg and reports the
// component every coefficient was drawn from. For each coefficient a
// weighted coin selects the component, and a second uniform is mapped
// through the quantile function of that component.
func (g GaussianMixture) GenerateWithComponents(rg *rand.Rand, n int) ([]float64, []int, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: negative number of coefficients %d", distribution.ErrInvalidArgument, n)
	}
	cs := g.components()
	values := make([]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		if rg.Float64() >= g.Phi {
			labels[i] = 1
		}
		values[i] = cs[labels[i]].Quantile(sampling.Uniform(rg))
	}
	return values, labels, nil
}

// Prob evaluates the mixture density at x.
func (g GaussianMixture) Prob(x float64) float64 {
	cs := g.components()
	return g.Phi*cs[0].Prob(x) + (1.0-g.Phi)*cs[1].Prob(x)
}

// CDF evaluates the mixture cumulative probability at x.
func (g GaussianMixture) CDF(x float64) float64 {
	cs := g.components()
	return g.Phi*cs[0].CDF(x) + (1.0-g.Phi)*cs[1].CDF(x)
}

// Variance returns the variance of the mixture.
func (g GaussianMixture) Variance() float64 {
	mean := g.Phi*g.Mu0 + (1.0-g.Phi)*g.Mu1
	second := g.Phi*(g.Sigma0*g.Sigma0+g.Mu0*g.Mu0) + (1.0-g.Phi)*(g.Sigma1*g.Sigma1+g.Mu1*g.Mu1)
	return second - mean*mean
}

// Fraction returns the share of coefficients drawn from component c.
func Fraction(labels []int, c int) float64 {
	if len(labels) == 0 {
		return 0.0
	}
	count := 0
	for _, l := range labels {
		if l == c {
			count++
		}
	}
	return float64(count) / float64(len(labels))
}
