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

package mixture

import (
	"errors"
	"math"
	"testing"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
)

// TestMixture_ComponentFraction checks the share of the second component.
func TestMixture_ComponentFraction(t *testing.T) {
	n := 1000000
	values, labels, err := Default().GenerateWithComponents(sampling.NewGenerator(1), n)
	if err != nil {
		t.Fatalf("failed to generate coefficients. Error: %v", err)
	}
	if len(values) != n || len(labels) != n {
		t.Fatalf("expected %d coefficients, got %d values and %d labels", n, len(values), len(labels))
	}
	if f := Fraction(labels, 1); math.Abs(f-0.3) > 0.01 {
		t.Fatalf("component fraction %v deviates from 0.3", f)
	}
	// mixture variance: 0.7 * 0.5 + 0.3 * 5
	if v := stat.Variance(values, nil); math.Abs(v-1.85) > 0.02 {
		t.Fatalf("sample variance %v deviates from 1.85", v)
	}
}

// TestMixture_Count checks that the number of coefficients is preserved.
func TestMixture_Count(t *testing.T) {
	rg := sampling.NewGenerator(2)
	for _, n := range []int{0, 1, 7, 1000} {
		values, err := Default().Generate(rg, n)
		if err != nil {
			t.Fatalf("failed to generate coefficients. Error: %v", err)
		}
		if len(values) != n {
			t.Fatalf("expected %d coefficients, got %d", n, len(values))
		}
	}
	if _, err := Default().Generate(rg, -1); !errors.Is(err, distribution.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for a negative count, got %v", err)
	}
}

// TestMixture_Reproducible checks that the same generator seed yields
// the same coefficients.
func TestMixture_Reproducible(t *testing.T) {
	a, err := Default().Generate(sampling.NewGenerator(99), 100)
	if err != nil {
		t.Fatalf("failed to generate coefficients. Error: %v", err)
	}
	b, err := Default().Generate(sampling.NewGenerator(99), 100)
	if err != nil {
		t.Fatalf("failed to generate coefficients. Error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("coefficient %d differs: %v != %v", i, a[i], b[i])
		}
	}
}

// TestMixture_Degenerate checks mixtures with a single active component.
func TestMixture_Degenerate(t *testing.T) {
	rg := sampling.NewGenerator(3)
	for _, phi := range []float64{0.0, 1.0} {
		g := Default()
		g.Phi = phi
		_, labels, err := g.GenerateWithComponents(rg, 1000)
		if err != nil {
			t.Fatalf("failed to generate coefficients. Error: %v", err)
		}
		want := 0
		if phi == 0.0 {
			want = 1
		}
		if f := Fraction(labels, want); f != 1.0 {
			t.Fatalf("expected all coefficients from component %d, got fraction %v", want, f)
		}
	}
}

// TestMixture_Validate checks invalid coefficients.
func TestMixture_Validate(t *testing.T) {
	invalid := []GaussianMixture{
		{Phi: -0.1, Sigma0: 1, Sigma1: 1},
		{Phi: 1.1, Sigma0: 1, Sigma1: 1},
		{Phi: math.NaN(), Sigma0: 1, Sigma1: 1},
		{Phi: 0.5, Sigma0: 0, Sigma1: 1},
		{Phi: 0.5, Sigma0: 1, Sigma1: math.Inf(1)},
		{Phi: 0.5, Mu1: math.NaN(), Sigma0: 1, Sigma1: 1},
	}
	for _, g := range invalid {
		if _, err := g.Generate(sampling.NewGenerator(1), 1); !errors.Is(err, distribution.ErrInvalidParameterValue) {
			t.Fatalf("expected invalid parameter value for %+v, got %v", g, err)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default mixture is invalid. Error: %v", err)
	}
}

// TestMixture_Density checks that the mixture density integrates to one.
func TestMixture_Density(t *testing.T) {
	g := Default()
	if v := quad.Fixed(g.Prob, -50, 50, 2000, nil, 0); math.Abs(v-1.0) > 1e-6 {
		t.Fatalf("mixture density integrates to %v", v)
	}
	if c := g.CDF(0.0); math.Abs(c-0.5) > 1e-12 {
		t.Fatalf("mixture median is not zero, CDF(0) = %v", c)
	}
	if v := g.Variance(); math.Abs(v-1.85) > 1e-12 {
		t.Fatalf("unexpected mixture variance %v", v)
	}
}
