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
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestMarginal_WrongParameterCount checks the failure for a wrong arity.
func TestMarginal_WrongParameterCount(t *testing.T) {
	// a truncated Gumbel distribution expects 4 parameters, not 5
	_, err := NewMarginal("X", distribution.TruncGumbelID, []float64{0.1, 0.2, 0.3, 0.4, 0.5})
	if !errors.Is(err, distribution.ErrInvalidParameterCount) {
		t.Fatalf("expected parameter count error, got %v", err)
	}
	_, err = NewMarginal("X", distribution.NormalID, []float64{0.0})
	if !errors.Is(err, distribution.ErrInvalidParameterCount) {
		t.Fatalf("expected parameter count error, got %v", err)
	}
}

// TestMarginal_InvalidParameterValue checks the numeric constraints.
func TestMarginal_InvalidParameterValue(t *testing.T) {
	tests := []struct {
		kind   distribution.Kind
		params []float64
	}{
		{distribution.TruncGumbelID, []float64{7.71, -5.0, 0.0, 10.0}}, // negative scale
		{distribution.TruncGumbelID, []float64{7.71, 0.5, 0.0, 5.0}},   // location outside
		{distribution.TruncGumbelID, []float64{2.71, 0.5, 5.0, 0.0}},   // reversed bounds
		{distribution.NormalID, []float64{0.0, 0.0}},                   // zero std
		{distribution.UniformID, []float64{1.0, 0.0}},                  // reversed bounds
	}
	for _, test := range tests {
		if _, err := NewMarginal("X", test.kind, test.params); !errors.Is(err, distribution.ErrInvalidParameterValue) {
			t.Fatalf("%v%v: expected parameter value error, got %v", test.kind, test.params, err)
		}
	}
}

// TestMarginal_ExplicitBounds checks truncation by explicit bounds.
func TestMarginal_ExplicitBounds(t *testing.T) {
	m, err := NewMarginal("X", distribution.NormalID, []float64{0.5, 0.15}, WithBounds(0.0, 1.0))
	if err != nil {
		t.Fatalf("failed to create truncated marginal. Error: %v", err)
	}
	if m.Kind() != distribution.TruncNormalID {
		t.Fatalf("expected kind %v, got %v", distribution.TruncNormalID, m.Kind())
	}
	if m.Lower() != 0.0 || m.Upper() != 1.0 {
		t.Fatalf("unexpected bounds [%v, %v]", m.Lower(), m.Upper())
	}

	// re-truncating a truncated kind replaces its bounds
	m, err = NewMarginal("X", distribution.TruncGumbelID, []float64{2.71, 0.5, 0.0, 5.0}, WithBounds(1.0, 4.0))
	if err != nil {
		t.Fatalf("failed to re-truncate marginal. Error: %v", err)
	}
	if p := m.Parameters(); p[2] != 1.0 || p[3] != 4.0 || len(p) != 4 {
		t.Fatalf("unexpected parameters %v", p)
	}

	if _, err := NewMarginal("X", distribution.UniformID, []float64{0.0, 1.0}, WithBounds(0.2, 0.8)); !errors.Is(err, distribution.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for bounds on a uniform marginal, got %v", err)
	}
	if _, err := NewMarginal("X", distribution.NormalID, []float64{5.0, 1.0}, WithBounds(0.0, 1.0)); !errors.Is(err, distribution.ErrInvalidParameterValue) {
		t.Fatalf("expected parameter value error for a mean outside of the bounds, got %v", err)
	}
}

// TestMarginal_UnknownKind checks that a kind outside of the catalog is
// reported as unknown with and without explicit bounds.
func TestMarginal_UnknownKind(t *testing.T) {
	kind := distribution.Kind(99)
	if _, err := NewMarginal("X", kind, []float64{0.0, 1.0}); !errors.Is(err, distribution.ErrUnknownDistributionKind) {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
	_, err := NewMarginal("X", kind, []float64{0.0, 1.0}, WithBounds(0.0, 1.0))
	if !errors.Is(err, distribution.ErrUnknownDistributionKind) {
		t.Fatalf("expected unknown kind error for explicit bounds, got %v", err)
	}
	if errors.Is(err, distribution.ErrInvalidArgument) {
		t.Fatalf("unexpected invalid argument error %v", err)
	}
}

// TestMarginal_Immutable checks that the parameters are copied.
func TestMarginal_Immutable(t *testing.T) {
	params := []float64{0.0, 1.0}
	m, err := NewMarginal("X", distribution.UniformID, params, WithDescription("unit"))
	if err != nil {
		t.Fatalf("failed to create marginal. Error: %v", err)
	}
	params[1] = 100.0
	p := m.Parameters()
	p[0] = -100.0
	if got := m.Parameters(); got[0] != 0.0 || got[1] != 1.0 {
		t.Fatalf("marginal parameters were modified: %v", got)
	}
	if m.Upper() != 1.0 || m.Description() != "unit" || m.Name() != "X" {
		t.Fatalf("unexpected marginal %v", m)
	}
}

// TestMarginal_Quantile checks the validation of probabilities.
func TestMarginal_Quantile(t *testing.T) {
	m, err := NewMarginal("X", distribution.LogitNormalID, []float64{0.0, 3.16})
	if err != nil {
		t.Fatalf("failed to create marginal. Error: %v", err)
	}
	xs, err := m.Quantile([]float64{0.0, 1.0})
	if err != nil {
		t.Fatalf("failed to evaluate quantile. Error: %v", err)
	}
	if xs[0] != 0.0 || xs[1] != 1.0 {
		t.Fatalf("unexpected quantiles at the bounds %v", xs)
	}
	for _, u := range []float64{-1e-9, 1.0 + 1e-9, math.NaN()} {
		if _, err := m.Quantile([]float64{0.5, u}); !errors.Is(err, distribution.ErrInvalidArgument) {
			t.Fatalf("expected invalid argument for probability %v, got %v", u, err)
		}
	}
}

// TestMarginal_Draw checks the sample sizes of inverse-transform sampling.
func TestMarginal_Draw(t *testing.T) {
	m, err := NewMarginal("X", distribution.BetaID, []float64{2.0, 8.0, 0.0, 1.0})
	if err != nil {
		t.Fatalf("failed to create marginal. Error: %v", err)
	}
	rg := sampling.NewGenerator(1)
	xs, err := m.Draw(0, rg)
	if err != nil || len(xs) != 0 {
		t.Fatalf("expected empty sample, got %v, %v", xs, err)
	}
	if _, err := m.Draw(-1, rg); !errors.Is(err, distribution.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for negative sample size, got %v", err)
	}
	xs, err = m.Draw(1000, rg)
	if err != nil || len(xs) != 1000 {
		t.Fatalf("failed to draw sample, got %d values, %v", len(xs), err)
	}
	for _, x := range xs {
		if x < 0.0 || x > 1.0 {
			t.Fatalf("variate %v outside of support", x)
		}
	}
}

// TestMarginal_TruncatedGumbelMedian compares the sample median of a
// truncated Gumbel marginal with its analytical median.
func TestMarginal_TruncatedGumbelMedian(t *testing.T) {
	mu, scale, lower, upper := 2.71, 0.5, 0.0, 5.0
	m, err := NewMarginal("X", distribution.TruncGumbelID, []float64{mu, scale, lower, upper})
	if err != nil {
		t.Fatalf("failed to create marginal. Error: %v", err)
	}
	xs, err := m.Draw(100000, sampling.NewGenerator(271))
	if err != nil {
		t.Fatalf("failed to draw sample. Error: %v", err)
	}
	sort.Float64s(xs)
	median := (xs[len(xs)/2-1] + xs[len(xs)/2]) / 2.0

	base := distuv.GumbelRight{Mu: mu, Beta: scale}
	want := base.Quantile((base.CDF(lower) + base.CDF(upper)) / 2.0)
	if math.Abs(median-want) > 1e-2 {
		t.Fatalf("sample median %v deviates from analytical median %v", median, want)
	}
}

// TestMarginal_TruncatedGumbelMode checks that the histogram peaks near
// the location of a truncated Gumbel marginal.
func TestMarginal_TruncatedGumbelMode(t *testing.T) {
	mu, scale, lower, upper := 3.0, 0.4, 1.0, 6.0
	m, err := NewMarginal("X", distribution.TruncGumbelID, []float64{mu, scale, lower, upper})
	if err != nil {
		t.Fatalf("failed to create marginal. Error: %v", err)
	}
	xs, err := m.Draw(1000000, sampling.NewGenerator(3))
	if err != nil {
		t.Fatalf("failed to draw sample. Error: %v", err)
	}
	const bins = 100
	counts := make([]int, bins)
	width := (upper - lower) / bins
	for _, x := range xs {
		i := int((x - lower) / width)
		if i == bins {
			i--
		}
		counts[i]++
	}
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	mode := lower + (float64(best)+0.5)*width
	if math.Abs(mode-mu) > 0.1 {
		t.Fatalf("histogram mode %v deviates from location %v", mode, mu)
	}
}
