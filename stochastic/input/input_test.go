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
	"testing"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// newTestInput creates a three-dimensional input with mixed marginals.
func newTestInput(t *testing.T, opts ...Option) *ProbInput {
	t.Helper()
	x1, err := NewMarginal("X1", distribution.UniformID, []float64{-math.Pi, math.Pi})
	require.NoError(t, err)
	x2, err := NewMarginal("X2", distribution.NormalID, []float64{1.0, 2.0})
	require.NoError(t, err)
	x3, err := NewMarginal("X3", distribution.TruncGumbelID, []float64{2.71, 0.5, 0.0, 5.0})
	require.NoError(t, err)
	p, err := New([]*Marginal{x1, x2, x3}, opts...)
	require.NoError(t, err)
	return p
}

func TestInput_New(t *testing.T) {
	p := newTestInput(t, WithName("mixed"), WithInputDescription("three marginals"), WithSeed(42))
	assert.Equal(t, 3, p.Dim())
	assert.Equal(t, "mixed", p.Name())
	assert.Equal(t, "three marginals", p.Description())
	assert.Equal(t, []string{"X1", "X2", "X3"}, p.Names())
	assert.Equal(t, int64(42), p.Seed())
	assert.Equal(t, distribution.TruncGumbelID, p.Marginal(2).Kind())
	assert.Nil(t, p.Copula())
}

func TestInput_NewInvalid(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))

	_, err = New([]*Marginal{nil})
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))

	ctrl := gomock.NewController(t)
	copula := NewMockCopula(ctrl)
	copula.EXPECT().Dim().Return(2).AnyTimes()

	m, err := NewMarginal("X", distribution.UniformID, []float64{0.0, 1.0})
	require.NoError(t, err)
	_, err = New([]*Marginal{m}, WithCopula(copula))
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
}

func TestInput_MarginalsAreCopied(t *testing.T) {
	p := newTestInput(t)
	ms := p.Marginals()
	ms[0] = nil
	assert.NotNil(t, p.Marginal(0))
}

func TestInput_SameSeedSameSample(t *testing.T) {
	a, err := newTestInput(t, WithSeed(7)).Sample(1000)
	require.NoError(t, err)
	b, err := newTestInput(t, WithSeed(7)).Sample(1000)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))

	c, err := newTestInput(t, WithSeed(8)).Sample(1000)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, c))
}

func TestInput_EntropySeedIsReported(t *testing.T) {
	p := newTestInput(t)
	a, err := p.Sample(100)
	require.NoError(t, err)
	b, err := newTestInput(t, WithSeed(p.Seed())).Sample(100)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))
}

func TestInput_StreamAdvances(t *testing.T) {
	p := newTestInput(t, WithSeed(1))
	a, err := p.Sample(10)
	require.NoError(t, err)
	b, err := p.Sample(10)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, b))
}

func TestInput_SampleSize(t *testing.T) {
	p := newTestInput(t, WithSeed(3))
	x, err := p.Sample(0)
	require.NoError(t, err)
	assert.True(t, x.IsEmpty())

	_, err = p.Sample(-5)
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))

	x, err = p.Sample(500)
	require.NoError(t, err)
	n, m := x.Dims()
	assert.Equal(t, 500, n)
	assert.Equal(t, 3, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := x.At(i, j)
			assert.GreaterOrEqual(t, v, p.Marginal(j).Lower())
			assert.LessOrEqual(t, v, p.Marginal(j).Upper())
		}
	}
}

func TestInput_Transform(t *testing.T) {
	p := newTestInput(t)
	u := mat.NewDense(2, 3, []float64{
		0.0, 0.5, 1.0,
		0.5, 0.0, 0.0,
	})
	x, err := p.Transform(u)
	require.NoError(t, err)
	assert.Equal(t, -math.Pi, x.At(0, 0))
	assert.InDelta(t, 1.0, x.At(0, 1), 1e-12)
	assert.Equal(t, 5.0, x.At(0, 2))
	assert.InDelta(t, 0.0, x.At(1, 0), 1e-12)
	assert.True(t, math.IsInf(x.At(1, 1), -1))
	assert.Equal(t, 0.0, x.At(1, 2))

	_, err = p.Transform(mat.NewDense(1, 2, []float64{0.5, 0.5}))
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
	_, err = p.Transform(mat.NewDense(1, 3, []float64{0.5, 1.5, 0.5}))
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
}

func TestInput_CDF(t *testing.T) {
	p := newTestInput(t)
	points := mat.NewDense(1, 3, []float64{0.0, 1.0, 5.0})
	probs, err := p.CDF(points)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, probs.At(0, 1), 1e-12)
	assert.Equal(t, 1.0, probs.At(0, 2))

	_, err = p.CDF(mat.NewDense(1, 1, []float64{0.0}))
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
}

func TestInput_JointDensityIndependent(t *testing.T) {
	p := newTestInput(t)
	points := mat.NewDense(2, 3, []float64{
		0.0, 1.0, 2.71,
		4.0, 1.0, 2.71, // outside of the support of X1
	})
	f, err := p.JointDensity(points)
	require.NoError(t, err)

	want := 1.0 / (2 * math.Pi)
	want *= distuv.Normal{Mu: 1.0, Sigma: 2.0}.Prob(1.0)
	want *= p.Marginal(2).Density([]float64{2.71})[0]
	assert.InDelta(t, want, f[0], 1e-12)
	assert.Equal(t, 0.0, f[1])

	f, err = p.JointDensity(&mat.Dense{})
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestInput_SampleDelegatesToCopula(t *testing.T) {
	ctrl := gomock.NewController(t)
	copula := NewMockCopula(ctrl)
	copula.EXPECT().Dim().Return(3).AnyTimes()
	copula.EXPECT().Transform(gomock.Any()).DoAndReturn(func(u *mat.Dense) error {
		n, m := u.Dims()
		if n != 4 || m != 3 {
			t.Fatalf("unexpected uniform matrix of size %dx%d", n, m)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				u.Set(i, j, 0.5)
			}
		}
		return nil
	})

	p := newTestInput(t, WithCopula(copula), WithSeed(5))
	x, err := p.Sample(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0.0, x.At(i, 0), 1e-12)
		assert.InDelta(t, 1.0, x.At(i, 1), 1e-12)
	}
}

func TestInput_SampleCopulaFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	copula := NewMockCopula(ctrl)
	copula.EXPECT().Dim().Return(3).AnyTimes()
	injected := errors.New("injected")
	copula.EXPECT().Transform(gomock.Any()).Return(injected)

	p := newTestInput(t, WithCopula(copula))
	_, err := p.Sample(10)
	assert.ErrorIs(t, err, injected)
}

func TestInput_JointDensityDelegatesToCopula(t *testing.T) {
	ctrl := gomock.NewController(t)
	copula := NewMockCopula(ctrl)
	copula.EXPECT().Dim().Return(3).AnyTimes()
	copula.EXPECT().Density(gomock.Any()).DoAndReturn(func(u []float64) float64 {
		assert.InDelta(t, 0.5, u[0], 1e-12)
		assert.InDelta(t, 0.5, u[1], 1e-12)
		return 2.0
	}).Times(1)

	independent := newTestInput(t)
	coupled := newTestInput(t, WithCopula(copula))
	points := mat.NewDense(2, 3, []float64{
		0.0, 1.0, 2.71,
		0.0, 1.0, -1.0, // outside of the support of X3
	})
	want, err := independent.JointDensity(points)
	require.NoError(t, err)
	got, err := coupled.JointDensity(points)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*want[0], got[0], 1e-12)
	assert.Equal(t, 0.0, got[1])
}

func TestInput_Canonical(t *testing.T) {
	p, err := Canonical(4, -1.0, 1.0, WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, []string{"X1", "X2", "X3", "X4"}, p.Names())
	for i := 0; i < p.Dim(); i++ {
		assert.Equal(t, distribution.UniformID, p.Marginal(i).Kind())
		assert.Equal(t, -1.0, p.Marginal(i).Lower())
		assert.Equal(t, 1.0, p.Marginal(i).Upper())
	}

	x, err := p.Sample(20000)
	require.NoError(t, err)
	col := mat.Col(nil, 2, x)
	assert.InDelta(t, 0.0, stat.Mean(col, nil), 0.02)

	_, err = Canonical(0, -1.0, 1.0)
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
	_, err = Canonical(2, 1.0, -1.0)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameterValue))
}
