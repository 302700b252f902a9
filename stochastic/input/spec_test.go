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
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpecJSON = `{
  "name": "borehole",
  "marginals": [
    {"name": "rw", "distribution": "normal", "parameters": [0.10, 0.0161812]},
    {"name": "r", "distribution": "lognormal", "parameters": [7.71, 1.0056]},
    {"name": "Tu", "distribution": "uniform", "parameters": [63070, 115600], "description": "transmissivity"},
    {"name": "Hu", "distribution": "normal", "parameters": [1050, 30], "bounds": [990, 1110]}
  ]
}`

const testSpecYAML = `
name: coupled
marginals:
  - name: X1
    distribution: gumbel
    parameters: [2.71, 0.5]
  - name: X2
    distribution: trunc-gumbel
    parameters: [2.71, 0.5, 0, 5]
copula:
  type: gaussian
  correlation:
    - [1.0, 0.4]
    - [0.4, 1.0]
`

func TestSpec_ParseJSON(t *testing.T) {
	spec, err := ParseSpec([]byte(testSpecJSON), JSONFormat)
	require.NoError(t, err)
	p, err := spec.New(WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, "borehole", p.Name())
	assert.Equal(t, []string{"rw", "r", "Tu", "Hu"}, p.Names())
	assert.Equal(t, distribution.LogNormalID, p.Marginal(1).Kind())
	assert.Equal(t, "transmissivity", p.Marginal(2).Description())
	assert.Equal(t, distribution.TruncNormalID, p.Marginal(3).Kind())
	assert.Equal(t, 990.0, p.Marginal(3).Lower())
	assert.Equal(t, 1110.0, p.Marginal(3).Upper())
	assert.Nil(t, p.Copula())
}

func TestSpec_ParseYAML(t *testing.T) {
	spec, err := ParseSpec([]byte(testSpecYAML), YAMLFormat)
	require.NoError(t, err)
	p, err := spec.New()
	require.NoError(t, err)

	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, distribution.GumbelID, p.Marginal(0).Kind())
	assert.Equal(t, distribution.TruncGumbelID, p.Marginal(1).Kind())
	require.NotNil(t, p.Copula())
	assert.Equal(t, 2, p.Copula().Dim())
}

func TestSpec_Invalid(t *testing.T) {
	_, err := ParseSpec([]byte("{"), JSONFormat)
	assert.Error(t, err)

	spec := &Spec{Marginals: []MarginalSpec{{Name: "X", Distribution: "cauchy", Parameters: []float64{0, 1}}}}
	_, err = spec.New()
	assert.True(t, errors.Is(err, distribution.ErrUnknownDistributionKind))

	spec = &Spec{Marginals: []MarginalSpec{{Name: "X", Distribution: "normal", Parameters: []float64{0, 1}, Bounds: []float64{1}}}}
	_, err = spec.New()
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))

	spec = &Spec{
		Marginals: []MarginalSpec{{Name: "X", Distribution: "normal", Parameters: []float64{0, 1}}},
		Copula:    &CopulaSpec{Type: "clayton"},
	}
	_, err = spec.New()
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))

	_, err = FormatOf("input.toml")
	assert.True(t, errors.Is(err, distribution.ErrInvalidArgument))
}

func TestSpec_WriteAndRead(t *testing.T) {
	spec, err := ParseSpec([]byte(testSpecYAML), YAMLFormat)
	require.NoError(t, err)
	p, err := spec.New(WithName("coupled"))
	require.NoError(t, err)

	for _, name := range []string{"input.json", "input.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, NewSpec(p).WriteSpec(path))
		read, err := ReadSpec(path)
		require.NoError(t, err)
		assert.Equal(t, NewSpec(p), read)
	}
}

func TestSpec_ReadMissing(t *testing.T) {
	_, err := ReadSpec(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
