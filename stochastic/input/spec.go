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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"gopkg.in/yaml.v3"
)

// MarginalSpec declares a marginal.
type MarginalSpec struct {
	Name         string    `json:"name" yaml:"name"`
	Distribution string    `json:"distribution" yaml:"distribution"`
	Parameters   []float64 `json:"parameters" yaml:"parameters"`
	Bounds       []float64 `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// CopulaSpec declares a dependence structure.
type CopulaSpec struct {
	Type        string      `json:"type" yaml:"type"`
	Correlation [][]float64 `json:"correlation" yaml:"correlation"`
}

// Spec declares a multivariate input. Specs are plain values that can be
// shared between test functions and instantiated many times.
type Spec struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Marginals   []MarginalSpec `json:"marginals" yaml:"marginals"`
	Copula      *CopulaSpec    `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// Format of a spec file.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

// FormatOf selects the spec format by file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return JSONFormat, fmt.Errorf("%w: unsupported spec file extension of %q", distribution.ErrInvalidArgument, path)
	}
}

// ParseSpec decodes a spec.
func ParseSpec(data []byte, format Format) (*Spec, error) {
	var spec Spec
	var err error
	switch format {
	case JSONFormat:
		err = json.Unmarshal(data, &spec)
	case YAMLFormat:
		err = yaml.Unmarshal(data, &spec)
	default:
		err = fmt.Errorf("%w: unknown format %d", distribution.ErrInvalidArgument, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode input spec; %w", err)
	}
	return &spec, nil
}

// ReadSpec reads a spec file in JSON or YAML format.
func ReadSpec(path string) (*Spec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input spec %v; %w", path, err)
	}
	return ParseSpec(data, format)
}

// Marginal creates the declared marginal.
func (s MarginalSpec) Marginal() (*Marginal, error) {
	kind, err := distribution.ParseKind(s.Distribution)
	if err != nil {
		return nil, fmt.Errorf("marginal %q: %w", s.Name, err)
	}
	opts := []MarginalOption{WithDescription(s.Description)}
	switch len(s.Bounds) {
	case 0:
	case 2:
		opts = append(opts, WithBounds(s.Bounds[0], s.Bounds[1]))
	default:
		return nil, fmt.Errorf("%w: marginal %q: bounds require two values, got %d",
			distribution.ErrInvalidArgument, s.Name, len(s.Bounds))
	}
	return NewMarginal(s.Name, kind, s.Parameters, opts...)
}

// New creates an input from the spec. Options override the spec.
func (s *Spec) New(opts ...Option) (*ProbInput, error) {
	marginals := make([]*Marginal, len(s.Marginals))
	for i, ms := range s.Marginals {
		m, err := ms.Marginal()
		if err != nil {
			return nil, err
		}
		marginals[i] = m
	}
	all := []Option{WithName(s.Name), WithInputDescription(s.Description)}
	if s.Copula != nil {
		copula, err := s.Copula.New()
		if err != nil {
			return nil, err
		}
		all = append(all, WithCopula(copula))
	}
	return New(marginals, append(all, opts...)...)
}

// New creates the declared copula.
func (s *CopulaSpec) New() (Copula, error) {
	switch strings.ToLower(s.Type) {
	case "gaussian", "normal":
		return NewGaussianCopula(s.Correlation)
	default:
		return nil, fmt.Errorf("%w: unknown copula type %q", distribution.ErrInvalidArgument, s.Type)
	}
}

// NewSpec describes an existing input as a spec.
func NewSpec(p *ProbInput) *Spec {
	spec := &Spec{Name: p.Name(), Description: p.Description()}
	for _, m := range p.marginals {
		spec.Marginals = append(spec.Marginals, MarginalSpec{
			Name:         m.Name(),
			Distribution: m.Kind().String(),
			Parameters:   m.Parameters(),
			Description:  m.Description(),
		})
	}
	if gc, ok := p.copula.(*GaussianCopula); ok {
		spec.Copula = &CopulaSpec{Type: "gaussian", Correlation: gc.Correlation()}
	}
	return spec
}

// WriteSpec writes a spec file in JSON or YAML format.
func (s *Spec) WriteSpec(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case YAMLFormat:
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode input spec; %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write input spec %v; %w", path, err)
	}
	return nil
}
