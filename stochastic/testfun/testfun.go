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

// Package testfun binds an evaluation strategy to a probabilistic input.
package testfun

import (
	"fmt"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"gonum.org/v1/gonum/mat"
)

// EvalFunc evaluates a function on every row of points. It returns one
// output per row.
type EvalFunc func(points *mat.Dense, params any) ([]float64, error)

// TestFunction is a function of a probabilistic input.
type TestFunction struct {
	Name        string
	Description string
	Input       *input.ProbInput
	Parameters  any
	Evaluate    EvalFunc
}

// New creates a test function.
func New(name string, in *input.ProbInput, params any, eval EvalFunc) (*TestFunction, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: test function %q requires an input", distribution.ErrInvalidArgument, name)
	}
	if eval == nil {
		return nil, fmt.Errorf("%w: test function %q requires an evaluation function", distribution.ErrInvalidArgument, name)
	}
	return &TestFunction{
		Name:       name,
		Input:      in,
		Parameters: params,
		Evaluate:   eval,
	}, nil
}

// FromSpec creates a test function whose input is built from a spec.
// Functions sharing a spec get independent inputs.
func FromSpec(name string, spec *input.Spec, params any, eval EvalFunc, opts ...input.Option) (*TestFunction, error) {
	in, err := spec.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("test function %q: %w", name, err)
	}
	f, err := New(name, in, params, eval)
	if err != nil {
		return nil, err
	}
	f.Description = spec.Description
	return f, nil
}

// Dim returns the dimension of the input.
func (f *TestFunction) Dim() int {
	return f.Input.Dim()
}

// Call evaluates the function on every row of points.
func (f *TestFunction) Call(points *mat.Dense) ([]float64, error) {
	if points == nil || points.IsEmpty() {
		return []float64{}, nil
	}
	n, m := points.Dims()
	if m != f.Dim() {
		return nil, fmt.Errorf("%w: %v expects %d columns, got %d", distribution.ErrInvalidArgument, f.Name, f.Dim(), m)
	}
	ys, err := f.Evaluate(points, f.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %v; %w", f.Name, err)
	}
	if len(ys) != n {
		return nil, fmt.Errorf("%v returned %d outputs for %d points", f.Name, len(ys), n)
	}
	return ys, nil
}

// Sample draws n points from the input and evaluates the function on them.
func (f *TestFunction) Sample(n int) (*mat.Dense, []float64, error) {
	points, err := f.Input.Sample(n)
	if err != nil {
		return nil, nil, err
	}
	ys, err := f.Call(points)
	if err != nil {
		return nil, nil, err
	}
	return points, ys, nil
}

// String returns the name and dimension of the function.
func (f *TestFunction) String() string {
	return fmt.Sprintf("%v (%d-dimensional)", f.Name, f.Dim())
}
