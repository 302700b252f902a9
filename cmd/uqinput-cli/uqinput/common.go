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

// Package uqinput implements the commands of the uqinput-cli app.
package uqinput

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/utils"
	"gonum.org/v1/gonum/mat"
)

// newMarginal creates the marginal given by the kind, params, and bounds flags.
func newMarginal(cfg *utils.Config) (*input.Marginal, error) {
	if cfg.Kind == "" {
		return nil, fmt.Errorf("%w: missing distribution kind", distribution.ErrInvalidArgument)
	}
	kind, err := distribution.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	var opts []input.MarginalOption
	if len(cfg.Bounds) == 2 {
		opts = append(opts, input.WithBounds(cfg.Bounds[0], cfg.Bounds[1]))
	}
	return input.NewMarginal("X", kind, cfg.Params, opts...)
}

// loadInput creates the input given by the input flag, or a univariate
// input given by the kind flag.
func loadInput(cfg *utils.Config) (*input.ProbInput, error) {
	if cfg.Input == "" {
		m, err := newMarginal(cfg)
		if err != nil {
			return nil, err
		}
		return input.New([]*input.Marginal{m}, input.WithName(m.String()), input.WithSeed(cfg.RandomSeed))
	}
	spec, err := input.ReadSpec(cfg.Input)
	if err != nil {
		return nil, err
	}
	return spec.New(input.WithSeed(cfg.RandomSeed))
}

// formatFloat prints a value in the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeCSV writes a header and the rows of a matrix followed by extra columns.
func writeCSV(w io.Writer, header []string, x *mat.Dense, extra ...[]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if x != nil && !x.IsEmpty() {
		n, m := x.Dims()
		row := make([]string, m+len(extra))
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				row[j] = formatFloat(x.At(i, j))
			}
			for k, col := range extra {
				row[m+k] = formatFloat(col[i])
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeOutput writes the CSV to the output file, or to w if no file is given.
func writeOutput(cfg *utils.Config, w io.Writer, header []string, x *mat.Dense, extra ...[]float64) error {
	if cfg.Output == "" {
		return writeCSV(w, header, x, extra...)
	}
	fw, err := utils.NewFileWriter(cfg.Output)
	if err != nil {
		return err
	}
	if err := writeCSV(fw, header, x, extra...); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// readPoints reads a CSV file with dim columns. A header row is skipped.
func readPoints(path string, dim int) (*mat.Dense, error) {
	fr, err := utils.NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	cr := csv.NewReader(fr)
	cr.FieldsPerRecord = dim
	var data []float64
	n := 0
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read %v; %v", distribution.ErrInvalidArgument, path, err)
		}
		row := make([]float64, dim)
		for j, field := range record {
			if row[j], err = strconv.ParseFloat(field, 64); err != nil {
				break
			}
		}
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: invalid value in line %d of %v; %v", distribution.ErrInvalidArgument, line, path, err)
		}
		data = append(data, row...)
		n++
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(n, dim, data), nil
}
