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

package visualizer

import (
	"fmt"

	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/stochastic/statistics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// numCurvePoints is the number of points of an analytical curve.
const numCurvePoints = 200

// Report is the view model of a sampled input.
type Report struct {
	Title     string
	Seed      int64
	N         int
	Marginals []MarginalData
}

// MarginalData contains the sampled and analytical view of a marginal.
type MarginalData struct {
	Name      string
	Label     string                   // distribution and parameters
	Summary   statistics.Summary       // summary of the sample
	Histogram [][2]float64             // bin centers and sample density
	PDF       [][2]float64             // analytical density
	ECDF      statistics.ECDF          // compressed empirical distribution
	CDF       [][2]float64             // analytical cumulative distribution
	Fit       statistics.GoodnessOfFit // comparison of sample and distribution
}

// NewReport creates the view model of a sample drawn from an input.
func NewReport(in *input.ProbInput, sample *mat.Dense, bins int) (*Report, error) {
	if sample == nil || sample.IsEmpty() {
		return nil, statistics.ErrEmptySample
	}
	n, m := sample.Dims()
	if m != in.Dim() {
		return nil, fmt.Errorf("sample has %d columns, input has dimension %d", m, in.Dim())
	}
	title := in.Name()
	if title == "" {
		title = "Probabilistic Input"
	}
	report := &Report{Title: title, Seed: in.Seed(), N: n}
	for j := 0; j < m; j++ {
		data, err := newMarginalData(in.Marginal(j), mat.Col(nil, j, sample), bins)
		if err != nil {
			return nil, fmt.Errorf("marginal %v: %w", in.Marginal(j).Name(), err)
		}
		report.Marginals = append(report.Marginals, data)
	}
	return report, nil
}

// newMarginalData creates the view model of a single marginal.
func newMarginalData(marginal *input.Marginal, xs []float64, bins int) (MarginalData, error) {
	summary, err := statistics.Summarize(xs)
	if err != nil {
		return MarginalData{}, err
	}
	hist, err := statistics.NewSampleHistogram(xs, bins)
	if err != nil {
		return MarginalData{}, err
	}
	ecdf, err := statistics.NewECDF(xs, statistics.NumECDFPoints)
	if err != nil {
		return MarginalData{}, err
	}
	fit, err := statistics.Fit(xs, marginal.Probability, bins)
	if err != nil {
		return MarginalData{}, err
	}

	histogram := make([][2]float64, hist.Bins())
	for i, c := range hist.Centers() {
		histogram[i] = [2]float64{c, hist.Density()[i]}
	}

	grid := floats.Span(make([]float64, numCurvePoints), hist.Dividers[0], hist.Dividers[hist.Bins()])
	return MarginalData{
		Name:      marginal.Name(),
		Label:     fmt.Sprintf("%v%v", marginal.Kind(), marginal.Parameters()),
		Summary:   summary,
		Histogram: histogram,
		PDF:       zip(grid, marginal.Density(grid)),
		ECDF:      ecdf,
		CDF:       zip(grid, marginal.Probability(grid)),
		Fit:       fit,
	}, nil
}

// zip pairs the coordinates of a curve.
func zip(xs, ys []float64) [][2]float64 {
	res := make([][2]float64, len(xs))
	for i := range xs {
		res[i] = [2]float64{xs[i], ys[i]}
	}
	return res
}
