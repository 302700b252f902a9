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

// Package visualizer renders sampled inputs as interactive HTML charts.
package visualizer

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// convertCurveData converts curve points to chart points.
func convertCurveData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newLineChart creates a line chart with a value axis.
func newLineChart(title string, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// newDensityChart compares the sample density with the analytical density.
func newDensityChart(d *MarginalData) *charts.Line {
	chart := newLineChart("Density of "+d.Name, d.Label)
	chart.AddSeries("histogram", convertCurveData(d.Histogram)).AddSeries("PDF", convertCurveData(d.PDF))
	return chart
}

// newDistributionChart compares the ECDF with the analytical distribution.
func newDistributionChart(d *MarginalData) *charts.Line {
	chart := newLineChart("Distribution of "+d.Name, d.Fit.String())
	chart.AddSeries("eCDF", convertCurveData(d.ECDF)).AddSeries("CDF", convertCurveData(d.CDF))
	return chart
}

// Render writes the report as an HTML page with two charts per marginal.
func (r *Report) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%v: %d samples, seed %d", r.Title, r.N, r.Seed)
	for i := range r.Marginals {
		page.AddCharts(newDensityChart(&r.Marginals[i]), newDistributionChart(&r.Marginals[i]))
	}
	return page.Render(w)
}

// FireUpWeb fires up a web-server serving the report.
func FireUpWeb(addr string, r *Report) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		if err := r.Render(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return http.ListenAndServe(":"+addr, mux)
}
