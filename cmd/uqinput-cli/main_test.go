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

package main

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app with the given arguments and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := initUqInputApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"uqinput"}, args...))
	return out.String(), err
}

// readCSV reads all records of a CSV file.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDescribe_Catalog(t *testing.T) {
	out, err := run(t, "describe", "--log", "critical")
	require.NoError(t, err)
	for _, kind := range []string{"uniform", "trunc-gumbel", "logitnormal", "triangular"} {
		assert.Contains(t, out, kind)
	}
}

func TestDescribe_Input(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	spec := `
name: pair
marginals:
  - name: rw
    distribution: normal
    parameters: [0.1, 0.0161812]
  - name: L
    distribution: uniform
    parameters: [1120, 1680]
`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0644))

	out, err := run(t, "describe", "--input", path, "--seed", "3", "--log", "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "pair")
	assert.Contains(t, out, "rw")
	assert.Contains(t, out, "1120")
}

func TestSample_Reproducible(t *testing.T) {
	dir := t.TempDir()
	outputs := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv.bz2")}
	for _, output := range outputs {
		_, err := run(t, "sample",
			"--kind", "normal", "--params", "0", "--params", "1",
			"--sample-size", "10", "--seed", "42",
			"--output", output, "--log", "critical")
		require.NoError(t, err)
	}

	records := readCSV(t, outputs[0])
	require.Len(t, records, 11)
	assert.Equal(t, []string{"X"}, records[0])

	out, err := run(t, "sample",
		"--kind", "normal", "--params", "0", "--params", "1",
		"--sample-size", "10", "--seed", "42", "--log", "critical")
	require.NoError(t, err)
	data, err := os.ReadFile(outputs[0])
	require.NoError(t, err)
	assert.Equal(t, string(data), out)

	fr, err := utils.NewFileReader(outputs[1])
	require.NoError(t, err)
	defer fr.Close()
	compressed, err := io.ReadAll(fr)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)
}

func TestSample_Database(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "canonical.json")
	_, err := run(t, "canonical", "--dim", "3", "--output", specPath, "--log", "critical")
	require.NoError(t, err)

	dbPath := filepath.Join(dir, "results.db")
	_, err = run(t, "sample", "--input", specPath, "--sample-size", "100",
		"--seed", "5", "--db", dbPath, "--log", "critical")
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sample WHERE n = 100").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestSample_RejectsArguments(t *testing.T) {
	_, err := run(t, "sample", "--kind", "uniform", "--params", "0", "--params", "1", "--log", "critical", "extra")
	assert.Error(t, err)
}

func TestSample_UnknownKind(t *testing.T) {
	_, err := run(t, "sample", "--kind", "cauchy", "--params", "0", "--params", "1", "--log", "critical")
	assert.Error(t, err)
}

func TestDensity_Canonical(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "canonical.yaml")
	_, err := run(t, "canonical", "--dim", "2", "--min", "0", "--max", "2", "--output", specPath, "--log", "critical")
	require.NoError(t, err)

	points := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(points, []byte("X1,X2\n1,1\n0.5,1.5\n3,1\n"), 0644))
	output := filepath.Join(dir, "density.csv")
	_, err = run(t, "density", "--input", specPath, "--output", output, "--log", "critical", points)
	require.NoError(t, err)

	records := readCSV(t, output)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"X1", "X2", "density", "cdf_X1", "cdf_X2"}, records[0])
	assert.Equal(t, []string{"1", "1", "0.25", "0.5", "0.5"}, records[1])
	assert.Equal(t, []string{"0.5", "1.5", "0.25", "0.25", "0.75"}, records[2])
	assert.Equal(t, []string{"3", "1", "0", "1", "0.5"}, records[3])
}

func TestDensity_MissingPoints(t *testing.T) {
	_, err := run(t, "density", "--kind", "uniform", "--params", "0", "--params", "1", "--log", "critical")
	assert.Error(t, err)
}

func TestCoefficients_Report(t *testing.T) {
	output := filepath.Join(t.TempDir(), "coeffs.csv")
	out, err := run(t, "coeffs", "--sample-size", "1000", "--seed", "11", "--output", output, "--log", "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "fraction of component 1")

	records := readCSV(t, output)
	require.Len(t, records, 1001)
	assert.Equal(t, []string{"coefficient", "component"}, records[0])
	for _, r := range records[1:] {
		assert.Contains(t, []string{"0", "1"}, r[1])
	}
}

func TestCheck_Passes(t *testing.T) {
	tests := map[string][]string{
		"normal":            {"--kind", "normal", "--params", "1", "--params", "2"},
		"trunc-exponential": {"--kind", "trunc-exponential", "--params", "2", "--params", "0", "--params", "1"},
		"bounded-gumbel":    {"--kind", "gumbel", "--params", "0", "--params", "1", "--bounds", "-1", "--bounds", "3"},
	}
	for name, flags := range tests {
		t.Run(name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "check.txt")
			args := append([]string{"check", "--sample-size", "2000", "--seed", "7", "--output", output, "--log", "critical"}, flags...)
			out, err := run(t, args...)
			require.NoError(t, err, out)
			assert.Contains(t, out, "passed")

			data, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(data), "passed"))
		})
	}
}

func TestCheck_InvalidParameters(t *testing.T) {
	_, err := run(t, "check", "--kind", "normal", "--params", "0", "--params", "-1", "--log", "critical")
	assert.Error(t, err)
}

func TestVisualize_WritesReport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.html")
	_, err := run(t, "visualize",
		"--kind", "beta", "--params", "2", "--params", "5", "--params", "0", "--params", "1",
		"--sample-size", "500", "--seed", "1", "--bins", "20",
		"--output", output, "--log", "critical")
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestCanonical_Spec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canonical.json")
	_, err := run(t, "canonical", "--dim", "4", "--min", "-1", "--max", "1",
		"--description", "unit cube", "--output", path, "--log", "critical")
	require.NoError(t, err)

	spec, err := input.ReadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "unit cube", spec.Description)
	require.Len(t, spec.Marginals, 4)
	for i, m := range spec.Marginals {
		assert.Equal(t, "uniform", m.Distribution)
		assert.Equal(t, []float64{-1, 1}, m.Parameters, "marginal %d", i)
	}
}

func TestCanonical_InvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canonical.json")
	_, err := run(t, "canonical", "--min", "1", "--max", "1", "--output", path, "--log", "critical")
	assert.Error(t, err)
}
