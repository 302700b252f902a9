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

package uqinput

import (
	"fmt"
	"math"
	"strings"

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/exponential"
	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/stochastic/statistics"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// CheckCommand checks the marginals of an input numerically and statistically.
var CheckCommand = cli.Command{
	Action:    checkAction,
	Name:      "check",
	Usage:     "checks the marginals of an input numerically and statistically",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&utils.InputFlag,
		&utils.KindFlag,
		&utils.ParamsFlag,
		&utils.BoundsFlag,
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
		&utils.BinsFlag,
		&utils.OutputFlag,
		&utils.DbFileFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The check command verifies for every marginal that the density integrates
to the probability mass between quantiles, that the distribution function
inverts the quantile function, and that a drawn sample fits the
distribution (chi-squared test). The report is printed to the console,
appended to the output file, and recorded in the sqlite3 database if --db
is set. The command fails if a marginal does not pass.`,
}

// Tolerances and levels of the marginal checks.
const (
	checkTailMass      = 1e-3 // probability mass excluded in each tail
	checkNumIntervals  = 10   // number of integration intervals between quantiles
	checkQuadPoints    = 64   // Gauss-Legendre points per interval
	checkNumProbes     = 99   // number of probabilities of the round-trip check
	checkNormTolerance = 1e-3
	checkRoundTripTol  = 1e-6
	checkSignificance  = 1e-3
)

const (
	checkCreate = `CREATE TABLE IF NOT EXISTS checks (
	seed INTEGER, name TEXT, kind TEXT, n INTEGER, norm_error REAL, roundtrip_error REAL,
	median REAL, sample_median REAL, chi2 REAL, p_value REAL, ks REAL, passed INTEGER)`
	checkInsert = `INSERT INTO checks (seed, name, kind, n, norm_error, roundtrip_error, median,
	sample_median, chi2, p_value, ks, passed) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// marginalCheck is the outcome of checking a marginal.
type marginalCheck struct {
	Name           string
	Kind           distribution.Kind
	NormError      float64 // error of the probability mass between the tail quantiles
	RoundTripError float64 // maximal error of CDF(Quantile(u)) = u
	Median         float64
	SampleMedian   float64
	Fit            statistics.GoodnessOfFit
	Rate           float64 // estimated rate of a truncated exponential, else NaN
	Passed         bool
}

// checkAction implements the check command.
func checkAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Check")

	in, err := loadInput(cfg)
	if err != nil {
		return err
	}
	// at least five expected realizations per bin
	bins := utils.Clamp(cfg.SampleSize/5, 2, cfg.Bins)
	checks, err := checkInput(in, cfg.SampleSize, bins)
	if err != nil {
		return err
	}
	failed := 0
	for _, c := range checks {
		if !c.Passed {
			failed++
			log.Warningf("Marginal %v failed the check", c.Name)
		} else {
			log.Debugf("Marginal %v passed the check", c.Name)
		}
	}

	report := func() string {
		return checkReport(in.Seed(), cfg.SampleSize, checks)
	}
	printers := utils.NewPrinters().AddPrintToFile(cfg.Output, report)
	if !cfg.Quiet {
		printers.AddPrintToWriter(ctx.App.Writer, report)
	}
	printers, err = printers.AddPrintToSqlite3(cfg.DbFile, checkCreate, checkInsert, func() [][]any {
		rows := make([][]any, len(checks))
		for j, c := range checks {
			rows[j] = []any{in.Seed(), c.Name, c.Kind.String(), cfg.SampleSize, c.NormError, c.RoundTripError,
				c.Median, c.SampleMedian, c.Fit.Statistic, c.Fit.PValue, c.Fit.KS, c.Passed}
		}
		return rows
	})
	if err != nil {
		return err
	}
	defer printers.Close()
	if err := printers.Print(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d marginals failed the check", failed, len(checks))
	}
	return nil
}

// quantile evaluates the quantile function of a marginal at a probability.
func quantile(m *input.Marginal, u float64) (float64, error) {
	xs, err := m.Quantile([]float64{u})
	if err != nil {
		return 0.0, err
	}
	return xs[0], nil
}

// checkInput checks every marginal of an input against the columns of a
// sample of size n drawn from the input's own stream.
func checkInput(in *input.ProbInput, n int, bins int) ([]marginalCheck, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: check requires a positive sample size", distribution.ErrInvalidArgument)
	}
	x, err := in.Sample(n)
	if err != nil {
		return nil, err
	}
	checks := make([]marginalCheck, in.Dim())
	for j, m := range in.Marginals() {
		if checks[j], err = checkMarginal(m, mat.Col(nil, j, x), bins); err != nil {
			return nil, fmt.Errorf("cannot check marginal %v; %w", m.Name(), err)
		}
	}
	return checks, nil
}

// checkMarginal checks a single marginal against a sample of it.
func checkMarginal(m *input.Marginal, sample []float64, bins int) (marginalCheck, error) {
	res := marginalCheck{Name: m.Name(), Kind: m.Kind(), Rate: math.NaN()}

	// probability mass between the tail quantiles
	knots := make([]float64, checkNumIntervals+1)
	for i := range knots {
		u := checkTailMass + (1.0-2.0*checkTailMass)*float64(i)/float64(checkNumIntervals)
		x, err := quantile(m, u)
		if err != nil {
			return res, err
		}
		knots[i] = x
	}
	density := func(x float64) float64 {
		return m.Density([]float64{x})[0]
	}
	mass := 0.0
	for i := 1; i < len(knots); i++ {
		if knots[i] > knots[i-1] {
			mass += quad.Fixed(density, knots[i-1], knots[i], checkQuadPoints, nil, 0)
		}
	}
	res.NormError = math.Abs(mass - (1.0 - 2.0*checkTailMass))

	// distribution function inverts the quantile function
	us := make([]float64, checkNumProbes)
	for i := range us {
		us[i] = float64(i+1) / float64(checkNumProbes+1)
	}
	xs, err := m.Quantile(us)
	if err != nil {
		return res, err
	}
	for i, p := range m.Probability(xs) {
		res.RoundTripError = utils.Max(res.RoundTripError, math.Abs(p-us[i]))
	}

	// sample fits the distribution
	if res.Median, err = quantile(m, 0.5); err != nil {
		return res, err
	}
	res.SampleMedian = statistics.Median(statistics.Sorted(sample))
	if res.Fit, err = statistics.Fit(sample, m.Probability, bins); err != nil {
		return res, err
	}

	if m.Kind() == distribution.TruncExponentialID && !math.IsInf(m.Upper(), 0) {
		ecdf, err := statistics.NewECDF(sample, statistics.NumECDFPoints)
		if err != nil {
			return res, err
		}
		if res.Rate, err = exponential.ApproximateLambda(ecdf, m.Lower(), m.Upper()); err != nil {
			return res, err
		}
	}

	res.Passed = res.NormError < checkNormTolerance &&
		res.RoundTripError < checkRoundTripTol &&
		!res.Fit.Reject(checkSignificance)
	return res, nil
}

// checkReport prints the outcome of the marginal checks as a table.
func checkReport(seed int64, n int, checks []marginalCheck) string {
	var b strings.Builder
	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintln(&b, bold("Marginal checks (n=%d, seed=%d)", n, seed))

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Name", "Kind", "Norm. error", "Round-trip error", "Median", "Sample median", "Fit", "Rate", "Status"})
	table.SetBorder(false)
	for _, c := range checks {
		status := "passed"
		if !c.Passed {
			status = "FAILED"
		}
		rate := ""
		if !math.IsNaN(c.Rate) {
			rate = fmt.Sprintf("%.4g", c.Rate)
		}
		table.Append([]string{
			c.Name,
			c.Kind.String(),
			fmt.Sprintf("%.2e", c.NormError),
			fmt.Sprintf("%.2e", c.RoundTripError),
			fmt.Sprintf("%.6g", c.Median),
			fmt.Sprintf("%.6g", c.SampleMedian),
			c.Fit.String(),
			rate,
			status,
		})
	}
	table.Render()
	return b.String()
}
