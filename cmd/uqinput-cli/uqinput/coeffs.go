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
	"strings"

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/mixture"
	"github.com/Fantom-foundation/uqinput/stochastic/sampling"
	"github.com/Fantom-foundation/uqinput/stochastic/statistics"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"
)

// CoefficientsCommand generates coefficients from the Gaussian mixture.
var CoefficientsCommand = cli.Command{
	Action:    coefficientsAction,
	Name:      "coeffs",
	Usage:     "generates coefficients from the two-component Gaussian mixture",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The coeffs command draws coefficients from the mixture of N(0, 0.5) with
weight 0.7 and N(0, 5) with weight 0.3. The fraction of the second
component and the sample variance are compared with their exact values.
The coefficients and component labels are written in CSV format if an
output file is given.`,
}

// coefficientsAction implements the coeffs command.
func coefficientsAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Coeffs")

	g := mixture.Default()
	xs, labels, err := g.GenerateWithComponents(sampling.NewGenerator(cfg.RandomSeed), cfg.SampleSize)
	if err != nil {
		return err
	}
	log.Infof("Generated %d coefficients with seed %d", len(xs), cfg.RandomSeed)

	if cfg.Output != "" {
		ls := make([]float64, len(labels))
		for i, c := range labels {
			ls[i] = float64(c)
		}
		var x *mat.Dense
		if len(xs) > 0 {
			x = mat.NewDense(len(xs), 1, xs)
		}
		if err := writeOutput(cfg, ctx.App.Writer, []string{"coefficient", "component"}, x, ls); err != nil {
			return fmt.Errorf("cannot write coefficients; %w", err)
		}
	}

	moments := statistics.NewMoments()
	moments.UpdateAll(xs)
	if cfg.Quiet {
		return nil
	}
	_, err = fmt.Fprint(ctx.App.Writer, coefficientsReport(g, moments, mixture.Fraction(labels, 1)))
	return err
}

// coefficientsReport compares the sample with the mixture.
func coefficientsReport(g mixture.GaussianMixture, moments *statistics.Moments, fraction float64) string {
	var b strings.Builder
	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintln(&b, bold("Gaussian mixture coefficients (n=%d)", moments.Count()))

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Quantity", "Sample", "Exact", "Rel. error"})
	table.SetBorder(false)
	row := func(name string, got, want float64) {
		table.Append([]string{name, formatFloat(got), formatFloat(want), fmt.Sprintf("%.2e", utils.RelativeError(got, want))})
	}
	row("fraction of component 1", fraction, 1-g.Phi)
	row("mean", moments.Mean(), g.Phi*g.Mu0+(1-g.Phi)*g.Mu1)
	row("variance", moments.Variance(), g.Variance())
	table.Render()
	return b.String()
}
