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

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"
)

// DensityCommand evaluates the joint density and the marginal CDFs on points.
var DensityCommand = cli.Command{
	Action:    densityAction,
	Name:      "density",
	Usage:     "evaluates the joint density and the marginal CDFs of an input on points",
	ArgsUsage: "<points.csv>",
	Flags: []cli.Flag{
		&utils.InputFlag,
		&utils.KindFlag,
		&utils.ParamsFlag,
		&utils.BoundsFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The density command reads points in CSV format with one column per
marginal and writes the points extended by the joint density and the
cumulative distribution function of every marginal.`,
}

// densityAction implements the density command.
func densityAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Density")

	in, err := loadInput(cfg)
	if err != nil {
		return err
	}
	points, err := readPoints(cfg.Args[0], in.Dim())
	if err != nil {
		return err
	}
	density, err := in.JointDensity(points)
	if err != nil {
		return err
	}
	cdf, err := in.CDF(points)
	if err != nil {
		return err
	}
	log.Infof("Evaluated %d points", len(density))

	header := append(in.Names(), "density")
	extra := [][]float64{density}
	for j, name := range in.Names() {
		header = append(header, fmt.Sprintf("cdf_%v", name))
		if len(density) > 0 {
			extra = append(extra, mat.Col(nil, j, cdf))
		}
	}
	return writeOutput(cfg, ctx.App.Writer, header, points, extra...)
}
