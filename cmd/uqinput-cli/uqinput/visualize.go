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
	"github.com/Fantom-foundation/uqinput/stochastic/visualizer"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/urfave/cli/v2"
)

// defaultReportFile is the output file of a report if no file is given.
const defaultReportFile = "report.html"

// VisualizeCommand renders the marginals of a sampled input.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "renders histograms and distribution functions of a sampled input",
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
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command draws a sample of an input and renders for every
marginal the sample histogram against the density and the empirical
distribution function against the distribution function. The report is
written as an HTML page, or served on the given port.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	in, err := loadInput(cfg)
	if err != nil {
		return err
	}
	x, err := in.Sample(cfg.SampleSize)
	if err != nil {
		return err
	}
	report, err := visualizer.NewReport(in, x, cfg.Bins)
	if err != nil {
		return fmt.Errorf("cannot create report; %w", err)
	}

	if cfg.Port != "" {
		log.Noticef("Open http://localhost:%v to view the report", cfg.Port)
		return visualizer.FireUpWeb(cfg.Port, report)
	}

	output := cfg.Output
	if output == "" {
		output = defaultReportFile
	}
	fw, err := utils.NewFileWriter(output)
	if err != nil {
		return err
	}
	if err := report.Render(fw); err != nil {
		fw.Close()
		return fmt.Errorf("cannot render report; %w", err)
	}
	if err := fw.Close(); err != nil {
		return err
	}
	log.Noticef("Report written to %v", output)
	return nil
}
