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
	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/urfave/cli/v2"
)

// defaultCanonicalFile is the output file of a canonical spec if no file is given.
const defaultCanonicalFile = "canonical.yaml"

// CanonicalCommand writes the spec of a canonical input.
var CanonicalCommand = cli.Command{
	Action:    canonicalAction,
	Name:      "canonical",
	Usage:     "writes the spec of an input of independent uniform marginals",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&utils.DimensionFlag,
		&utils.MinFlag,
		&utils.MaxFlag,
		&utils.DescriptionFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The canonical command writes the spec of an input with marginals X1..Xdim
distributed uniformly on [min, max]. The format of the spec is selected by
the suffix of the output file (.json, .yaml, or .yml).`,
}

// canonicalAction implements the canonical command.
func canonicalAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Canonical")

	in, err := input.Canonical(cfg.Dimension, cfg.Min, cfg.Max, input.WithInputDescription(cfg.Description))
	if err != nil {
		return err
	}
	output := cfg.Output
	if output == "" {
		output = defaultCanonicalFile
	}
	if err := input.NewSpec(in).WriteSpec(output); err != nil {
		return err
	}
	log.Noticef("Spec of a %d-dimensional canonical input written to %v", in.Dim(), output)
	return nil
}
