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

package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options for common flags in uqinput commands.
var (
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of histogram and goodness-of-fit bins",
		Value: DefaultBins,
	}
	BoundsFlag = cli.Float64SliceFlag{
		Name:  "bounds",
		Usage: "explicit truncation bounds of the marginal as lower,upper",
	}
	DbFileFlag = cli.PathFlag{
		Name:  "db",
		Usage: "record results in a sqlite3 database",
	}
	DescriptionFlag = cli.StringFlag{
		Name:  "description",
		Usage: "description of the generated input",
	}
	DimensionFlag = cli.IntFlag{
		Name:  "dim",
		Usage: "number of marginals of a canonical input",
		Value: 2,
	}
	InputFlag = cli.PathFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "input spec in JSON (.json) or YAML (.yaml, .yml) format",
	}
	KindFlag = cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "distribution kind of the marginal (see describe)",
	}
	MaxFlag = cli.Float64Flag{
		Name:  "max",
		Usage: "upper bound of a canonical input",
		Value: 1.0,
	}
	MinFlag = cli.Float64Flag{
		Name:  "min",
		Usage: "lower bound of a canonical input",
		Value: 0.0,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file; .gz and .bz2 suffixes compress the output",
	}
	ParamsFlag = cli.Float64SliceFlag{
		Name:    "params",
		Aliases: []string{"p"},
		Usage:   "comma-separated parameters of the marginal",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "serve the report on the given port instead of writing it",
	}
	QuietFlag = cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "disable printing of results to the console",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:    "seed",
		Aliases: []string{"random-seed"},
		Usage:   "set random seed; a negative value selects a random seed",
		Value:   -1,
	}
	SampleSizeFlag = cli.IntFlag{
		Name:    "sample-size",
		Aliases: []string{"n"},
		Usage:   "number of realizations to draw",
		Value:   DefaultSampleSize,
	}
)
