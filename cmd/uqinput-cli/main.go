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
	"fmt"
	"os"

	"github.com/Fantom-foundation/uqinput/cmd/uqinput-cli/uqinput"
	"github.com/urfave/cli/v2"
)

// initUqInputApp initializes a uqinput-cli app. This function is
// called by the main function and unit tests.
func initUqInputApp() *cli.App {
	return &cli.App{
		Name:      "Probabilistic Input Manager",
		HelpName:  "uqinput",
		Usage:     "describes, samples, and checks probabilistic inputs of uncertainty-quantification benchmarks",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&uqinput.DescribeCommand,
			&uqinput.SampleCommand,
			&uqinput.DensityCommand,
			&uqinput.CoefficientsCommand,
			&uqinput.CheckCommand,
			&uqinput.VisualizeCommand,
			&uqinput.CanonicalCommand,
		},
	}
}

// main implements "uqinput" cli application.
func main() {
	app := initUqInputApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
