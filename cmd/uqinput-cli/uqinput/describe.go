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
	"io"
	"strings"

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/Fantom-foundation/uqinput/stochastic/input"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DescribeCommand prints the distribution catalog or the marginals of an input.
var DescribeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "prints the distribution catalog or the marginals of an input",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&utils.InputFlag,
		&utils.KindFlag,
		&utils.ParamsFlag,
		&utils.BoundsFlag,
		&utils.RandomSeedFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The describe command prints the catalog of distribution kinds with their
parameter roles. If an input spec or a distribution kind is given, the
marginals of the input are printed instead.`,
}

// describeAction implements the describe command.
func describeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	if cfg.Input == "" && cfg.Kind == "" {
		return printCatalog(w)
	}
	in, err := loadInput(cfg)
	if err != nil {
		return err
	}
	printInput(w, in)
	return nil
}

// printCatalog prints the registered distribution kinds.
func printCatalog(w io.Writer) error {
	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintln(w, bold("Distribution catalog"))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "#Parameters", "Roles"})
	table.SetBorder(false)
	for _, k := range distribution.Kinds() {
		d, err := distribution.Lookup(k)
		if err != nil {
			return err
		}
		table.Append([]string{k.String(), fmt.Sprint(d.NumParameters()), strings.Join(d.Roles(), ", ")})
	}
	table.Render()
	return nil
}

// printInput prints the marginals of an input.
func printInput(w io.Writer, in *input.ProbInput) {
	bold := color.New(color.Bold).SprintfFunc()
	p := message.NewPrinter(language.English)

	name := in.Name()
	if name == "" {
		name = "Probabilistic input"
	}
	fmt.Fprintln(w, bold("%v", name))
	if in.Description() != "" {
		fmt.Fprintln(w, in.Description())
	}
	fmt.Fprintln(w, p.Sprintf("Dimension: %d, seed: %d", in.Dim(), in.Seed()))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Kind", "Parameters", "Lower", "Upper", "Description"})
	table.SetBorder(false)
	for _, m := range in.Marginals() {
		table.Append([]string{
			m.Name(),
			m.Kind().String(),
			fmt.Sprint(m.Parameters()),
			formatFloat(m.Lower()),
			formatFloat(m.Upper()),
			m.Description(),
		})
	}
	table.Render()

	if c, ok := in.Copula().(*input.GaussianCopula); ok {
		fmt.Fprintln(w, bold("Gaussian copula"))
		for _, row := range c.Correlation() {
			fmt.Fprintln(w, row)
		}
	}
}
