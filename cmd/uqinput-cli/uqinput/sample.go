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
	"time"

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/statistics"
	"github.com/Fantom-foundation/uqinput/utils"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"
)

// SampleCommand draws realizations of an input.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "draws realizations of a probabilistic input",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&utils.InputFlag,
		&utils.KindFlag,
		&utils.ParamsFlag,
		&utils.BoundsFlag,
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&utils.DbFileFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sample command draws realizations of an input given by a spec file
(--input) or a single distribution (--kind, --params, --bounds). The
realizations are written in CSV format to the output file or to stdout.
A summary of each column is recorded in the sqlite3 database if --db is set.`,
}

const (
	sampleCreate = `CREATE TABLE IF NOT EXISTS sample (
	seed INTEGER, name TEXT, n INTEGER, mean REAL, stddev REAL, min REAL, max REAL)`
	sampleInsert = `INSERT INTO sample (seed, name, n, mean, stddev, min, max) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// sampleAction implements the sample command.
func sampleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sample")

	in, err := loadInput(cfg)
	if err != nil {
		return err
	}
	start := time.Now()
	x, err := in.Sample(cfg.SampleSize)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Drew %d realizations of %d variables in %vh %vm %vs", cfg.SampleSize, in.Dim(), hours, minutes, seconds)

	if err := writeOutput(cfg, ctx.App.Writer, in.Names(), x); err != nil {
		return fmt.Errorf("cannot write sample; %w", err)
	}

	moments := columnMoments(x, in.Dim())
	for j, name := range in.Names() {
		log.Noticef("%v: %v", name, moments[j])
	}

	printers, err := utils.NewPrinters().AddPrintToSqlite3(cfg.DbFile, sampleCreate, sampleInsert, func() [][]any {
		rows := make([][]any, len(moments))
		for j, m := range moments {
			rows[j] = []any{in.Seed(), in.Names()[j], m.Count(), m.Mean(), m.StandardDeviation(), m.Min(), m.Max()}
		}
		return rows
	})
	if err != nil {
		return err
	}
	defer printers.Close()
	return printers.Print()
}

// columnMoments computes the moments of each column of a sample.
func columnMoments(x *mat.Dense, dim int) []*statistics.Moments {
	moments := make([]*statistics.Moments, dim)
	for j := range moments {
		moments[j] = statistics.NewMoments()
		if !x.IsEmpty() {
			moments[j].UpdateAll(mat.Col(nil, j, x))
		}
	}
	return moments
}
