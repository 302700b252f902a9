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
	"fmt"
	"math"
	"math/rand"

	"github.com/Fantom-foundation/uqinput/logger"
	"github.com/Fantom-foundation/uqinput/stochastic/distribution"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enums of argument modes used by subcommands
const (
	NoArgs     ArgumentMode = iota // requires no arguments
	PathArg                        // requires 1 argument: path to file
	OneToNArgs                     // requires at least one argument
)

// Default values of the sampling configuration.
const (
	DefaultSampleSize = 1000
	DefaultBins       = 50
)

// Config represents execution configuration for the uqinput commands.
type Config struct {
	AppName     string
	CommandName string
	Args        []string // positional arguments

	Bins        int       // number of histogram and test bins
	Bounds      []float64 // explicit truncation bounds of a marginal
	DbFile      string    // sqlite3 database for recording results
	Dimension   int       // dimension of a canonical input
	Input       string    // path to an input spec in JSON or YAML format
	Kind        string    // distribution kind of a marginal
	LogLevel    string    // level of the logging of the app action
	Max         float64   // upper bound of a canonical input
	Min         float64   // lower bound of a canonical input
	Output      string    // output file; compressed by .gz or .bz2 suffix
	Params      []float64 // parameters of a marginal
	Port        string    // port of the report web-server
	Quiet       bool      // disable printing of results to the console
	RandomSeed  int64     // set random seed for sampling; negative selects a random seed
	SampleSize  int       // number of realizations to draw
	Description string    // description of the input
}

type configContext struct {
	cfg *Config
	ctx *cli.Context
	log logger.Logger
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *configContext {
	return &configContext{
		log: logger.NewLogger(cfg.LogLevel, "Config"),
		cfg: cfg,
		ctx: ctx,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg, _, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot read flags; %w", err)
	}

	cc := NewConfigContext(cfg, ctx)

	if err := cc.setArgs(ctx.Args().Slice(), mode); err != nil {
		return nil, fmt.Errorf("unable to parse cli arguments; %w", err)
	}

	if err := cc.adjustMissingConfigValues(); err != nil {
		return nil, fmt.Errorf("cannot adjust missing config values; %w", err)
	}

	// the log level may have changed with the quiet flag
	cc.log = logger.NewLogger(cfg.LogLevel, "Config")
	cc.reportNewConfig()

	return cfg, nil
}

// setArgs checks the number of positional arguments for the argument mode.
func (cc *configContext) setArgs(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
		if len(args) != 0 {
			return fmt.Errorf("command requires no arguments, got %d", len(args))
		}
	case PathArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires exactly one path argument, got %d", len(args))
		}
	case OneToNArgs:
		if len(args) < 1 {
			return fmt.Errorf("command requires at least one argument")
		}
	default:
		return fmt.Errorf("unknown argument mode %d", mode)
	}
	cc.cfg.Args = args
	return nil
}

// adjustMissingConfigValues fills the values the user did not provide and
// checks the ranges of the given ones.
func (cc *configContext) adjustMissingConfigValues() error {
	cfg := cc.cfg

	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = int64(rand.Uint32())
	}
	if cfg.SampleSize < 0 {
		return fmt.Errorf("%w: negative sample size %d", distribution.ErrInvalidArgument, cfg.SampleSize)
	}
	if cfg.Bins < 2 {
		return fmt.Errorf("%w: at least two bins are required, got %d", distribution.ErrInvalidArgument, cfg.Bins)
	}
	if len(cfg.Bounds) != 0 && len(cfg.Bounds) != 2 {
		return fmt.Errorf("%w: bounds require two values, got %d", distribution.ErrInvalidArgument, len(cfg.Bounds))
	}
	if cfg.Dimension < 1 {
		return fmt.Errorf("%w: dimension %d must be positive", distribution.ErrInvalidArgument, cfg.Dimension)
	}
	if math.IsNaN(cfg.Min) || math.IsNaN(cfg.Max) || cfg.Min >= cfg.Max {
		return fmt.Errorf("%w: invalid range [%v, %v]", distribution.ErrInvalidArgument, cfg.Min, cfg.Max)
	}
	if cfg.Quiet && cfg.LogLevel == logger.LogLevelFlag.Value {
		cfg.LogLevel = logging.WARNING.String()
	}
	return nil
}

// reportNewConfig logs out the state of config in current run
func (cc *configContext) reportNewConfig() {
	cfg := cc.cfg
	log := cc.log

	log.Noticef("Run config:")
	log.Infof("Command: %v %v", cfg.AppName, cfg.CommandName)
	log.Infof("Random seed: %v", cfg.RandomSeed)
	log.Infof("Sample size: %v", cfg.SampleSize)
	if cfg.Input != "" {
		log.Infof("Input spec: %v", cfg.Input)
	}
	if cfg.Kind != "" {
		log.Infof("Distribution: %v%v", cfg.Kind, cfg.Params)
	}
	if len(cfg.Bounds) == 2 {
		log.Infof("Truncation bounds: [%v, %v]", cfg.Bounds[0], cfg.Bounds[1])
	}
	if cfg.Output != "" {
		log.Infof("Output: %v", cfg.Output)
	}
	if cfg.DbFile != "" {
		log.Infof("Results database: %v", cfg.DbFile)
	}
	if cfg.SampleSize > 10_000_000 {
		log.Warning("Large sample size, sampling may take a while and use much memory")
	}
}
