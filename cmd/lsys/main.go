// seehuhn.de/go/lsys - generative L-system line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command lsys draws random L-systems.
//
// Every run searches for a random grammar which draws enough lines, and
// writes the drawing as an SVG file together with a record of its
// parameters.  A record can later be drawn again with "lsys replay", or
// described in words with "lsys explain".
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lsys/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lsys:", err)
		os.Exit(1)
	}
}

// options holds the command line flags shared by all commands.
type options struct {
	configFile  string
	seed        uint64
	maxAttempts int
	verbose     bool
	png         bool
	pdf         bool
	outDir      string
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	root := &cobra.Command{
		Use:   "lsys",
		Short: "Generate line art from random L-systems",
		Long: `lsys searches for random L-system grammars and draws them.

Without a sub-command, a single new drawing is generated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opt)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opt.configFile, "config", "c", "config.toml", "settings file (TOML or YAML)")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "log every attempt")
	flags.StringVarP(&opt.outDir, "out", "o", "", "output directory, overrides OUTPUT_DIR")
	flags.BoolVar(&opt.png, "png", false, "also write a PNG preview")
	flags.BoolVar(&opt.pdf, "pdf", false, "also write a PDF file")
	flags.Uint64Var(&opt.seed, "seed", 0, "seed of the random generator (0 picks one)")
	flags.IntVar(&opt.maxAttempts, "max-attempts", 0, "give up after this many grammars (0 means never)")

	root.AddCommand(
		newGenerateCmd(opt),
		newReplayCmd(opt),
		newExplainCmd(),
	)
	return root
}

// setup loads the settings and applies the command line overrides.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	if o.outDir != "" {
		cfg.Default.OutputDir = o.outDir
	}
	if o.maxAttempts > 0 {
		cfg.LSys.MaxAttempts = o.maxAttempts
	}
	if o.png {
		cfg.Output.PNG = true
	}
	if o.pdf {
		cfg.Output.PDF = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger.Debug("settings loaded", "file", o.configFile, "output_dir", cfg.Default.OutputDir)
	return cfg, logger, nil
}
