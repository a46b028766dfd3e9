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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lsys"
)

func newReplayCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <params.toml>",
		Short: "Draw a saved parameter record again",
		Long: `replay reads a parameter record written by an earlier run and
draws it again with the current output settings.  The grammar is not
changed, so the lines are the same as in the original drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opt.setup(cmd)
			if err != nil {
				return err
			}
			p, err := lsys.ReadParamsFile(args[0])
			if err != nil {
				return err
			}
			logger.Info("replaying", "file", args[0], "axiom", p.Axiom.String(), "depth", p.Depth)

			segs := p.Draw()
			if len(segs) == 0 {
				return fmt.Errorf("%s: %w", args[0], lsys.ErrTooFewSegments)
			}
			_, err = writeDrawing(cfg, p, segs, logger)
			return err
		},
	}
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <params.toml>",
		Short: "Describe the rules of a saved parameter record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lsys.ReadParamsFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "axiom: %s\n", p.Axiom)
			fmt.Fprintf(out, "turn angle: %g°, initial heading: %g°\n\n", p.TurnAngle, p.InitialAngle)
			fmt.Fprint(out, lsys.Explain(p.Rules))
			return nil
		},
	}
}
