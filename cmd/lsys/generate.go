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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/config"
	"seehuhn.de/go/lsys/pdfplot"
	"seehuhn.de/go/lsys/raster"
	"seehuhn.de/go/lsys/svg"
)

// fileTimeLayout is the timestamp part of output file names.
const fileTimeLayout = "20060102-150405"

func newGenerateCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Search for a random grammar and draw it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opt)
		},
	}
}

func runGenerate(cmd *cobra.Command, opt *options) error {
	cfg, logger, err := opt.setup(cmd)
	if err != nil {
		return err
	}

	seed := opt.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting search", "seed", seed, "depth", cfg.Default.RecursionDepth)

	gen := lsys.NewGenerator(cfg.Generator(), rand.New(rand.NewPCG(seed, seed)), logger)
	res, err := gen.Run(cmd.Context())
	if err != nil {
		return err
	}

	_, err = writeDrawing(cfg, res.Params, res.Segments, logger)
	return err
}

// writeDrawing post-processes the segments and writes all configured
// output files.  It returns the common base name of the files.
func writeDrawing(cfg *config.Config, p *lsys.Params, segs lsys.Segments, logger *slog.Logger) (string, error) {
	raw := len(segs)
	segs = lsys.PostProcess(segs, cfg.Default.Precision)
	if need := cfg.LSys.MinSegments; len(segs) < need {
		return "", fmt.Errorf("%w: %d unique segments, need %d", lsys.ErrTooFewSegments, len(segs), need)
	}
	logger.Debug("post-processed", "segments", raw, "unique", len(segs))

	dir := cfg.Default.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	fp, err := p.ShortFingerprint(8)
	if err != nil {
		return "", err
	}
	base := filepath.Join(dir, p.Created.Format(fileTimeLayout)+"-"+fp)
	logger.Info("writing drawing", "base", base, "rules", p.Rules.Arrows())

	size, err := writeSVG(base+".svg", cfg, p, segs, logger)
	if err != nil {
		return "", err
	}
	logger.Info("wrote SVG", "file", base+".svg", "bytes", size)

	if cfg.Output.Params {
		if err := lsys.WriteParamsFile(base+".toml", p); err != nil {
			return "", err
		}
	}
	if cfg.Output.PNG {
		if err := writePNG(base, cfg, segs); err != nil {
			return "", err
		}
	}
	if cfg.Output.PDF {
		lineCap, _ := cfg.LineCap()
		err := pdfplot.WriteFile(base+".pdf", segs, &pdfplot.Options{
			Bleed:     cfg.BleedPixels(),
			LineWidth: cfg.LineWidth(),
			Cap:       lineCap,
		})
		if err != nil {
			return "", err
		}
	}
	return base, nil
}

func writeSVG(fname string, cfg *config.Config, p *lsys.Params, segs lsys.Segments, logger *slog.Logger) (int64, error) {
	f, err := os.Create(fname)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(f)
	n, err := svg.Write(w, segs, &svg.Options{
		Entries: p.Entries(),
		Style:   cfg.Style(),
		Bleed:   cfg.BleedPixels(),
		Mini:    cfg.Output.Mini,
		Logger:  logger,
	})
	if err == nil {
		err = w.Flush()
	}
	err = errors.Join(err, f.Close())
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", fname, err)
	}
	return n, nil
}

func writePNG(base string, cfg *config.Config, segs lsys.Segments) error {
	width, height := cfg.ImageSize()
	lineCap, _ := cfg.LineCap()
	img := raster.Render(segs, &raster.Options{
		Width:     int(math.Round(width)),
		Height:    int(math.Round(height)),
		Margin:    cfg.BleedPixels(),
		LineWidth: cfg.LineWidth(),
		Cap:       lineCap,
	})
	if err := savePNG(base+".png", img); err != nil {
		return err
	}
	if n := cfg.Output.Thumbnail; n > 0 {
		return savePNG(base+"-thumb.png", raster.Thumbnail(img, n))
	}
	return nil
}

func savePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	return errors.Join(err, f.Close())
}
