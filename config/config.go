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

// Package config reads the settings file of the lsys command.
//
// The file has three tables.  DEFAULT holds the page and output settings,
// LSYS the parameters of the random grammars and OUTPUT selects the files
// to write.  Files ending in .yaml or .yml are read as YAML, everything
// else as TOML.  Settings missing from the file keep their default values.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/layout"
)

// ErrInvalid is returned by [Config.Validate].
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete settings file.
type Config struct {
	Default Page   `toml:"DEFAULT" yaml:"DEFAULT"`
	LSys    LSys   `toml:"LSYS" yaml:"LSYS"`
	Output  Output `toml:"OUTPUT" yaml:"OUTPUT"`
}

// Page holds the page settings.
type Page struct {
	OutputDir string `toml:"OUTPUT_DIR" yaml:"OUTPUT_DIR"`

	// Paper names a standard paper size.  If set, it overrides PaperSize.
	Paper string `toml:"PAPER" yaml:"PAPER"`

	// PaperSize is width and height in millimetres.
	PaperSize []float64 `toml:"PAPER_SIZE" yaml:"PAPER_SIZE"`

	PPMM      float64 `toml:"PPMM" yaml:"PPMM"`
	Landscape bool    `toml:"LANDSCAPE" yaml:"LANDSCAPE"`

	// Bleed is the page margin in millimetres.
	Bleed float64 `toml:"BLEED" yaml:"BLEED"`

	Precision      int            `toml:"PRECISION" yaml:"PRECISION"`
	RecursionDepth int            `toml:"RECURSION_DEPTH" yaml:"RECURSION_DEPTH"`
	LineStyle      map[string]any `toml:"LINE_STYLE" yaml:"LINE_STYLE"`
}

// LSys holds the parameters of the grammar search.
type LSys struct {
	Title         string    `toml:"TITLE" yaml:"TITLE"`
	LineLength    float64   `toml:"LINE_LENGTH" yaml:"LINE_LENGTH"`
	StartPos      []float64 `toml:"START_POS" yaml:"START_POS"`
	AngleDivisors []int     `toml:"ANGLE_DIVISORS" yaml:"ANGLE_DIVISORS"`
	RuleLength    int       `toml:"RULE_LENGTH" yaml:"RULE_LENGTH"`
	AxiomSymbols  int       `toml:"AXIOM_SYMBOLS" yaml:"AXIOM_SYMBOLS"`
	MinSegments   int       `toml:"MIN_SEGMENTS" yaml:"MIN_SEGMENTS"`

	// Heading is "fixed" or "random".
	Heading string `toml:"HEADING" yaml:"HEADING"`

	MaxAttempts int `toml:"MAX_ATTEMPTS" yaml:"MAX_ATTEMPTS"`
	MaxSymbols  int `toml:"MAX_SYMBOLS" yaml:"MAX_SYMBOLS"`
}

// Output selects the files written for every drawing.
type Output struct {
	// Mini writes the SVG file without line breaks.
	Mini bool `toml:"MINI" yaml:"MINI"`

	// Params writes the parameter record next to the SVG file.
	Params bool `toml:"PARAMS" yaml:"PARAMS"`

	PNG bool `toml:"PNG" yaml:"PNG"`

	// Thumbnail is the longer side of the PNG thumbnail in pixels.
	// Zero disables the thumbnail.
	Thumbnail int `toml:"THUMBNAIL" yaml:"THUMBNAIL"`

	PDF bool `toml:"PDF" yaml:"PDF"`
}

// Default returns the built-in settings.
func Default() *Config {
	gen := lsys.DefaultGeneratorConfig()
	return &Config{
		Default: Page{
			OutputDir:      "output",
			PaperSize:      []float64{layout.A4.Width, layout.A4.Height},
			PPMM:           4,
			Bleed:          10,
			Precision:      3,
			RecursionDepth: gen.Depth,
			LineStyle: map[string]any{
				"fill":            "none",
				"stroke":          "black",
				"stroke-width":    "2",
				"stroke-linecap":  "round",
				"stroke-linejoin": "round",
			},
		},
		LSys: LSys{
			Title:         gen.Title,
			LineLength:    gen.LineLength,
			StartPos:      []float64{gen.Start.X, gen.Start.Y},
			AngleDivisors: slices.Clone(gen.Divisors),
			RuleLength:    gen.RuleLength,
			AxiomSymbols:  gen.AxiomSymbols,
			MinSegments:   gen.MinSegments,
			Heading:       "fixed",
		},
		Output: Output{
			Params: true,
		},
	}
}

// Load reads the named settings file on top of the defaults.  If the
// file does not exist, the defaults are returned.
func Load(fname string) (*Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}

	f, err := os.Open(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		err = decodeYAML(f, cfg)
	default:
		err = decodeTOML(f, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", fname, err)
	}
	return cfg, nil
}

func decodeTOML(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil // empty file
	}
	return err
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	d := &c.Default
	if _, err := c.Paper(); err != nil {
		return err
	}
	if d.PPMM <= 0 {
		return invalid("PPMM must be positive, not %g", d.PPMM)
	}
	if d.Bleed < 0 {
		return invalid("BLEED must not be negative, not %g", d.Bleed)
	}
	if d.Precision < 0 || d.Precision > 15 {
		return invalid("PRECISION must be between 0 and 15, not %d", d.Precision)
	}
	if d.RecursionDepth < 0 {
		return invalid("RECURSION_DEPTH must not be negative, not %d", d.RecursionDepth)
	}

	l := &c.LSys
	if len(l.StartPos) != 2 {
		return invalid("START_POS needs two values, not %d", len(l.StartPos))
	}
	if len(l.AngleDivisors) == 0 {
		return invalid("ANGLE_DIVISORS must not be empty")
	}
	if slices.Contains(l.AngleDivisors, 0) {
		return invalid("ANGLE_DIVISORS must not contain 0")
	}
	if l.RuleLength < 0 || l.AxiomSymbols < 0 || l.MinSegments < 0 {
		return invalid("RULE_LENGTH, AXIOM_SYMBOLS and MIN_SEGMENTS must not be negative")
	}
	if l.MaxAttempts < 0 || l.MaxSymbols < 0 {
		return invalid("MAX_ATTEMPTS and MAX_SYMBOLS must not be negative")
	}
	if _, err := c.heading(); err != nil {
		return err
	}
	if _, err := c.LineCap(); err != nil {
		return err
	}
	if c.Output.Thumbnail < 0 {
		return invalid("THUMBNAIL must not be negative, not %d", c.Output.Thumbnail)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Paper returns the paper size in millimetres, in portrait orientation.
func (c *Config) Paper() (layout.Paper, error) {
	d := &c.Default
	if d.Paper != "" {
		p, ok := layout.PaperByName(d.Paper)
		if !ok {
			return layout.Paper{}, invalid("unknown PAPER %q", d.Paper)
		}
		return p, nil
	}
	if len(d.PaperSize) != 2 || d.PaperSize[0] <= 0 || d.PaperSize[1] <= 0 {
		return layout.Paper{}, invalid("PAPER_SIZE needs two positive values")
	}
	return layout.Paper{Width: d.PaperSize[0], Height: d.PaperSize[1]}, nil
}

// ImageSize returns the page size in pixels.
func (c *Config) ImageSize() (width, height float64) {
	p, err := c.Paper()
	if err != nil {
		p = layout.A4
	}
	return layout.ImageSize(p, c.Default.PPMM, c.Default.Landscape)
}

// BleedPixels returns the bleed margin in pixels.
func (c *Config) BleedPixels() float64 {
	return c.Default.Bleed * c.Default.PPMM
}

// Style returns the line style as SVG presentation attributes.
func (c *Config) Style() map[string]string {
	res := make(map[string]string, len(c.Default.LineStyle))
	for k, v := range c.Default.LineStyle {
		res[k] = fmt.Sprint(v)
	}
	return res
}

// LineWidth returns the stroke-width of the line style, or 1 if none is
// set.
func (c *Config) LineWidth() float64 {
	v, ok := c.Style()["stroke-width"]
	if !ok {
		return 1
	}
	w, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil || w <= 0 {
		return 1
	}
	return w
}

// LineCap returns the stroke-linecap of the line style.  The SVG default
// is butt.
func (c *Config) LineCap() (graphics.LineCapStyle, error) {
	switch v := c.Style()["stroke-linecap"]; v {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return graphics.LineCapButt, invalid("unknown stroke-linecap %q", v)
	}
}

func (c *Config) heading() (lsys.HeadingPolicy, error) {
	switch strings.ToLower(c.LSys.Heading) {
	case "", "fixed":
		return lsys.HeadingFixed, nil
	case "random":
		return lsys.HeadingRandom, nil
	default:
		return lsys.HeadingFixed, invalid("unknown HEADING %q", c.LSys.Heading)
	}
}

// Generator returns the settings for [lsys.Generator].  The
// configuration must have been validated.
func (c *Config) Generator() lsys.GeneratorConfig {
	l := &c.LSys
	heading, _ := c.heading()
	var start vec.Vec2
	if len(l.StartPos) == 2 {
		start = vec.Vec2{X: l.StartPos[0], Y: l.StartPos[1]}
	}
	return lsys.GeneratorConfig{
		Title:        l.Title,
		Depth:        c.Default.RecursionDepth,
		AxiomSymbols: l.AxiomSymbols,
		RuleLength:   l.RuleLength,
		LineLength:   l.LineLength,
		Start:        start,
		Divisors:     slices.Clone(l.AngleDivisors),
		Heading:      heading,
		MinSegments:  l.MinSegments,
		MaxAttempts:  l.MaxAttempts,
		MaxSymbols:   l.MaxSymbols,
	}
}
