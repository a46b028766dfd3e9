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

package lsys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"
)

// Errors returned by the generator.
var (
	ErrTooManyAttempts = errors.New("lsys: no drawing found within the attempt limit")
	ErrTooFewSegments  = errors.New("lsys: not enough lines to draw")
)

// HeadingPolicy selects how the initial heading of an attempt is chosen.
type HeadingPolicy int

const (
	// HeadingFixed starts every attempt at 90 degrees.
	HeadingFixed HeadingPolicy = iota

	// HeadingRandom draws the initial heading like the turn angle.
	HeadingRandom
)

// FixedHeading is the initial heading used by [HeadingFixed].
const FixedHeading = 90.0

// GeneratorConfig holds the parameters of a [Generator].
type GeneratorConfig struct {
	Title string

	// Depth is the number of rewriting passes.  It is the same for all
	// attempts of a run.
	Depth int

	// AxiomSymbols bounds the maxExtra argument of [Axiom].
	AxiomSymbols int

	// RuleLength is the number of random draws per production.
	RuleLength int

	LineLength float64
	Start      vec.Vec2

	// Divisors is the pool used by [TurnAngle].
	Divisors []int

	Heading HeadingPolicy

	// MinSegments is the smallest number of segments a drawing must have.
	MinSegments int

	// MaxAttempts limits the number of attempts.  Zero means no limit.
	MaxAttempts int

	// MaxSymbols limits the length of the expanded word.  Attempts which
	// exceed the limit are rejected.  Zero means no limit.
	MaxSymbols int
}

// DefaultGeneratorConfig returns the settings used when nothing else is
// configured.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Title:        "LSYS PARAMS",
		Depth:        5,
		AxiomSymbols: 4,
		RuleLength:   15,
		LineLength:   150,
		Start:        vec.Vec2{X: 20, Y: 20},
		Divisors:     []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
		Heading:      HeadingFixed,
		MinSegments:  5,
	}
}

// Params records everything needed to reproduce a drawing.
type Params struct {
	Title        string
	Depth        int
	Axiom        Word
	Rules        Rules
	InitialAngle float64
	TurnAngle    float64
	LineLength   float64
	Start        vec.Vec2
	Created      time.Time
}

// Draw expands the grammar and interprets the result.
func (p *Params) Draw() Segments {
	w := Expand(p.Axiom, p.Rules, p.Depth)
	return Interpret(w, p.Start, p.InitialAngle, p.LineLength, p.TurnAngle)
}

// Result is the outcome of a successful [Generator.Run].
type Result struct {
	Params   *Params
	Word     Word
	Segments Segments
	Attempts int
}

// TurnAngle returns (360/d1 * d2) mod 360 for two independently drawn
// divisors, drawing again whenever the result is exactly 360.
func TurnAngle(src Source, divisors []int) float64 {
	angle := 360.0
	for angle == 360 {
		d1 := choose(src, divisors)
		d2 := choose(src, divisors)
		angle = math.Mod(360/float64(d1)*float64(d2), 360)
	}
	return angle
}

// Generator searches for random L-systems which produce a usable drawing.
// A Generator is not safe for concurrent use.
type Generator struct {
	Config GeneratorConfig
	Source Source
	Logger *slog.Logger

	// Now returns the creation time stored in the parameters.
	// If nil, time.Now is used.
	Now func() time.Time
}

// NewGenerator returns a generator using the given configuration and
// random source.
func NewGenerator(cfg GeneratorConfig, src Source, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		Config: cfg,
		Source: src,
		Logger: logger,
	}
}

// Run tries random grammars until one draws at least MinSegments
// segments.  Unless MaxAttempts is set this can loop forever, for example
// when MinSegments is larger than any reachable drawing.  The context is
// checked between attempts.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	cfg := g.Config
	if len(cfg.Divisors) == 0 {
		return nil, errors.New("lsys: empty divisor list")
	}
	for _, d := range cfg.Divisors {
		if d == 0 {
			return nil, errors.New("lsys: zero divisor")
		}
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.MaxAttempts > 0 && attempt > cfg.MaxAttempts {
			return nil, fmt.Errorf("%w (%d attempts)", ErrTooManyAttempts, cfg.MaxAttempts)
		}

		p := g.propose()
		w, err := ExpandLimit(p.Axiom, p.Rules, p.Depth, cfg.MaxSymbols)
		if errors.Is(err, ErrTooLong) {
			logger.Debug("expansion too long, trying again",
				"attempt", attempt,
				"rules", p.Rules.String(),
				"limit", cfg.MaxSymbols)
			continue
		}
		segs := Interpret(w, p.Start, p.InitialAngle, p.LineLength, p.TurnAngle)
		if len(segs) >= cfg.MinSegments {
			logger.Info("found drawing",
				"attempt", attempt,
				"axiom", p.Axiom.String(),
				"rules", p.Rules.Arrows(),
				"segments", len(segs))
			return &Result{Params: p, Word: w, Segments: segs, Attempts: attempt}, nil
		}
		logger.Debug("not enough lines, trying again",
			"attempt", attempt,
			"word", w.String(),
			"segments", len(segs))
	}
}

// propose draws the parameters for a single attempt.
func (g *Generator) propose() *Params {
	cfg := g.Config
	src := g.Source

	axiom := Axiom(src, between(src, 1, max(cfg.AxiomSymbols, 1)))
	rules := SynthesizeRules(src, axiom, cfg.RuleLength)

	heading := FixedHeading
	if cfg.Heading == HeadingRandom {
		heading = TurnAngle(src, cfg.Divisors)
	}
	turn := TurnAngle(src, cfg.Divisors)

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return &Params{
		Title:        cfg.Title,
		Depth:        cfg.Depth,
		Axiom:        axiom,
		Rules:        rules,
		InitialAngle: heading,
		TurnAngle:    turn,
		LineLength:   cfg.LineLength,
		Start:        cfg.Start,
		Created:      now(),
	}
}
