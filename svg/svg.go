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

// Package svg writes line drawings as SVG documents.
package svg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/layout"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("svg: no segments to draw")

// Options controls the output.
type Options struct {
	// Entries are written as a comment at the top of the document.
	Entries []lsys.Entry

	// Style holds the presentation attributes of the lines, for example
	// "stroke" or "stroke-width".
	Style map[string]string

	// Bleed is the margin used to compute the viewbox.
	Bleed float64

	// Mini removes the line breaks between elements.
	Mini bool

	Logger *slog.Logger
}

// Write writes the segments as an SVG document to w and returns the
// number of bytes written.
func Write(w io.Writer, segs lsys.Segments, opt *Options) (int64, error) {
	if len(segs) == 0 {
		return 0, ErrEmpty
	}
	if opt == nil {
		opt = &Options{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := &countingWriter{w: w}
	var body io.Writer = out
	if opt.Mini {
		body = &squeezeWriter{w: out}
	}

	vb := layout.Compute(lsys.Bounds(segs), opt.Bleed)
	width, height := vb.PageSize()

	canvas := svgo.New(body)
	canvas.Startview(width, height, vb.MinX, vb.MinY, vb.Width, vb.Height)

	// The comment keeps one entry per line, also in mini mode.
	if len(opt.Entries) > 0 {
		io.WriteString(out, Comment(opt.Entries))
		if !opt.Mini {
			io.WriteString(out, "\n")
		}
	}

	attrs := styleAttrs(opt.Style)
	if len(attrs) == 0 {
		logger.Warn("empty line style, the drawing may be invisible")
	}
	canvas.Group(attrs...)
	for _, s := range segs {
		canvas.Path(pathData(s))
	}
	canvas.Gend()
	canvas.End()

	return out.n, out.err
}

// Comment formats the entries as an XML comment, one "KEY: value" line
// per entry.  The value of RULES has its double hyphens broken up, since
// "--" is not allowed inside XML comments.
func Comment(entries []lsys.Entry) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	for _, e := range entries {
		v := e.Value
		if e.Key == "RULES" {
			v = EscapeRules(v)
		}
		fmt.Fprintf(&b, "%s: %s\n", e.Key, v)
	}
	b.WriteString("-->")
	return b.String()
}

// EscapeRules replaces "--" by "- -" and then any remaining "--" by
// "+ - -".  The second step only matches where the first step left two
// hyphens next to each other, as in "---".
func EscapeRules(s string) string {
	s = strings.ReplaceAll(s, "--", "- -")
	return strings.ReplaceAll(s, "--", "+ - -")
}

// styleAttrs converts a style map to attribute strings, sorted by name.
func styleAttrs(style map[string]string) []string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	attrs := make([]string, len(keys))
	for i, k := range keys {
		attrs[i] = fmt.Sprintf("%s=%q", k, style[k])
	}
	return attrs
}

func pathData(s lsys.Segment) string {
	return "M" + coord(s.A.X) + " " + coord(s.A.Y) +
		" L" + coord(s.B.X) + " " + coord(s.B.Y)
}

func coord(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// countingWriter records the number of bytes written and the first error.
// Later writes after an error are dropped.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// squeezeWriter removes line breaks together with the indentation which
// follows them.  Where the break separated two words, a single space is
// kept.
type squeezeWriter struct {
	w       io.Writer
	pending bool
	last    byte
}

func (s *squeezeWriter) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p))
	for _, c := range p {
		switch {
		case c == '\n' || c == '\r':
			s.pending = true
			continue
		case s.pending && (c == ' ' || c == '\t'):
			continue
		case s.pending:
			if s.last != 0 && s.last != '>' && c != '<' {
				buf = append(buf, ' ')
			}
			s.pending = false
		}
		buf = append(buf, c)
		s.last = c
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
