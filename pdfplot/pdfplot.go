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

// Package pdfplot writes line drawings as single-page PDF files, for
// printing or for sending to a pen plotter.
package pdfplot

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/layout"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("pdfplot: no segments to draw")

// Options controls the appearance of the lines.
type Options struct {
	// Bleed is the margin used to compute the viewbox.
	Bleed float64

	// LineWidth in drawing units.
	LineWidth float64

	Cap graphics.LineCapStyle

	// Gray is the line colour, from 0 (black) to 1 (white).
	Gray float64
}

// WriteFile writes the segments to a new PDF file.  The page covers the
// viewbox of the drawing, with one drawing unit per PDF point.
func WriteFile(fname string, segs lsys.Segments, opt *Options) error {
	if len(segs) == 0 {
		return ErrEmpty
	}
	if opt == nil {
		opt = &Options{LineWidth: 1}
	}

	vb := layout.Compute(lsys.Bounds(segs), opt.Bleed)
	w, h := float64(vb.Width), float64(vb.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin at the bottom left, the drawing at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, -float64(vb.MinX), h + float64(vb.MinY)})

	page.SetStrokeColor(color.DeviceGray(opt.Gray))
	page.SetLineWidth(opt.LineWidth)
	page.SetLineCap(opt.Cap)
	for cmd, pts := range segs.Path() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		}
	}
	page.Stroke()

	return page.Close()
}
