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

// Package layout maps a drawing onto a page.
//
// The viewbox is derived from the bounding box of the segments, moved
// outwards or inwards by the bleed margin, and the page size is derived
// from the viewbox.  Paper helpers convert physical paper sizes to pixels.
package layout

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// ViewBox is the coordinate rectangle shown on the page, in the order
// used by the SVG viewBox attribute.
type ViewBox struct {
	MinX, MinY    int
	Width, Height int
}

func (vb ViewBox) String() string {
	return fmt.Sprintf("%d %d %d %d", vb.MinX, vb.MinY, vb.Width, vb.Height)
}

// Compute returns the viewbox for a drawing with the given bounding box.
//
// Each of the four extremes is moved by the bleed: a negative value is
// decreased by bleed, any other value is increased by bleed.  For a
// drawing in the positive quadrant this shifts the viewbox without
// changing its size.
func Compute(bbox rect.Rect, bleed float64) ViewBox {
	minX := applyBleed(bbox.LLx, bleed)
	minY := applyBleed(bbox.LLy, bleed)
	maxX := applyBleed(bbox.URx, bleed)
	maxY := applyBleed(bbox.URy, bleed)
	return ViewBox{
		MinX:   int(math.Floor(minX)),
		MinY:   int(math.Floor(minY)),
		Width:  int(math.Floor(1 + maxX - minX)),
		Height: int(math.Floor(1 + maxY - minY)),
	}
}

func applyBleed(v, bleed float64) float64 {
	if v < 0 {
		return v - bleed
	}
	return v + bleed
}

// PageSize returns the page width and height for the viewbox.
func (vb ViewBox) PageSize() (width, height int) {
	return vb.Width - vb.MinX, vb.Height - vb.MinY
}

// Paper is a sheet size in millimetres, given in portrait orientation.
type Paper struct {
	Width, Height float64
}

// Standard paper sizes.
var (
	A3     = Paper{297, 420}
	A4     = Paper{210, 297}
	A5     = Paper{148, 210}
	Letter = Paper{215.9, 279.4}
)

var papers = map[string]Paper{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
}

// PaperByName looks up a standard paper size.  Case is ignored.
func PaperByName(name string) (Paper, bool) {
	p, ok := papers[strings.ToLower(name)]
	return p, ok
}

// ImageSize returns the paper size in pixels at the given resolution.
// In landscape orientation width and height are swapped.
func ImageSize(p Paper, ppmm float64, landscape bool) (width, height float64) {
	width, height = p.Width*ppmm, p.Height*ppmm
	if landscape {
		width, height = height, width
	}
	return width, height
}

// DrawableArea returns the part of a width x height image which lies
// inside the bleed margin.  If the margin is too large for the image, the
// area collapses to the centre line.
func DrawableArea(width, height, bleed float64) rect.Rect {
	bx := min(bleed, width/2)
	by := min(bleed, height/2)
	return rect.Rect{
		LLx: bx,
		LLy: by,
		URx: width - bx,
		URy: height - by,
	}
}
