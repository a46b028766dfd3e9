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

package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/layout"
)

// Options describes the preview image.
type Options struct {
	// Width and Height give the image size in pixels.
	Width, Height int

	// Margin is the blank border around the drawing, in pixels.
	Margin float64

	// LineWidth is the line width in pixels.
	LineWidth float64

	Cap graphics.LineCapStyle
}

// Render draws the segments in black on a white image.  The drawing is
// scaled uniformly to fill the image inside the margin, and centred.
func Render(segs lsys.Segments, opt *Options) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, opt.Width, opt.Height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	if len(segs) == 0 {
		return img
	}

	lw := max(opt.LineWidth, 0)
	area := layout.DrawableArea(float64(opt.Width), float64(opt.Height), opt.Margin+lw/2)
	scale, ctm := fit(lsys.Bounds(segs), area)

	r := NewRasterizer(rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)})
	r.CTM = ctm
	r.Width = lw / scale
	r.Cap = opt.Cap
	r.StrokeSegments(segs, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(math.Round(255 * float64(1-c)))
		}
	})
	return img
}

// fit returns the uniform scale factor and the transformation which maps
// bbox into the centre of area.
func fit(bbox, area rect.Rect) (float64, matrix.Matrix) {
	bw, bh := bbox.URx-bbox.LLx, bbox.URy-bbox.LLy
	aw, ah := area.URx-area.LLx, area.URy-area.LLy

	scale := math.Inf(1)
	if bw > 0 {
		scale = aw / bw
	}
	if bh > 0 {
		scale = min(scale, ah/bh)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	dx := area.LLx + (aw-bw*scale)/2 - bbox.LLx*scale
	dy := area.LLy + (ah-bh*scale)/2 - bbox.LLy*scale
	return scale, matrix.Matrix{scale, 0, 0, scale, dx, dy}
}

// Thumbnail returns a copy of img scaled down so that the longer side is
// maxSide pixels.  Images which are already small enough are copied
// without scaling.
func Thumbnail(img image.Image, maxSide int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if longest := max(w, h); longest > maxSide && maxSide > 0 {
		w = max(1, w*maxSide/longest)
		h = max(1, h*maxSide/longest)
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
