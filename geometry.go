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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Round rounds all coordinates to the given number of decimal places.
// Halfway cases are rounded away from zero.
func Round(segs Segments, precision int) Segments {
	scale := math.Pow(10, float64(precision))
	round := func(x float64) float64 {
		r := math.Round(x*scale) / scale
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return x
		}
		return r
	}
	res := make(Segments, len(segs))
	for i, s := range segs {
		res[i] = Segment{
			A: vec.Vec2{X: round(s.A.X), Y: round(s.A.Y)},
			B: vec.Vec2{X: round(s.B.X), Y: round(s.B.Y)},
		}
	}
	return res
}

// Dedup removes segments which exactly repeat an earlier segment.
// Reversed copies (B to A) are considered different segments.
func Dedup(segs Segments) Segments {
	seen := make(map[Segment]struct{}, len(segs))
	res := make(Segments, 0, len(segs))
	for _, s := range segs {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}

// Bounds returns the smallest rectangle containing all end points.
// The result is the zero rectangle if segs is empty.
func Bounds(segs Segments) rect.Rect {
	if len(segs) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, s := range segs {
		for _, p := range [2]vec.Vec2{s.A, s.B} {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}

// Translate shifts the drawing so that the smallest x and the smallest y
// coordinate both become exactly zero.
func Translate(segs Segments) Segments {
	if len(segs) == 0 {
		return Segments{}
	}
	b := Bounds(segs)
	shift := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X - b.LLx, Y: p.Y - b.LLy}
	}
	res := make(Segments, len(segs))
	for i, s := range segs {
		res[i] = Segment{A: shift(s.A), B: shift(s.B)}
	}
	return res
}

// PostProcess prepares a drawing for output: coordinates are rounded to
// precision decimal places, duplicate segments are removed and the result
// is translated into the non-negative quadrant.
func PostProcess(segs Segments, precision int) Segments {
	return Translate(Dedup(Round(segs, precision)))
}
