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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lsys"
)

// StrokeSegments draws every segment as a separate line, using Width and
// Cap.  Overlapping lines are merged, so that every pixel is covered at
// most once.  The slice passed to emit is only valid during the call.
func (r *Rasterizer) StrokeSegments(segs lsys.Segments, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	d := r.Width / 2
	if d <= 0 {
		return
	}
	for _, s := range segs {
		r.outline = r.outline[:0]
		r.lineOutline(s.A, s.B, d)
		r.addOutline()
	}
	r.scan(emit)
}

// lineOutline builds the closed outline of a single stroked line into
// r.outline.  All outlines run in the same direction, which makes the
// nonzero rule compute their union.
func (r *Rasterizer) lineOutline(a, b vec.Vec2, d float64) {
	dir := b.Sub(a)
	length := dir.Length()
	if length < zeroLengthThreshold {
		r.dotOutline(a, d)
		return
	}
	t := dir.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	r.addCap(a, t.Mul(-1), d)
}

// dotOutline handles lines of length zero.  Butt caps draw nothing, square
// caps an axis-aligned square and round caps a disc.
func (r *Rasterizer) dotOutline(p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		r.outline = append(r.outline,
			vec.Vec2{X: p.X - d, Y: p.Y - d},
			vec.Vec2{X: p.X - d, Y: p.Y + d},
			vec.Vec2{X: p.X + d, Y: p.Y + d},
			vec.Vec2{X: p.X + d, Y: p.Y - d})
	case graphics.LineCapRound:
		r.addArc(p, d, vec.Vec2{X: 1}, -2*math.Pi, true)
	}
}

// addCap adds the end cap at p, where t is the unit tangent pointing away
// from the line.  The outline arrives at p + d*n and continues from
// p - d*n, with n the normal of t.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// half turn from n through t to -n; the end points are added by
		// the caller
		r.addArc(p, d, n, -math.Pi, false)
	}
}

// addArc appends points on the circle around center with the given
// radius, starting in direction startDir and turning by sweep radians.
// The number of points is chosen so that the chords stay within the
// flatness tolerance.  If includeStart is false, the points at both ends
// of the arc are left out.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		// a chord spanning angle θ deviates from the circle by r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	if !includeStart && n < 2 {
		n = 2 // keep at least the middle of the arc
	}

	first, last := 0, n
	if !includeStart {
		first, last = 1, n-1
	}
	dt := sweep / float64(n)
	for i := first; i <= last; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addOutline closes r.outline and adds its edges.
func (r *Rasterizer) addOutline() {
	k := len(r.outline)
	if k < 3 {
		return
	}
	for i := range k {
		r.addEdge(r.outline[i], r.outline[(i+1)%k])
	}
}
