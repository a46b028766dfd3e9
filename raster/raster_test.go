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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lsys"
	"seehuhn.de/go/lsys/testcases"
)

// coverageMap collects the emitted coverage values by pixel.
type coverageMap map[[2]int]float64

func (m coverageMap) emit(y, xMin int, coverage []float32) {
	for i, c := range coverage {
		m[[2]int{xMin + i, y}] += float64(c)
	}
}

func (m coverageMap) total() float64 {
	var sum float64
	for _, c := range m {
		sum += c
	}
	return sum
}

func (m coverageMap) max() float64 {
	var res float64
	for _, c := range m {
		res = max(res, c)
	}
	return res
}

var clip100 = rect.Rect{URx: 100, URy: 100}

func TestFillSquare(t *testing.T) {
	r := NewRasterizer(clip100)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 1, Y: 4}).
		Close()

	m := coverageMap{}
	r.FillNonZero(p, m.emit)

	if len(m) != 9 {
		t.Errorf("got %d pixels, want 9", len(m))
	}
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if c := m[[2]int{x, y}]; math.Abs(c-1) > 1e-6 {
				t.Errorf("pixel (%d,%d): coverage %g, want 1", x, y, c)
			}
		}
	}
}

func TestFillPartialPixel(t *testing.T) {
	r := NewRasterizer(clip100)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0.5, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 1}).
		LineTo(vec.Vec2{X: 0.5, Y: 1}).
		Close()

	m := coverageMap{}
	r.FillNonZero(p, m.emit)

	if c := m[[2]int{0, 0}]; math.Abs(c-0.5) > 1e-6 {
		t.Errorf("left pixel: coverage %g, want 0.5", c)
	}
	if c := m[[2]int{1, 0}]; math.Abs(c-1) > 1e-6 {
		t.Errorf("right pixel: coverage %g, want 1", c)
	}
}

// The triangle (0,0), (10,0), (10,1) has the diagonal edge y = x/10, so
// pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()
	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})

	m := coverageMap{}
	r.FillNonZero(p, m.emit)
	for x := range 10 {
		want := float64(2*x+1) / 20
		if got := m[[2]int{x, 0}]; math.Abs(got-want) > 1e-6 {
			t.Errorf("pixel %d: coverage %g, want %g", x, got, want)
		}
	}
}

func TestFillTriangle(t *testing.T) {
	r := NewRasterizer(clip100)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10.3, Y: 5.7}).
		LineTo(vec.Vec2{X: 60.1, Y: 20.2}).
		LineTo(vec.Vec2{X: 25.9, Y: 70.4}).
		Close()

	m := coverageMap{}
	r.FillNonZero(p, m.emit)

	// shoelace formula
	want := math.Abs((60.1-10.3)*(70.4-5.7)-(25.9-10.3)*(20.2-5.7)) / 2
	if got := m.total(); math.Abs(got-want) > 1e-2 {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestFillClipped(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -5, Y: -5}).
		LineTo(vec.Vec2{X: 5, Y: -5}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: -5, Y: 5}).
		Close()

	m := coverageMap{}
	r.FillNonZero(p, m.emit)
	if got := m.total(); math.Abs(got-25) > 1e-6 {
		t.Errorf("visible area %g, want 25", got)
	}
}

func TestFillCircle(t *testing.T) {
	r := NewRasterizer(clip100)
	const k = 0.5522847498
	c, rad := vec.Vec2{X: 50, Y: 50}, 30.0
	pt := func(x, y float64) vec.Vec2 { return c.Add(vec.Vec2{X: x * rad, Y: y * rad}) }
	p := (&path.Data{}).
		MoveTo(pt(1, 0)).
		CubeTo(pt(1, k), pt(k, 1), pt(0, 1)).
		CubeTo(pt(-k, 1), pt(-1, k), pt(-1, 0)).
		CubeTo(pt(-1, -k), pt(-k, -1), pt(0, -1)).
		CubeTo(pt(k, -1), pt(1, -k), pt(1, 0)).
		Close()

	m := coverageMap{}
	r.FillNonZero(p, m.emit)

	want := math.Pi * rad * rad
	if got := m.total(); math.Abs(got-want)/want > 0.005 {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestStrokeCaps(t *testing.T) {
	line := lsys.Segments{{A: vec.Vec2{X: 2, Y: 5}, B: vec.Vec2{X: 8, Y: 5}}}
	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{"butt", graphics.LineCapButt, 12, 1e-6},
		{"square", graphics.LineCapSquare, 16, 1e-6},
		{"round", graphics.LineCapRound, 12 + math.Pi, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasterizer(clip100)
			r.Width = 2
			r.Cap = tc.cap
			r.Flatness = 0.01

			m := coverageMap{}
			r.StrokeSegments(line, m.emit)
			if got := m.total(); math.Abs(got-tc.area) > tc.tol {
				t.Errorf("area %g, want %g", got, tc.area)
			}
		})
	}
}

func TestStrokeDiagonal(t *testing.T) {
	r := NewRasterizer(clip100)
	r.Width = 4
	r.Cap = graphics.LineCapButt
	segs := lsys.Segments{{A: vec.Vec2{X: 10, Y: 10}, B: vec.Vec2{X: 40, Y: 50}}}

	m := coverageMap{}
	r.StrokeSegments(segs, m.emit)
	if got, want := m.total(), 50.0*4; math.Abs(got-want) > 1e-3 {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestStrokeOverlap(t *testing.T) {
	s := lsys.Segment{A: vec.Vec2{X: 10, Y: 20}, B: vec.Vec2{X: 30, Y: 20}}
	back := lsys.Segment{A: s.B, B: s.A}

	// pixel-aligned, so that all coverage values are 0 or 1
	single := coverageMap{}
	r := NewRasterizer(clip100)
	r.Width = 2
	r.Cap = graphics.LineCapButt
	r.StrokeSegments(lsys.Segments{s}, single.emit)

	double := coverageMap{}
	r.StrokeSegments(lsys.Segments{s, back, s}, double.emit)

	if math.Abs(single.total()-double.total()) > 1e-6 {
		t.Errorf("overlapping lines: area %g, want %g", double.total(), single.total())
	}
	if double.max() > 1 {
		t.Errorf("coverage %g exceeds 1", double.max())
	}
}

func TestStrokeDot(t *testing.T) {
	p := vec.Vec2{X: 50, Y: 50}
	dot := lsys.Segments{{A: p, B: p}}
	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{"butt", graphics.LineCapButt, 0, 0},
		{"square", graphics.LineCapSquare, 36, 1e-6},
		{"round", graphics.LineCapRound, 9 * math.Pi, 0.2},
	}
	for _, tc := range cases {
		r := NewRasterizer(clip100)
		r.Width = 6
		r.Cap = tc.cap
		r.Flatness = 0.01

		m := coverageMap{}
		r.StrokeSegments(dot, m.emit)
		if got := m.total(); math.Abs(got-tc.area) > tc.tol {
			t.Errorf("%s: area %g, want %g", tc.name, got, tc.area)
		}
	}
}

func TestStrokeCTM(t *testing.T) {
	r := NewRasterizer(clip100)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}
	r.Width = 1
	r.Cap = graphics.LineCapButt
	segs := lsys.Segments{{A: vec.Vec2{X: 0, Y: 5}, B: vec.Vec2{X: 10, Y: 5}}}

	m := coverageMap{}
	r.StrokeSegments(segs, m.emit)
	// 20 device pixels long, 2 device pixels wide, starting at x = 10
	if got := m.total(); math.Abs(got-40) > 1e-6 {
		t.Errorf("area %g, want 40", got)
	}
	if _, ok := m[[2]int{9, 20}]; ok {
		t.Error("unexpected coverage left of the line")
	}
}

func TestRender(t *testing.T) {
	const margin = 10
	opt := &Options{
		Width:     200,
		Height:    120,
		Margin:    margin,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	}

	for _, tc := range testcases.All["classic"] {
		t.Run(tc.Name, func(t *testing.T) {
			img := Render(tc.Draw(), opt)
			if img.Bounds().Dx() != opt.Width || img.Bounds().Dy() != opt.Height {
				t.Fatalf("wrong image size %v", img.Bounds())
			}

			dark := 0
			for y := range opt.Height {
				for x := range opt.Width {
					v := img.GrayAt(x, y).Y
					if v < 128 {
						dark++
					}
					inside := x >= margin && x < opt.Width-margin &&
						y >= margin && y < opt.Height-margin
					if !inside && v != 0xFF {
						t.Fatalf("pixel (%d,%d) in the margin is %d", x, y, v)
					}
				}
			}
			if dark == 0 {
				t.Error("nothing drawn")
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render(nil, &Options{Width: 5, Height: 5, LineWidth: 1})
	for _, v := range img.Pix {
		if v != 0xFF {
			t.Fatal("empty drawing is not blank")
		}
	}
}

func TestThumbnail(t *testing.T) {
	img := Render(testcases.All["classic"][0].Draw(), &Options{
		Width:     400,
		Height:    200,
		LineWidth: 3,
	})

	th := Thumbnail(img, 100)
	if th.Bounds().Dx() != 100 || th.Bounds().Dy() != 50 {
		t.Errorf("thumbnail size %v, want 100x50", th.Bounds())
	}

	same := Thumbnail(img, 1000)
	if !same.Bounds().Eq(img.Bounds()) {
		t.Errorf("small image was resized to %v", same.Bounds())
	}
}
