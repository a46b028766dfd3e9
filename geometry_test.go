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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func seg(ax, ay, bx, by float64) Segment {
	return Segment{A: vec.Vec2{X: ax, Y: ay}, B: vec.Vec2{X: bx, Y: by}}
}

func randomSegments(src *rand.Rand, n int) Segments {
	segs := make(Segments, n)
	for i := range segs {
		segs[i] = seg(
			src.Float64()*2000-1000, src.Float64()*2000-1000,
			src.Float64()*2000-1000, src.Float64()*2000-1000,
		)
	}
	return segs
}

func TestRound(t *testing.T) {
	got := Round(Segments{seg(1.23456, -1.23456, 0.125, 2.5)}, 2)
	assert.Equal(t, Segments{seg(1.23, -1.23, 0.13, 2.5)}, got)

	got = Round(Segments{seg(1.6, -1.6, 0.4, 2.5)}, 0)
	assert.Equal(t, Segments{seg(2, -2, 0, 3)}, got)
}

func TestRoundIdempotent(t *testing.T) {
	src := rand.New(rand.NewPCG(5, 6))
	segs := randomSegments(src, 200)
	for precision := range 6 {
		once := Round(segs, precision)
		twice := Round(once, precision)
		assert.Equal(t, once, twice, "precision %d", precision)
	}
}

func TestDedup(t *testing.T) {
	a := seg(0, 0, 1, 0)
	b := seg(1, 0, 1, 1)
	rev := seg(1, 0, 0, 0)
	got := Dedup(Segments{a, b, a, rev, b, a})
	assert.Equal(t, Segments{a, b, rev}, got)

	assert.Empty(t, Dedup(nil))
}

func TestBounds(t *testing.T) {
	b := Bounds(Segments{seg(-3, 4, 2, -1), seg(0, 7, 5, 0)})
	assert.Equal(t, rect.Rect{LLx: -3, LLy: -1, URx: 5, URy: 7}, b)
	assert.Equal(t, rect.Rect{}, Bounds(nil))
}

func TestTranslate(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 8))
	for range 20 {
		segs := Translate(randomSegments(src, 50))
		b := Bounds(segs)
		assert.Equal(t, 0.0, b.LLx)
		assert.Equal(t, 0.0, b.LLy)
	}

	// positive drawings are moved towards the origin as well
	got := Translate(Segments{seg(10, 20, 15, 30)})
	assert.Equal(t, Segments{seg(0, 0, 5, 10)}, got)

	assert.Empty(t, Translate(nil))
}

func TestPostProcess(t *testing.T) {
	segs := Interpret(ParseWord("F+F+F+F+F+F+F+F"), vec.Vec2{}, 0, 10, 90)
	require.Len(t, segs, 8)

	got := PostProcess(segs, 3)
	assert.Len(t, got, 4) // the square is traced twice
	b := Bounds(got)
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, b)
}
