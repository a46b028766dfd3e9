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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func assertSegment(t *testing.T, s Segment, ax, ay, bx, by float64) {
	t.Helper()
	assert.InDelta(t, ax, s.A.X, eps, "A.X")
	assert.InDelta(t, ay, s.A.Y, eps, "A.Y")
	assert.InDelta(t, bx, s.B.X, eps, "B.X")
	assert.InDelta(t, by, s.B.Y, eps, "B.Y")
}

func TestInterpretSingleStep(t *testing.T) {
	w := Expand(ParseWord("F"), Rules{}, 3)
	segs := Interpret(w, vec.Vec2{}, 0, 10, 90)
	require.Len(t, segs, 1)
	assertSegment(t, segs[0], 0, 0, -10, 0)
}

func TestInterpretBranch(t *testing.T) {
	segs := Interpret(ParseWord("F[+F]F"), vec.Vec2{}, 0, 1, 90)
	require.Len(t, segs, 3)
	assertSegment(t, segs[0], 0, 0, -1, 0)
	assertSegment(t, segs[1], -1, 0, -1, -1)
	assertSegment(t, segs[2], -1, 0, -2, 0)
}

func TestInterpretTurnRight(t *testing.T) {
	segs := Interpret(ParseWord("-F"), vec.Vec2{X: 5, Y: 5}, 0, 2, 90)
	require.Len(t, segs, 1)
	assertSegment(t, segs[0], 5, 5, 5, 7)
}

func TestInterpretIgnoresNonTerminals(t *testing.T) {
	a := Interpret(ParseWord("FxF+yF"), vec.Vec2{}, 30, 1, 45)
	b := Interpret(ParseWord("FF+F"), vec.Vec2{}, 30, 1, 45)
	assert.Equal(t, b, a)
}

func TestTurtlePopOnEmptyStack(t *testing.T) {
	tu := NewTurtle(vec.Vec2{X: 1, Y: 2}, 30, 1, 90)
	tu.Step(SymPop)
	assert.Equal(t, vec.Vec2{X: 1, Y: 2}, tu.Position())
	assert.Equal(t, 30.0, tu.Heading())
	assert.Equal(t, 0, tu.Depth())
	assert.Empty(t, tu.Segments())

	// the turtle keeps working afterwards
	segs := Interpret(ParseWord("]]F]"), vec.Vec2{}, 0, 1, 90)
	require.Len(t, segs, 1)
	assertSegment(t, segs[0], 0, 0, -1, 0)
}

func TestTurtleStackBalanced(t *testing.T) {
	tu := NewTurtle(vec.Vec2{}, 0, 1, 60)
	tu.Run(ParseWord("F+"))
	pos, heading := tu.Position(), tu.Heading()
	require.Equal(t, 0, tu.Depth())

	inner := ParseWord("[F[+F]-F[F-[F]]]")
	for i, s := range inner {
		tu.Step(s)
		if i < len(inner)-1 {
			assert.Positive(t, tu.Depth())
		}
	}
	assert.Equal(t, 0, tu.Depth())
	assert.Equal(t, pos, tu.Position())
	assert.Equal(t, heading, tu.Heading())
	assert.Len(t, tu.Segments(), 6)
}

func TestSegmentsPath(t *testing.T) {
	segs := Interpret(ParseWord("F+F+F"), vec.Vec2{}, 0, 1, 120)
	var moves, lines int
	for cmd, pts := range segs.Path() {
		require.Len(t, pts, 1)
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdLineTo:
			lines++
		default:
			t.Errorf("unexpected command %v", cmd)
		}
	}
	assert.Equal(t, 3, moves)
	assert.Equal(t, 3, lines)
}

func TestSegmentLength(t *testing.T) {
	for _, s := range Interpret(ParseWord("F+F-F+F"), vec.Vec2{}, 17, 3, 33) {
		assert.InDelta(t, 3, s.Length(), eps)
	}
}
