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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the distance between the end points.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Segments is a drawing, in drawing order.
type Segments []Segment

// Path returns the drawing as a path with one subpath per segment.
func (segs Segments) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, s := range segs {
			buf[0] = s.A
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = s.B
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}

// turtleState is the part of the turtle saved by [ and restored by ].
type turtleState struct {
	pos     vec.Vec2
	heading float64 // degrees
}

// Turtle interprets words as drawing commands.
//
// The turtle moves against its heading: a step of length l at heading h
// goes from (x, y) to (x - l·cos h, y - l·sin h).  Headings are in
// degrees.
type Turtle struct {
	// Length is the distance covered by F.
	Length float64

	// Turn is the angle in degrees added by + and subtracted by -.
	Turn float64

	cur   turtleState
	stack []turtleState
	segs  Segments
}

// NewTurtle returns a turtle at start, facing heading.
func NewTurtle(start vec.Vec2, heading, length, turn float64) *Turtle {
	return &Turtle{
		Length: length,
		Turn:   turn,
		cur:    turtleState{pos: start, heading: heading},
	}
}

// Step executes a single symbol.  Non-terminals are ignored, and so is ]
// when no state has been saved.
func (t *Turtle) Step(s Symbol) {
	switch s.Kind {
	case Forward:
		rad := t.cur.heading * math.Pi / 180
		next := vec.Vec2{
			X: t.cur.pos.X - t.Length*math.Cos(rad),
			Y: t.cur.pos.Y - t.Length*math.Sin(rad),
		}
		t.segs = append(t.segs, Segment{A: t.cur.pos, B: next})
		t.cur.pos = next
	case TurnLeft:
		t.cur.heading += t.Turn
	case TurnRight:
		t.cur.heading -= t.Turn
	case Push:
		t.stack = append(t.stack, t.cur)
	case Pop:
		if n := len(t.stack); n > 0 {
			t.cur = t.stack[n-1]
			t.stack = t.stack[:n-1]
		}
	}
}

// Run executes all symbols of w in order.
func (t *Turtle) Run(w Word) {
	for _, s := range w {
		t.Step(s)
	}
}

// Position returns the current position.
func (t *Turtle) Position() vec.Vec2 { return t.cur.pos }

// Heading returns the current heading in degrees.
func (t *Turtle) Heading() float64 { return t.cur.heading }

// Depth returns the number of saved states.
func (t *Turtle) Depth() int { return len(t.stack) }

// Segments returns the segments drawn so far.
func (t *Turtle) Segments() Segments { return t.segs }

// Interpret draws w with a fresh turtle and returns the segments in
// drawing order.  Interpret never fails: unknown symbols and unmatched
// closing brackets have no effect.
func Interpret(w Word, start vec.Vec2, heading, length, turn float64) Segments {
	t := NewTurtle(start, heading, length, turn)
	t.segs = make(Segments, 0, w.Count(SymForward))
	t.Run(w)
	return t.segs
}
