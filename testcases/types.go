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

// Package testcases provides named L-systems with known properties, for
// use in tests and benchmarks.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lsys"
)

// TestCase is a deterministic grammar together with turtle settings.
type TestCase struct {
	Name    string            // lowercase a-z and _ only
	Axiom   string            // starting word
	Rules   map[string]string // productions
	Depth   int               // number of rewriting passes
	Heading float64           // initial heading in degrees
	Turn    float64           // turn angle in degrees
	Length  float64           // step length

	// Segments is the number of segments the turtle draws, before any
	// post-processing.
	Segments int
}

// Params returns the test case as a parameter record.
func (tc TestCase) Params() *lsys.Params {
	axiom := lsys.ParseWord(tc.Axiom)
	rules, err := lsys.ParseRules(axiom, tc.Rules)
	if err != nil {
		panic(err)
	}
	return &lsys.Params{
		Title:        tc.Name,
		Depth:        tc.Depth,
		Axiom:        axiom,
		Rules:        rules,
		InitialAngle: tc.Heading,
		TurnAngle:    tc.Turn,
		LineLength:   tc.Length,
		Start:        vec.Vec2{},
	}
}

// Draw expands and interprets the test case.
func (tc TestCase) Draw() lsys.Segments {
	return tc.Params().Draw()
}
