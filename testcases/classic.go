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

package testcases

var classicCases = []TestCase{
	{
		Name:     "koch_curve",
		Axiom:    "F",
		Rules:    map[string]string{"F": "F+F-F-F+F"},
		Depth:    3,
		Heading:  0,
		Turn:     90,
		Length:   4,
		Segments: 125,
	},
	{
		Name:     "koch_island",
		Axiom:    "F-F-F-F",
		Rules:    map[string]string{"F": "F-F+F+FF-F-F+F"},
		Depth:    2,
		Heading:  0,
		Turn:     90,
		Length:   3,
		Segments: 256,
	},
	{
		Name:     "dragon",
		Axiom:    "Fx",
		Rules:    map[string]string{"x": "x+yF+", "y": "-Fx-y"},
		Depth:    4,
		Heading:  0,
		Turn:     90,
		Length:   10,
		Segments: 16,
	},
	{
		Name:  "plant",
		Axiom: "x",
		Rules: map[string]string{
			"x": "F+[[x]-x]-F[-Fx]+x",
			"F": "FF",
		},
		Depth:    3,
		Heading:  90,
		Turn:     25,
		Length:   5,
		Segments: 84,
	},
	{
		Name:     "bush",
		Axiom:    "F",
		Rules:    map[string]string{"F": "F[+F]F[-F]F"},
		Depth:    2,
		Heading:  90,
		Turn:     25.7,
		Length:   8,
		Segments: 25,
	},
}

var bracketCases = []TestCase{
	{
		Name:     "unmatched_pop",
		Axiom:    "F]]F[",
		Depth:    0,
		Heading:  0,
		Turn:     90,
		Length:   1,
		Segments: 2,
	},
	{
		Name:     "empty_rule",
		Axiom:    "Fx",
		Rules:    map[string]string{"F": "F", "x": ""},
		Depth:    3,
		Heading:  0,
		Turn:     90,
		Length:   1,
		Segments: 1,
	},
	{
		Name:     "nested_branches",
		Axiom:    "F",
		Rules:    map[string]string{"F": "F[+F[-F]]F"},
		Depth:    2,
		Heading:  45,
		Turn:     60,
		Length:   2,
		Segments: 16,
	},
}
