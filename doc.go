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

// Package lsys generates line art from random L-systems.
//
// A run has four stages:
//
//  1. [Axiom] picks a short starting word, and [SynthesizeRules] assigns a
//     random, bracket-balanced production to every symbol of the axiom.
//  2. [Expand] rewrites the axiom a fixed number of times.
//  3. [Interpret] walks the expanded word with a turtle and records the
//     line segments drawn by every F.
//  4. [PostProcess] rounds, de-duplicates and translates the segments so
//     that all coordinates are non-negative.
//
// [Generator] repeats stages 1 to 3 with fresh random parameters until the
// drawing has enough segments.  By default there is no limit on the number
// of attempts: a configuration which can never produce enough segments
// makes [Generator.Run] loop until its context is cancelled.
//
// The expanded word grows exponentially with the recursion depth.  Use
// [ExpandLimit] or [GeneratorConfig.MaxSymbols] to put a ceiling on it.
package lsys
