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

// axiomLetters is the pool of non-terminal names used for axioms.
const axiomLetters = "xyzabcde"

// MaxAxiomExtra is the largest useful argument for [Axiom].
const MaxAxiomExtra = len(axiomLetters) + 1

// Axiom returns a random starting word.  The word is F followed by up to
// maxExtra-1 distinct non-terminals, taken in order from a fixed pool of
// letters.  The length is drawn uniformly, so an axiom of just F is
// possible.  maxExtra is clamped to [1, MaxAxiomExtra].
func Axiom(src Source, maxExtra int) Word {
	maxExtra = min(max(maxExtra, 1), MaxAxiomExtra)
	k := between(src, 1, maxExtra)

	axiom := Word{SymForward}
	for _, c := range axiomLetters[:k-1] {
		axiom = append(axiom, Var(c))
	}
	return axiom
}
