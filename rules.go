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
	"fmt"
	"slices"
	"strings"
)

// Rules maps symbols to their productions.  The symbols are kept in
// insertion order, which is the order of first appearance in the axiom
// for synthesized rules.
//
// The zero value is an empty rule set.
type Rules struct {
	keys []Symbol
	prod map[Symbol]Word
}

// Set assigns the production w to s.
func (r *Rules) Set(s Symbol, w Word) {
	if r.prod == nil {
		r.prod = make(map[Symbol]Word)
	}
	if _, seen := r.prod[s]; !seen {
		r.keys = append(r.keys, s)
	}
	r.prod[s] = w
}

// Get returns the production for s.
func (r Rules) Get(s Symbol) (Word, bool) {
	w, ok := r.prod[s]
	return w, ok
}

// Len returns the number of productions.
func (r Rules) Len() int {
	return len(r.keys)
}

// Symbols returns the symbols which have a production, in insertion order.
func (r Rules) Symbols() []Symbol {
	return slices.Clone(r.keys)
}

// Map returns the rules in textual form.
func (r Rules) Map() map[string]string {
	m := make(map[string]string, len(r.keys))
	for _, s := range r.keys {
		m[s.String()] = r.prod[s].String()
	}
	return m
}

// String formats the rules like a dictionary literal,
// for example {'F': 'F[+F]', 'x': 'x-F'}.
func (r Rules) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range r.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s': '%s'", s, r.prod[s])
	}
	b.WriteByte('}')
	return b.String()
}

// Arrows formats the rules as "F→F[+F],x→x-F".
func (r Rules) Arrows() string {
	parts := make([]string, len(r.keys))
	for i, s := range r.keys {
		parts[i] = s.String() + "→" + r.prod[s].String()
	}
	return strings.Join(parts, ",")
}

// ParseRules converts rules in textual form back to a rule set.  Symbols
// are ordered by their first appearance in axiom, followed by any
// remaining symbols in sorted order.  Every key must be a single
// character.
func ParseRules(axiom Word, m map[string]string) (Rules, error) {
	var r Rules
	for _, s := range axiom {
		if _, done := r.prod[s]; done {
			continue
		}
		if p, ok := m[s.String()]; ok {
			r.Set(s, ParseWord(p))
		}
	}
	var rest []string
	for k := range m {
		if len([]rune(k)) != 1 {
			return Rules{}, fmt.Errorf("lsys: invalid rule key %q", k)
		}
		if _, done := r.prod[ParseSymbol([]rune(k)[0])]; !done {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	for _, k := range rest {
		r.Set(ParseSymbol([]rune(k)[0]), ParseWord(m[k]))
	}
	return r, nil
}

// SynthesizeRules draws a random production for every distinct symbol of
// axiom.  Each production is built from maxLen draws out of the control
// symbols and the axiom's own symbols.  Closing brackets without a
// matching opening bracket are dropped, unclosed brackets are cut off, and
// the cancelling pairs [], +- and -+ are removed.  The resulting
// productions are always balanced, but may be empty.
func SynthesizeRules(src Source, axiom Word, maxLen int) Rules {
	alphabet := slices.Clone(controls)
	for _, s := range axiom {
		if !slices.Contains(alphabet, s) {
			alphabet = append(alphabet, s)
		}
	}

	var rules Rules
	for _, s := range axiom {
		if _, done := rules.Get(s); done {
			continue
		}
		rules.Set(s, production(src, alphabet, maxLen))
	}
	return rules
}

// production draws a single balanced production.
func production(src Source, alphabet []Symbol, maxLen int) Word {
	w := make(Word, 0, maxLen)
	var open []int // positions of unmatched [
	for range maxLen {
		s := choose(src, alphabet)
		switch s.Kind {
		case Push:
			open = append(open, len(w))
		case Pop:
			if len(open) == 0 {
				continue
			}
			open = open[:len(open)-1]
		}
		w = append(w, s)
	}

	// Cut back to just before the last unmatched [ until none is left.
	for len(open) > 0 {
		w = w[:open[len(open)-1]]
		open = open[:len(open)-1]
	}

	return simplify(w)
}

var (
	emptyBrackets = Word{SymPush, SymPop}
	leftRight     = Word{SymTurnLeft, SymTurnRight}
	rightLeft     = Word{SymTurnRight, SymTurnLeft}
)

// simplify removes the immediately cancelling pairs [], +- and -+, one
// left-to-right pass per pattern.  Pairs which only become adjacent after
// a removal are kept.
func simplify(w Word) Word {
	w = w.removeAll(emptyBrackets)
	w = w.removeAll(leftRight)
	w = w.removeAll(rightLeft)
	return w
}
