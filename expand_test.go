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
)

func TestExpandZeroIsIdentity(t *testing.T) {
	var rules Rules
	rules.Set(SymForward, ParseWord("F+F"))
	rules.Set(Var('x'), ParseWord("[x]"))

	for _, in := range []string{"", "F", "Fxy", "+-[]"} {
		axiom := ParseWord(in)
		got := Expand(axiom, rules, 0)
		assert.Equal(t, in, got.String())
	}

	// the result does not share storage with the axiom
	axiom := ParseWord("Fx")
	got := Expand(axiom, rules, 0)
	got[0] = SymPop
	assert.Equal(t, "Fx", axiom.String())
}

func TestExpandNoRules(t *testing.T) {
	got := Expand(ParseWord("F"), Rules{}, 3)
	assert.Equal(t, "F", got.String())
}

func TestExpandControlSymbolsPassThrough(t *testing.T) {
	var rules Rules
	rules.Set(Var('x'), ParseWord("F[+x]-"))

	got := Expand(ParseWord("+-[x]"), rules, 2)
	assert.Equal(t, "+-[F[+F[+x]-]-]", got.String())
	assert.Equal(t, 3, got.Count(SymPush))
}

func TestExpandSimultaneous(t *testing.T) {
	var rules Rules
	rules.Set(Var('a'), ParseWord("b"))
	rules.Set(Var('b'), ParseWord("ab"))

	want := []string{"a", "b", "ab", "bab", "abbab", "bababbab"}
	for n, w := range want {
		assert.Equal(t, w, Expand(ParseWord("a"), rules, n).String(), "n=%d", n)
	}
}

func TestExpandEmptyProduction(t *testing.T) {
	var rules Rules
	rules.Set(Var('x'), Word{})
	got := Expand(ParseWord("FxFx"), rules, 1)
	assert.Equal(t, "FF", got.String())
}

func TestExpandLimit(t *testing.T) {
	var rules Rules
	rules.Set(SymForward, ParseWord("FF"))

	w, err := ExpandLimit(ParseWord("F"), rules, 4, 16)
	require.NoError(t, err)
	assert.Len(t, w, 16)

	_, err = ExpandLimit(ParseWord("F"), rules, 5, 16)
	assert.ErrorIs(t, err, ErrTooLong)

	w, err = ExpandLimit(ParseWord("F"), rules, 10, 0)
	require.NoError(t, err)
	assert.Len(t, w, 1024)
}
