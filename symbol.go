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
	"slices"
	"strings"
)

// Kind identifies the turtle operation of a symbol.
type Kind uint8

// These are the symbol kinds.  Every kind except NonTerminal has a fixed
// textual representation.
const (
	NonTerminal Kind = iota
	Forward          // F
	TurnLeft         // +
	TurnRight        // -
	Push             // [
	Pop              // ]
)

func (k Kind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Forward:
		return "draw"
	case TurnLeft:
		return "turn left"
	case TurnRight:
		return "turn right"
	case Push:
		return "save position"
	case Pop:
		return "restore position"
	default:
		return "unknown"
	}
}

// Symbol is a letter of the L-system alphabet.
//
// Name is only used for non-terminals and is zero for all other kinds, so
// that symbols can be compared with == and used as map keys.
type Symbol struct {
	Kind Kind
	Name rune
}

// The control symbols.
var (
	SymForward   = Symbol{Kind: Forward}
	SymTurnLeft  = Symbol{Kind: TurnLeft}
	SymTurnRight = Symbol{Kind: TurnRight}
	SymPush      = Symbol{Kind: Push}
	SymPop       = Symbol{Kind: Pop}
)

// controls lists the control symbols in the order used for random draws.
var controls = []Symbol{SymForward, SymTurnLeft, SymTurnRight, SymPush, SymPop}

// Var returns the non-terminal with the given name.
func Var(name rune) Symbol {
	return ParseSymbol(name)
}

// ParseSymbol converts a character to a symbol.  The characters F, +, -,
// [ and ] map to the control symbols, everything else is a non-terminal.
func ParseSymbol(c rune) Symbol {
	switch c {
	case 'F':
		return SymForward
	case '+':
		return SymTurnLeft
	case '-':
		return SymTurnRight
	case '[':
		return SymPush
	case ']':
		return SymPop
	default:
		return Symbol{Kind: NonTerminal, Name: c}
	}
}

// Rune returns the textual representation of s.
func (s Symbol) Rune() rune {
	switch s.Kind {
	case Forward:
		return 'F'
	case TurnLeft:
		return '+'
	case TurnRight:
		return '-'
	case Push:
		return '['
	case Pop:
		return ']'
	default:
		return s.Name
	}
}

func (s Symbol) String() string {
	return string(s.Rune())
}

// Word is a sequence of symbols.
type Word []Symbol

// ParseWord converts a string like "F[+F]x" to a word.
func ParseWord(s string) Word {
	w := make(Word, 0, len(s))
	for _, c := range s {
		w = append(w, ParseSymbol(c))
	}
	return w
}

func (w Word) String() string {
	var b strings.Builder
	b.Grow(len(w))
	for _, s := range w {
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// Count returns the number of occurrences of s in w.
func (w Word) Count(s Symbol) int {
	n := 0
	for _, x := range w {
		if x == s {
			n++
		}
	}
	return n
}

// Balanced reports whether every [ in w is closed by a later ] and no ]
// occurs without an open [.
func (w Word) Balanced() bool {
	depth := 0
	for _, s := range w {
		switch s.Kind {
		case Push:
			depth++
		case Pop:
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// removeAll removes every non-overlapping occurrence of pat from w,
// scanning from left to right in a single pass.  Occurrences created by
// the removal itself are left alone.
func (w Word) removeAll(pat Word) Word {
	if len(pat) == 0 || len(w) < len(pat) {
		return w
	}
	res := make(Word, 0, len(w))
	for i := 0; i < len(w); {
		if i+len(pat) <= len(w) && slices.Equal(w[i:i+len(pat)], pat) {
			i += len(pat)
			continue
		}
		res = append(res, w[i])
		i++
	}
	return res
}
