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
	"errors"
	"slices"
)

// ErrTooLong is returned by [ExpandLimit] when the expanded word would
// exceed the requested length.
var ErrTooLong = errors.New("lsys: expanded word too long")

// Expand applies the rules n times to axiom.  In each pass every symbol is
// replaced simultaneously by its production; symbols without a production
// are copied unchanged.  For n = 0 a copy of the axiom is returned.
//
// The length of the result can grow exponentially with n.
func Expand(axiom Word, rules Rules, n int) Word {
	w, _ := ExpandLimit(axiom, rules, n, 0)
	return w
}

// ExpandLimit is like [Expand], but gives up with [ErrTooLong] as soon as
// a pass would produce more than limit symbols.  A limit <= 0 means no
// limit.
func ExpandLimit(axiom Word, rules Rules, n, limit int) (Word, error) {
	cur := slices.Clone(axiom)
	if cur == nil {
		cur = Word{}
	}
	for range n {
		size := 0
		for _, s := range cur {
			if p, ok := rules.prod[s]; ok {
				size += len(p)
			} else {
				size++
			}
		}
		if limit > 0 && size > limit {
			return nil, ErrTooLong
		}

		next := make(Word, 0, size)
		for _, s := range cur {
			if p, ok := rules.prod[s]; ok {
				next = append(next, p...)
			} else {
				next = append(next, s)
			}
		}
		cur = next
	}
	return cur, nil
}
