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
	"strings"
)

// Inline returns a copy of the rules where every non-terminal inside a
// production is replaced by that non-terminal's own production.  Only one
// level is substituted, using the original productions.
func Inline(rules Rules) Rules {
	var res Rules
	for _, key := range rules.keys {
		var w Word
		for _, s := range rules.prod[key] {
			if p, ok := rules.prod[s]; ok && s.Kind == NonTerminal {
				w = append(w, p...)
			} else {
				w = append(w, s)
			}
		}
		if w == nil {
			w = Word{}
		}
		res.Set(key, w)
	}
	return res
}

// Explain describes the rules in words, one directive per line, after
// inlining the non-terminals once.
func Explain(rules Rules) string {
	inlined := Inline(rules)
	var b strings.Builder
	for _, key := range inlined.keys {
		w := inlined.prod[key]
		fmt.Fprintf(&b, "%s -> %s\n", key, w)
		for _, s := range w {
			if s.Kind == NonTerminal {
				fmt.Fprintf(&b, "  %s (no effect)\n", s)
				continue
			}
			fmt.Fprintf(&b, "  %s\n", s.Kind)
		}
	}
	return b.String()
}
