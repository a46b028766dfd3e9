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

// Source is the random number generator used by the generator.
// IntN returns a uniformly distributed value in [0, n) and may panic
// if n <= 0.  A *math/rand/v2.Rand satisfies this interface.
type Source interface {
	IntN(n int) int
}

// choose returns a uniformly chosen element of xs.
func choose[T any](src Source, xs []T) T {
	return xs[src.IntN(len(xs))]
}

// between returns a uniformly chosen integer in [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
