// Package oracle implements the declarative matching relation for the
// five-constructor pattern grammar.
//
// Matches is the reference definition of "input is matched by pattern". It
// exists to state and test the correctness of the derivative-based engine
// in package deriv, the same way a differential test harness compares an
// optimized engine against a trusted baseline. It is deliberately naive —
// the Concat case tries every split and the Repeat case searches first
// pieces — and has exponential worst-case cost. Do not use it for
// production matching.
package oracle

import (
	"github.com/coregx/rederiv/pattern"
)

// Matches reports whether input is matched by p under the declarative
// semantics of the grammar:
//
//   - NoMatch matches nothing.
//   - Empty matches only the empty input.
//   - Literal(b) matches only the one-byte input [b].
//   - Concat(l, r) matches input iff some split input = p1 ++ p2 has l
//     matching p1 and r matching p2.
//   - Union(l, r) matches input iff l or r matches it.
//   - Repeat(inner) matches input iff it partitions into zero or more
//     consecutive pieces each matched by inner.
//
// The Repeat relation admits arbitrarily many zero-length pieces, so a
// literal search over piece counts would not terminate when inner is
// nullable. Empty pieces never change what a Repeat matches: the empty
// input is always accepted (zero pieces), and for nonempty input any
// partition using empty pieces also works with them removed. Matches
// therefore searches nonempty first pieces only, recursing on a strictly
// shorter remainder, which bounds the search by the input length without
// changing the relation.
func Matches(p *pattern.Pattern, input []byte) bool {
	switch p.Kind() {
	case pattern.KindNoMatch:
		return false
	case pattern.KindEmpty:
		return len(input) == 0
	case pattern.KindLiteral:
		return len(input) == 1 && input[0] == p.Sym()
	case pattern.KindConcat:
		for i := 0; i <= len(input); i++ {
			if Matches(p.Left(), input[:i]) && Matches(p.Right(), input[i:]) {
				return true
			}
		}
		return false
	case pattern.KindUnion:
		return Matches(p.Left(), input) || Matches(p.Right(), input)
	case pattern.KindRepeat:
		if len(input) == 0 {
			return true
		}
		for i := 1; i <= len(input); i++ {
			if Matches(p.Inner(), input[:i]) && Matches(p, input[i:]) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
