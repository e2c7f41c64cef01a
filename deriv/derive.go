// Package deriv implements regular-expression matching by Brzozowski
// derivatives.
//
// The derivative of a pattern p with respect to a byte sym is the pattern
// matching exactly the remainders of p-matches that begin with sym. Matching
// an input is then a fold: derive the pattern once per input byte, and
// accept iff the final pattern is nullable. No automaton is ever built; the
// entire state of an in-progress match is the current pattern value.
//
// Two forms of the derivative are provided:
//
//   - Derive: the plain textbook transformation. Each step can grow the
//     pattern, notably through Union accumulation in the nullable-Concat
//     case and the Repeat unrolling.
//   - Engine.Derive: the same transformation through simplifying, interning
//     constructors, which keeps the working pattern small. The two are
//     equivalent on every input; the engine form is what Engine.Matches and
//     the streaming State use.
package deriv

import (
	"github.com/coregx/rederiv/pattern"
)

// Derive returns the derivative of p with respect to sym, built with the
// plain pattern constructors (no simplification, no sharing).
//
// Defining property: for every input s, p matches sym followed by s exactly
// when Derive(sym, p) matches s. Derive is total; no input can fail.
func Derive(sym byte, p *pattern.Pattern) *pattern.Pattern {
	switch p.Kind() {
	case pattern.KindNoMatch, pattern.KindEmpty:
		return pattern.NoMatch()
	case pattern.KindLiteral:
		if p.Sym() == sym {
			return pattern.Empty()
		}
		return pattern.NoMatch()
	case pattern.KindUnion:
		return pattern.Union(Derive(sym, p.Left()), Derive(sym, p.Right()))
	case pattern.KindConcat:
		// sym is consumed by the left side, which must then still be
		// followed by the right side.
		viaLeft := pattern.Concat(Derive(sym, p.Left()), p.Right())
		if !Nullable(p.Left()) {
			return viaLeft
		}
		// The left side can also be satisfied by nothing at all, in which
		// case sym is the first byte of the right side's match. Dropping
		// this branch silently rejects valid matches.
		return pattern.Union(viaLeft, Derive(sym, p.Right()))
	case pattern.KindRepeat:
		// One nonempty piece starts with sym; the rest of the piece is a
		// derivative of inner, followed by the repetition again.
		return pattern.Concat(Derive(sym, p.Inner()), p)
	default:
		return pattern.NoMatch()
	}
}

// Matches reports whether p matches input exactly (whole-input acceptance),
// using the plain derivative. This is the minimal correct algorithm; prefer
// Engine.Matches, which bounds pattern growth.
func Matches(p *pattern.Pattern, input []byte) bool {
	current := p
	for _, sym := range input {
		current = Derive(sym, current)
	}
	return Nullable(current)
}
