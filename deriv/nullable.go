package deriv

import (
	"github.com/coregx/rederiv/pattern"
)

// Nullable reports whether p matches the empty input.
//
// It is a total structural recursion:
//
//	Nullable(NoMatch)      = false
//	Nullable(Empty)        = true
//	Nullable(Literal(_))   = false
//	Nullable(Concat(l, r)) = Nullable(l) && Nullable(r)
//	Nullable(Union(l, r))  = Nullable(l) || Nullable(r)
//	Nullable(Repeat(_))    = true
//
// Nullable(p) is true exactly when the empty input is matched by p under
// the declarative semantics (package oracle).
func Nullable(p *pattern.Pattern) bool {
	switch p.Kind() {
	case pattern.KindEmpty, pattern.KindRepeat:
		return true
	case pattern.KindConcat:
		return Nullable(p.Left()) && Nullable(p.Right())
	case pattern.KindUnion:
		return Nullable(p.Left()) || Nullable(p.Right())
	default: // NoMatch, Literal
		return false
	}
}
