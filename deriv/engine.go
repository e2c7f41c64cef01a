package deriv

import (
	"github.com/coregx/rederiv/pattern"
)

// Config controls engine behavior.
//
// Both switches exist so the minimal algorithm stays reachable for
// differential testing; production callers should keep the defaults.
//
// Example:
//
//	config := deriv.DefaultConfig()
//	config.EnableInterning = false // plain allocation per node
//	engine := deriv.NewEngine(config)
type Config struct {
	// EnableSimplify applies semantics-preserving rewrites while building
	// derivatives: NoMatch absorbs Concat and is the identity of Union,
	// Empty is the identity of Concat, and Union(p, p) collapses when both
	// branches are the same interned node.
	// Default: true
	EnableSimplify bool

	// EnableInterning routes construction through a memoizing interner so
	// structurally equal subtrees share one node. Required for the
	// Union(p, p) collapse to fire reliably; without it simplification
	// only sees leaf identities.
	// Default: true
	EnableInterning bool
}

// DefaultConfig returns the default engine configuration: simplification
// and interning both enabled.
func DefaultConfig() Config {
	return Config{
		EnableSimplify:  true,
		EnableInterning: true,
	}
}

// Engine computes derivatives through simplifying, interning constructors,
// keeping the working pattern from growing without bound under repeated
// derivation (the Union accumulation of the nullable-Concat case and the
// Repeat unrolling are the growth sources).
//
// An Engine owns a private interner and is not safe for concurrent use.
// Engines are cheap; create one per goroutine. The patterns an Engine
// returns are immutable and may be shared freely once handed out.
type Engine struct {
	config Config
	intern *pattern.Interner
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config Config) *Engine {
	e := &Engine{config: config}
	if config.EnableInterning {
		e.intern = pattern.NewInterner()
	}
	return e
}

// PatternNodes returns the number of distinct composite nodes the engine's
// interner holds, for memory profiling. Returns 0 when interning is off.
func (e *Engine) PatternNodes() int {
	if e.intern == nil {
		return 0
	}
	return e.intern.Len()
}

func (e *Engine) concat(left, right *pattern.Pattern) *pattern.Pattern {
	if e.config.EnableSimplify {
		if left.Kind() == pattern.KindNoMatch || right.Kind() == pattern.KindNoMatch {
			return pattern.NoMatch()
		}
		if left.Kind() == pattern.KindEmpty {
			return right
		}
		if right.Kind() == pattern.KindEmpty {
			return left
		}
	}
	if e.intern != nil {
		return e.intern.Concat(left, right)
	}
	return pattern.Concat(left, right)
}

func (e *Engine) union(left, right *pattern.Pattern) *pattern.Pattern {
	if e.config.EnableSimplify {
		if left.Kind() == pattern.KindNoMatch {
			return right
		}
		if right.Kind() == pattern.KindNoMatch {
			return left
		}
		// Interned nodes are canonical, so pointer equality is structural
		// equality here.
		if left == right {
			return left
		}
	}
	if e.intern != nil {
		return e.intern.Union(left, right)
	}
	return pattern.Union(left, right)
}

func (e *Engine) repeat(inner *pattern.Pattern) *pattern.Pattern {
	if e.intern != nil {
		return e.intern.Repeat(inner)
	}
	return pattern.Repeat(inner)
}

// Prepare canonicalizes an externally built pattern for use with this
// engine. Matching works without it, but derivatives of a prepared pattern
// deduplicate against its subtrees from the first step.
func (e *Engine) Prepare(p *pattern.Pattern) *pattern.Pattern {
	if e.intern == nil {
		return p
	}
	return e.intern.Intern(p)
}

// Derive returns the derivative of p with respect to sym, built with the
// engine's simplifying constructors. For every input s the result matches s
// exactly when p matches sym followed by s; only the representation differs
// from the plain Derive.
func (e *Engine) Derive(sym byte, p *pattern.Pattern) *pattern.Pattern {
	switch p.Kind() {
	case pattern.KindNoMatch, pattern.KindEmpty:
		return pattern.NoMatch()
	case pattern.KindLiteral:
		if p.Sym() == sym {
			return pattern.Empty()
		}
		return pattern.NoMatch()
	case pattern.KindUnion:
		return e.union(e.Derive(sym, p.Left()), e.Derive(sym, p.Right()))
	case pattern.KindConcat:
		viaLeft := e.concat(e.Derive(sym, p.Left()), p.Right())
		if !Nullable(p.Left()) {
			return viaLeft
		}
		return e.union(viaLeft, e.Derive(sym, p.Right()))
	case pattern.KindRepeat:
		return e.concat(e.Derive(sym, p.Inner()), p)
	default:
		return pattern.NoMatch()
	}
}

// Matches reports whether p matches input exactly (whole-input acceptance).
//
// The fold stops early once the current pattern is NoMatch: NoMatch is a
// fixed point of Derive, so no remaining suffix can change the answer.
func (e *Engine) Matches(p *pattern.Pattern, input []byte) bool {
	current := e.Prepare(p)
	for _, sym := range input {
		if current.Kind() == pattern.KindNoMatch {
			return false
		}
		current = e.Derive(sym, current)
	}
	return Nullable(current)
}
