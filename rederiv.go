// Package rederiv implements exact regular-expression matching by symbolic
// (Brzozowski) derivatives.
//
// Instead of compiling the pattern into an automaton, the engine transforms
// the pattern itself, one input byte at a time, into the pattern describing
// what remains to be matched; the input matches when the final pattern
// accepts the empty input. There is no backtracking, no automaton object,
// and no shared mutable state: the whole state of a match is an immutable
// pattern value.
//
// Patterns are built directly from a five-constructor grammar (there is no
// textual syntax):
//
//	p := pattern.Concat(
//	    pattern.Union(pattern.Empty(), pattern.Literal('a')),
//	    pattern.Literal('b'),
//	)
//	m := rederiv.New(p)
//	m.MatchString("b")  // true
//	m.MatchString("ab") // true
//	m.MatchString("a")  // false
//
// Matching is whole-input acceptance: the entire input must be matched,
// not merely contain a match.
//
// Performance characteristics:
//   - Each step derives the current pattern once; simplification and
//     subtree interning keep the pattern from growing without bound on
//     adversarial input (nested nullable concatenations, repeat unrolling).
//   - Patterns with extractable prefix literals get an Aho-Corasick
//     quick-reject that skips the engine entirely on hopeless input.
//   - Streaming callers can feed one byte at a time and stop as soon as
//     the match goes dead.
package rederiv

import (
	"github.com/coregx/rederiv/deriv"
	"github.com/coregx/rederiv/literal"
	"github.com/coregx/rederiv/pattern"
	"github.com/coregx/rederiv/prefilter"
)

// Matcher matches inputs against one pattern.
//
// A Matcher is safe to use concurrently from multiple goroutines: every
// Match call and every Stream owns a private engine, and the pattern tree
// itself is immutable.
//
// Example:
//
//	m := rederiv.New(pattern.Repeat(pattern.Literal('a')))
//	m.MatchString("")    // true
//	m.MatchString("aaa") // true
//	m.MatchString("aab") // false
type Matcher struct {
	pattern *pattern.Pattern
	config  deriv.Config
	pf      prefilter.Prefilter
}

// New creates a Matcher for p with the default configuration.
func New(p *pattern.Pattern) *Matcher {
	return NewWithConfig(p, deriv.DefaultConfig())
}

// NewWithConfig creates a Matcher for p with a custom engine
// configuration.
//
// Example:
//
//	config := rederiv.DefaultConfig()
//	config.EnableInterning = false
//	m := rederiv.NewWithConfig(p, config)
func NewWithConfig(p *pattern.Pattern, config deriv.Config) *Matcher {
	extractor := literal.New(literal.DefaultConfig())
	pf := prefilter.NewBuilder(extractor.ExtractPrefixes(p)).Build()
	return &Matcher{
		pattern: p,
		config:  config,
		pf:      pf,
	}
}

// DefaultConfig returns the default engine configuration, for customizing
// before NewWithConfig.
func DefaultConfig() deriv.Config {
	return deriv.DefaultConfig()
}

// Match reports whether input is matched, in its entirety, by the pattern.
func (m *Matcher) Match(input []byte) bool {
	if m.pf != nil && m.pf.Reject(input) {
		return false
	}
	engine := deriv.NewEngine(m.config)
	return engine.Matches(m.pattern, input)
}

// MatchString reports whether s is matched, in its entirety, by the
// pattern.
func (m *Matcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}

// Stream begins an incremental match. The returned state accepts bytes one
// at a time; Accepts reports whether the bytes fed so far form an exact
// match, and Dead reports that no continuation can match.
//
// Each Stream call returns an independent state with its own engine; a
// single state must stay on one goroutine. The prefilter does not apply to
// streaming (it needs the whole input up front).
//
// Example:
//
//	st := m.Stream()
//	for _, b := range input {
//	    st.Feed(b)
//	    if st.Dead() {
//	        break
//	    }
//	}
//	ok := st.Accepts()
func (m *Matcher) Stream() *deriv.State {
	engine := deriv.NewEngine(m.config)
	return engine.Start(m.pattern)
}

// Pattern returns the pattern this matcher was built from.
func (m *Matcher) Pattern() *pattern.Pattern {
	return m.pattern
}

// String returns the debug rendering of the matcher's pattern.
func (m *Matcher) String() string {
	return m.pattern.String()
}
