package deriv

import (
	"github.com/coregx/rederiv/pattern"
)

// State is one in-progress streaming match. The caller feeds bytes one at a
// time and may ask after any prefix whether the bytes fed so far are an
// exact match (Accepts) or whether no continuation can ever match (Dead).
//
// The whole match state is the current pattern value; a State shares
// nothing mutable with other States, so independent matches may run in
// parallel as long as each State (and its Engine) stays on one goroutine.
//
// Example:
//
//	engine := deriv.NewEngine(deriv.DefaultConfig())
//	st := engine.Start(p)
//	for _, sym := range input {
//	    st.Feed(sym)
//	    if st.Dead() {
//	        break // no suffix can rescue this input
//	    }
//	}
//	ok := st.Accepts()
type State struct {
	engine  *Engine
	current *pattern.Pattern
}

// Start begins a streaming match of p against input fed later.
func (e *Engine) Start(p *pattern.Pattern) *State {
	return &State{engine: e, current: e.Prepare(p)}
}

// Feed consumes one input byte.
// Feeding a dead state is a no-op: NoMatch is a fixed point of Derive.
func (s *State) Feed(sym byte) {
	if s.current.Kind() == pattern.KindNoMatch {
		return
	}
	s.current = s.engine.Derive(sym, s.current)
}

// FeedBytes consumes input bytes in order, stopping early if the state
// goes dead.
func (s *State) FeedBytes(input []byte) {
	for _, sym := range input {
		if s.current.Kind() == pattern.KindNoMatch {
			return
		}
		s.current = s.engine.Derive(sym, s.current)
	}
}

// Accepts reports whether the bytes fed so far are an exact match.
func (s *State) Accepts() bool {
	return Nullable(s.current)
}

// Dead reports whether no continuation of the bytes fed so far can match.
// Dead never misreports a live state. It is conservative the other way:
// with simplification enabled, residuals that become unmatchable during
// derivation collapse to NoMatch, but an unmatchable subtree the caller
// built into the original pattern (say Concat(p, NoMatch) deep inside) can
// keep a dead state looking live until derivation reaches it.
func (s *State) Dead() bool {
	return s.current.Kind() == pattern.KindNoMatch
}

// Current returns the pattern describing what remains to be matched.
func (s *State) Current() *pattern.Pattern {
	return s.current
}
