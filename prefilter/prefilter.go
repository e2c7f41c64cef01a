// Package prefilter provides fast input rejection for the derivative
// engine using extracted prefix literals.
//
// A prefilter answers one question cheaply: can this input possibly match?
// When the literal extractor produces a set of anchored prefix literals,
// every matching input must start with one of them, so an input starting
// with none can be rejected without deriving a single pattern. The check
// runs on an Aho-Corasick automaton, which handles many alternative
// literals in one pass.
//
// A prefilter pass never implies a match; the engine always verifies.
//
// Example:
//
//	ex := literal.New(literal.DefaultConfig())
//	pf := prefilter.NewBuilder(ex.ExtractPrefixes(p)).Build()
//	if pf != nil && pf.Reject(input) {
//	    return false // no match possible, engine not consulted
//	}
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rederiv/literal"
)

// Prefilter quickly rejects inputs that cannot match.
type Prefilter interface {
	// Reject reports whether input definitely does not match the source
	// pattern. A false return means "maybe": the engine must verify.
	Reject(input []byte) bool

	// HeapBytes returns the approximate heap memory held by the
	// prefilter, for profiling.
	HeapBytes() int
}

// Builder constructs a Prefilter from an extracted prefix sequence.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a builder over the given prefix sequence.
// The sequence may be nil (extraction gave up).
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build returns the best prefilter for the sequence, or nil when none is
// worth running:
//
//   - nil sequence → nil (no prefix information)
//   - sequence with an empty literal → nil (cannot reject anything)
//   - empty sequence → a prefilter rejecting every input (the pattern's
//     language is empty)
//   - otherwise → an anchored Aho-Corasick prefix check
func (b *Builder) Build() Prefilter {
	if b.seq == nil || b.seq.HasEmptyLiteral() {
		return nil
	}
	if b.seq.IsEmpty() {
		return rejectAll{}
	}

	builder := ahocorasick.NewBuilder()
	patternBytes := 0
	for i := 0; i < b.seq.Len(); i++ {
		lit := b.seq.Get(i)
		builder.AddPattern(lit.Bytes)
		patternBytes += len(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &anchoredPrefix{
		auto:         auto,
		minLen:       b.seq.MinLen(),
		patternBytes: patternBytes,
	}
}

// rejectAll is the prefilter for patterns whose language is provably
// empty: every input is rejected.
type rejectAll struct{}

func (rejectAll) Reject([]byte) bool { return true }
func (rejectAll) HeapBytes() int     { return 0 }

// anchoredPrefix rejects inputs that start with none of the required
// prefix literals.
type anchoredPrefix struct {
	auto         *ahocorasick.Automaton
	minLen       int
	patternBytes int
}

// Reject reports whether no required prefix occurs at position 0.
// The automaton returns the leftmost occurrence of any literal; a match
// starting past position 0 (or no match at all) means no literal is a
// prefix of the input.
func (p *anchoredPrefix) Reject(input []byte) bool {
	if len(input) < p.minLen {
		return true
	}
	m := p.auto.Find(input, 0)
	return m == nil || m.Start != 0
}

// HeapBytes estimates the automaton's memory from its pattern bytes.
// Aho-Corasick state count is bounded by total pattern length; each state
// carries transition storage, estimated here at 16 bytes per pattern byte.
func (p *anchoredPrefix) HeapBytes() int {
	return p.patternBytes * 16
}
