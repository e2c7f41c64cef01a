package literal

import (
	"github.com/coregx/rederiv/pattern"
)

// ExtractorConfig configures extraction limits.
//
// The limits bound work and memory on adversarial patterns: a tower of
// Unions multiplies the literal count, and a tower of Concats multiplies
// literal length.
type ExtractorConfig struct {
	// MaxLiterals limits how many alternative literals may accumulate
	// before extraction gives up. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal. Longer
	// combinations are truncated and marked incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor computes anchored prefix literals from a pattern tree.
//
// The result of ExtractPrefixes satisfies two guarantees the prefilter
// relies on:
//
//  1. Every input the pattern matches has some member of the Seq as a
//     prefix (an empty-bytes member satisfies this trivially).
//  2. A member marked Complete is itself an entire string of the
//     pattern's language, so it may be extended through concatenation.
//
// Example:
//
//	// Concat(Union('a','b'), 'c') → prefixes {"ac", "bc"}, both complete
//	ex := literal.New(literal.DefaultConfig())
//	seq := ex.ExtractPrefixes(p)
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes extracts the anchored prefix literals of p.
//
// Returns nil when no usable prefix information exists (extraction
// exceeded MaxLiterals). A non-nil empty Seq means the pattern matches
// nothing at all. A Seq containing an empty literal is valid but carries
// no rejection power (the pattern is nullable somewhere along the spine).
func (e *Extractor) ExtractPrefixes(p *pattern.Pattern) *Seq {
	lits, ok := e.prefixes(p)
	if !ok {
		return nil
	}
	return &Seq{literals: lits}
}

func (e *Extractor) prefixes(p *pattern.Pattern) ([]Literal, bool) {
	switch p.Kind() {
	case pattern.KindNoMatch:
		// Empty language: the prefix guarantee holds vacuously.
		return nil, true

	case pattern.KindEmpty:
		return []Literal{{Bytes: nil, Complete: true}}, true

	case pattern.KindLiteral:
		return []Literal{{Bytes: []byte{p.Sym()}, Complete: true}}, true

	case pattern.KindUnion:
		left, ok := e.prefixes(p.Left())
		if !ok {
			return nil, false
		}
		right, ok := e.prefixes(p.Right())
		if !ok {
			return nil, false
		}
		if len(left)+len(right) > e.config.MaxLiterals {
			return nil, false
		}
		return append(left, right...), true

	case pattern.KindConcat:
		return e.concatPrefixes(p)

	case pattern.KindRepeat:
		// Repeat matches the empty input, so the empty literal is the only
		// safe prefix claim.
		return []Literal{{Bytes: nil, Complete: false}}, true

	default:
		return nil, false
	}
}

// concatPrefixes combines the left side's literals with the right side's.
// A complete left literal is an entire left-side string, so every match
// continuing through it starts with that literal followed by a right-side
// prefix; an incomplete left literal already is a required prefix of the
// whole match and passes through unchanged.
func (e *Extractor) concatPrefixes(p *pattern.Pattern) ([]Literal, bool) {
	left, ok := e.prefixes(p.Left())
	if !ok {
		return nil, false
	}

	var right []Literal
	rightOK := false
	rightDone := false

	out := make([]Literal, 0, len(left))
	for _, ll := range left {
		if !ll.Complete {
			out = append(out, ll)
			continue
		}
		if !rightDone {
			right, rightOK = e.prefixes(p.Right())
			rightDone = true
		}
		if !rightOK {
			// Can't see past the left side; keep the full left string as a
			// required prefix.
			out = append(out, Literal{Bytes: ll.Bytes, Complete: false})
			continue
		}
		for _, rl := range right {
			combined, truncated := e.join(ll.Bytes, rl.Bytes)
			out = append(out, Literal{
				Bytes:    combined,
				Complete: ll.Complete && rl.Complete && !truncated,
			})
			if len(out) > e.config.MaxLiterals {
				return nil, false
			}
		}
	}
	if len(out) > e.config.MaxLiterals {
		return nil, false
	}
	return out, true
}

// join concatenates two literal byte sequences, truncating at
// MaxLiteralLen. Reports whether truncation happened.
func (e *Extractor) join(a, b []byte) ([]byte, bool) {
	n := len(a) + len(b)
	truncated := false
	if n > e.config.MaxLiteralLen {
		n = e.config.MaxLiteralLen
		truncated = true
	}
	out := make([]byte, 0, n)
	out = append(out, a...)
	if len(out) < n {
		out = append(out, b[:n-len(out)]...)
	} else if len(out) > n {
		out = out[:n]
	}
	return out, truncated
}
