// Package pattern defines the immutable regular-expression tree that the
// rederiv engines operate on.
//
// A Pattern is a value of a five-constructor grammar over single bytes:
//   - NoMatch: matches no input at all, not even the empty one
//   - Empty: matches exactly the empty input
//   - Literal(b): matches exactly the one-byte input containing b
//   - Concat(l, r): matches any input that splits into an l-match followed by an r-match
//   - Union(l, r): matches whatever l or r matches
//   - Repeat(p): matches zero or more consecutive p-matches
//
// Patterns are immutable once constructed: every operation on them produces
// a new Pattern or a boolean, never a mutation. Any combination of
// constructors is well formed, including NoMatch nested anywhere; there is
// no validation step and no invalid representable state.
//
// Because patterns are never mutated, structurally identical subtrees may be
// shared freely. The Interner exploits this to hand out one canonical node
// per distinct structure, so structural equality becomes pointer equality.
//
// Example:
//
//	// (a|b)c* as a tree
//	p := pattern.Concat(
//	    pattern.Union(pattern.Literal('a'), pattern.Literal('b')),
//	    pattern.Repeat(pattern.Literal('c')),
//	)
//	fmt.Println(p) // (('a'|'b')('c')*)
package pattern

import (
	"fmt"
	"strings"
)

// Kind identifies the constructor of a Pattern node and determines which
// accessors are meaningful.
type Kind uint8

const (
	// KindNoMatch is the pattern matching no input.
	KindNoMatch Kind = iota

	// KindEmpty is the pattern matching exactly the empty input.
	KindEmpty

	// KindLiteral is the pattern matching exactly one byte.
	KindLiteral

	// KindConcat matches a left match immediately followed by a right match.
	KindConcat

	// KindUnion matches whatever either branch matches.
	KindUnion

	// KindRepeat matches zero or more consecutive matches of the inner pattern.
	KindRepeat
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindEmpty:
		return "Empty"
	case KindLiteral:
		return "Literal"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Pattern is one immutable node of a regular-expression tree.
// The node's kind determines which fields are valid.
//
// A Pattern is safe to use concurrently from multiple goroutines: no method
// or engine operation ever mutates a node after construction.
type Pattern struct {
	kind Kind

	// For Literal: the single byte matched.
	sym byte

	// For Concat/Union: both children. For Repeat: left is the inner
	// pattern and right is nil.
	left, right *Pattern
}

// Shared leaf nodes. Patterns are immutable, so every NoMatch and Empty in
// any tree can be the same node.
var (
	noMatch = &Pattern{kind: KindNoMatch}
	empty   = &Pattern{kind: KindEmpty}
)

// NoMatch returns the pattern that matches no input.
func NoMatch() *Pattern { return noMatch }

// Empty returns the pattern that matches exactly the empty input.
func Empty() *Pattern { return empty }

// Literal returns the pattern matching exactly the one-byte input
// containing sym.
func Literal(sym byte) *Pattern {
	return &Pattern{kind: KindLiteral, sym: sym}
}

// Concat returns the pattern matching any input that splits into a left
// match immediately followed by a right match.
func Concat(left, right *Pattern) *Pattern {
	return &Pattern{kind: KindConcat, left: left, right: right}
}

// Union returns the pattern matching whatever left or right matches.
func Union(left, right *Pattern) *Pattern {
	return &Pattern{kind: KindUnion, left: left, right: right}
}

// Repeat returns the pattern matching zero or more consecutive matches of
// inner, including the empty input (zero pieces).
func Repeat(inner *Pattern) *Pattern {
	return &Pattern{kind: KindRepeat, left: inner}
}

// Kind returns the node's constructor kind.
func (p *Pattern) Kind() Kind { return p.kind }

// Sym returns the byte matched by a Literal node.
// Returns 0 for non-Literal nodes.
func (p *Pattern) Sym() byte {
	if p.kind == KindLiteral {
		return p.sym
	}
	return 0
}

// Left returns the left child of a Concat or Union node, or nil.
func (p *Pattern) Left() *Pattern {
	if p.kind == KindConcat || p.kind == KindUnion {
		return p.left
	}
	return nil
}

// Right returns the right child of a Concat or Union node, or nil.
func (p *Pattern) Right() *Pattern {
	if p.kind == KindConcat || p.kind == KindUnion {
		return p.right
	}
	return nil
}

// Inner returns the repeated pattern of a Repeat node, or nil.
func (p *Pattern) Inner() *Pattern {
	if p.kind == KindRepeat {
		return p.left
	}
	return nil
}

// Equal reports whether a and b are structurally equal.
// Interned patterns compare equal exactly when they are the same pointer,
// but Equal does not require interning.
func Equal(a, b *Pattern) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNoMatch, KindEmpty:
		return true
	case KindLiteral:
		return a.sym == b.sym
	case KindRepeat:
		return Equal(a.left, b.left)
	default: // Concat, Union
		return Equal(a.left, b.left) && Equal(a.right, b.right)
	}
}

// Size returns the number of nodes in the tree.
// Shared subtrees are counted once per occurrence, so Size measures the
// logical tree, not the physical node count after interning.
func (p *Pattern) Size() int {
	if p == nil {
		return 0
	}
	switch p.kind {
	case KindConcat, KindUnion:
		return 1 + p.left.Size() + p.right.Size()
	case KindRepeat:
		return 1 + p.left.Size()
	default:
		return 1
	}
}

// String returns a debug rendering of the pattern.
// Leaves render as [fail], [eps] and quoted bytes; composites render as
// (lr), (l|r) and (p)*.
//
// Example:
//
//	p := pattern.Union(pattern.Literal('a'), pattern.Empty())
//	fmt.Println(p) // ('a'|[eps])
func (p *Pattern) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *Pattern) write(b *strings.Builder) {
	switch p.kind {
	case KindNoMatch:
		b.WriteString("[fail]")
	case KindEmpty:
		b.WriteString("[eps]")
	case KindLiteral:
		fmt.Fprintf(b, "%q", p.sym)
	case KindConcat:
		b.WriteByte('(')
		p.left.write(b)
		p.right.write(b)
		b.WriteByte(')')
	case KindUnion:
		b.WriteByte('(')
		p.left.write(b)
		b.WriteByte('|')
		p.right.write(b)
		b.WriteByte(')')
	case KindRepeat:
		b.WriteByte('(')
		p.left.write(b)
		b.WriteString(")*")
	}
}
