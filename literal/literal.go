// Package literal extracts literal byte sequences from patterns for
// prefilter optimization.
//
// The extractor computes, for a pattern, a set of anchored prefix literals:
// byte sequences such that every input the pattern matches starts with one
// of them. The prefilter package turns such a set into a quick-reject check
// that runs before the derivative engine.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that may begin (or entirely
//     constitute) a match.
//   - A Seq is a set of alternative literals, e.g. from a Union.
//
// Extraction is conservative: when a pattern gives no usable prefix
// information (a nullable pattern, or an alternation past the configured
// cap), the extractor reports that instead of guessing.
package literal

// Literal represents a literal byte sequence extracted from a pattern.
//
// Example:
//   - Literal('h') followed by Literal('i')  → Literal{[]byte("hi"), true}
//   - Concat(Literal('h'), Repeat(...))      → Literal{[]byte("h"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence. May be empty: an
	// empty literal arises from nullable patterns and means the literal
	// carries no rejection power.
	Bytes []byte

	// Complete indicates whether this literal is an entire string of the
	// pattern's language (true) rather than just a required prefix (false).
	// Only complete literals may be extended by further concatenation.
	Complete bool
}

// NewLiteral creates a Literal from the given byte sequence and
// completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int { return len(l.Bytes) }

// String returns a debug representation of the literal.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals. For a prefix Seq the guarantee is:
// every input the source pattern matches has at least one member as a
// prefix. A nil *Seq means "no prefix information available".
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Println(seq.Len()) // 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if out of bounds.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

// IsEmpty reports whether the sequence has no literals. An empty (non-nil)
// prefix Seq means the source pattern's language is empty: there is no
// input it matches, vacuously satisfying the prefix guarantee.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// HasEmptyLiteral reports whether any member has zero length. A prefix Seq
// containing an empty literal cannot reject anything.
func (s *Seq) HasEmptyLiteral() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if len(lit.Bytes) == 0 {
			return true
		}
	}
	return false
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence. Inputs shorter than MinLen cannot have any member as a prefix.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if len(lit.Bytes) < min {
			min = len(lit.Bytes)
		}
	}
	return min
}
