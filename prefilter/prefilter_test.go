package prefilter

import (
	"testing"

	"github.com/coregx/rederiv/literal"
	"github.com/coregx/rederiv/pattern"
)

func TestBuild_NoInformation(t *testing.T) {
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Error("nil seq should build no prefilter")
	}

	withEmpty := literal.NewSeq(literal.NewLiteral(nil, false))
	if pf := NewBuilder(withEmpty).Build(); pf != nil {
		t.Error("seq with empty literal should build no prefilter")
	}
}

func TestBuild_EmptyLanguage(t *testing.T) {
	pf := NewBuilder(literal.NewSeq()).Build()
	if pf == nil {
		t.Fatal("empty seq should build the reject-all prefilter")
	}
	for _, input := range []string{"", "a", "anything"} {
		if !pf.Reject([]byte(input)) {
			t.Errorf("reject-all passed %q", input)
		}
	}
	if pf.HeapBytes() != 0 {
		t.Errorf("reject-all HeapBytes = %d, want 0", pf.HeapBytes())
	}
}

func TestAnchoredPrefix_Reject(t *testing.T) {
	seq := literal.NewSeq(
		literal.NewLiteral([]byte("ab"), false),
		literal.NewLiteral([]byte("cd"), false),
	)
	pf := NewBuilder(seq).Build()
	if pf == nil {
		t.Fatal("expected an anchored prefix prefilter")
	}

	tests := []struct {
		input  string
		reject bool
	}{
		{"ab", false},
		{"abxyz", false},
		{"cd", false},
		{"cdab", false},
		{"xab", true},  // literal present but not at position 0
		{"a", true},    // shorter than any literal
		{"", true},     // shorter than any literal
		{"zzzz", true}, // no literal at all
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			if got := pf.Reject([]byte(tt.input)); got != tt.reject {
				t.Errorf("Reject(%q) = %v, want %v", tt.input, got, tt.reject)
			}
		})
	}

	if pf.HeapBytes() <= 0 {
		t.Error("anchored prefilter should report nonzero heap usage")
	}
}

// TestAnchoredPrefix_NeverRejectsMatch builds the prefilter from real
// extractions and checks it never rejects an input the pattern matches.
func TestAnchoredPrefix_NeverRejectsMatch(t *testing.T) {
	ex := literal.New(literal.DefaultConfig())

	cases := []struct {
		p       *pattern.Pattern
		matches []string
	}{
		{
			pattern.Concat(pattern.Literal('a'), pattern.Literal('b')),
			[]string{"ab"},
		},
		{
			pattern.Concat(
				pattern.Union(pattern.Literal('a'), pattern.Literal('b')),
				pattern.Repeat(pattern.Literal('c')),
			),
			[]string{"a", "b", "ac", "bccc"},
		},
		{
			pattern.Concat(
				pattern.Union(pattern.Empty(), pattern.Literal('a')),
				pattern.Literal('b'),
			),
			[]string{"b", "ab"},
		},
	}

	for _, tc := range cases {
		pf := NewBuilder(ex.ExtractPrefixes(tc.p)).Build()
		if pf == nil {
			continue // extraction unusable for this shape; nothing to verify
		}
		for _, input := range tc.matches {
			if pf.Reject([]byte(input)) {
				t.Errorf("prefilter for %v rejected matching input %q", tc.p, input)
			}
		}
	}
}
