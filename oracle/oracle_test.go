package oracle

import (
	"strings"
	"testing"

	"github.com/coregx/rederiv/pattern"
)

func TestMatches_Leaves(t *testing.T) {
	tests := []struct {
		name  string
		p     *pattern.Pattern
		input string
		want  bool
	}{
		{"nomatch empty", pattern.NoMatch(), "", false},
		{"nomatch nonempty", pattern.NoMatch(), "a", false},
		{"empty empty", pattern.Empty(), "", true},
		{"empty nonempty", pattern.Empty(), "a", false},
		{"literal hit", pattern.Literal('a'), "a", true},
		{"literal miss", pattern.Literal('a'), "b", false},
		{"literal too long", pattern.Literal('a'), "aa", false},
		{"literal empty input", pattern.Literal('a'), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.p, []byte(tt.input)); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", tt.p, tt.input, got, tt.want)
			}
		})
	}
}

func TestMatches_Composites(t *testing.T) {
	ab := pattern.Concat(pattern.Literal('a'), pattern.Literal('b'))
	aOrB := pattern.Union(pattern.Literal('a'), pattern.Literal('b'))
	aStar := pattern.Repeat(pattern.Literal('a'))

	tests := []struct {
		name  string
		p     *pattern.Pattern
		input string
		want  bool
	}{
		{"concat ab", ab, "ab", true},
		{"concat ba", ab, "ba", false},
		{"concat partial", ab, "a", false},
		{"concat empty", ab, "", false},

		{"union a", aOrB, "a", true},
		{"union b", aOrB, "b", true},
		{"union other", aOrB, "c", false},
		{"union empty", aOrB, "", false},

		{"repeat empty", aStar, "", true},
		{"repeat one", aStar, "a", true},
		{"repeat many", aStar, "aaa", true},
		{"repeat mixed", aStar, "aab", false},

		{
			"concat with multiple valid splits",
			pattern.Concat(aStar, aStar),
			"aaaa",
			true,
		},
		{
			"nullable left concat",
			pattern.Concat(pattern.Union(pattern.Empty(), pattern.Literal('a')), pattern.Literal('b')),
			"b",
			true,
		},
		{
			"nullable left concat consuming",
			pattern.Concat(pattern.Union(pattern.Empty(), pattern.Literal('a')), pattern.Literal('b')),
			"ab",
			true,
		},
		{
			"repeat of concat",
			pattern.Repeat(ab),
			"ababab",
			true,
		},
		{
			"repeat of concat odd tail",
			pattern.Repeat(ab),
			"ababa",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.p, []byte(tt.input)); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", tt.p, tt.input, got, tt.want)
			}
		})
	}
}

// TestMatches_NullableRepeat exercises the termination hazard: the inner
// pattern accepts the empty input, so a literal search over piece counts
// would never finish. The nonempty-first-piece search must both terminate
// and give the right answers.
func TestMatches_NullableRepeat(t *testing.T) {
	inner := pattern.Union(pattern.Empty(), pattern.Literal('a'))
	p := pattern.Repeat(inner)

	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"aaaa", true},
		{"b", false},
		{"aab", false},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			if got := Matches(p, []byte(tt.input)); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", p, tt.input, got, tt.want)
			}
		})
	}
}

// TestMatches_NestedNullableRepeat stacks nullable repetitions, the worst
// case for naive piece enumeration.
func TestMatches_NestedNullableRepeat(t *testing.T) {
	p := pattern.Repeat(pattern.Repeat(pattern.Union(pattern.Empty(), pattern.Literal('a'))))

	if !Matches(p, nil) {
		t.Error("expected empty input to match")
	}
	if !Matches(p, []byte(strings.Repeat("a", 6))) {
		t.Error("expected aaaaaa to match")
	}
	if Matches(p, []byte("aab")) {
		t.Error("expected aab not to match")
	}
}
