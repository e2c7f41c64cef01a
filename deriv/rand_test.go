package deriv

import (
	"math/rand"

	"github.com/coregx/rederiv/pattern"
)

// testAlphabet is the symbol set used by randomized tests. Small on
// purpose: collisions between pattern literals and input bytes are what
// make generated cases interesting.
var testAlphabet = []byte("abc")

// randomPattern generates a grammar-directed random pattern of bounded
// depth. Leaf kinds are weighted toward literals so generated patterns
// usually have a nonempty language.
func randomPattern(r *rand.Rand, depth int) *pattern.Pattern {
	if depth <= 0 {
		switch r.Intn(4) {
		case 0:
			return pattern.NoMatch()
		case 1:
			return pattern.Empty()
		default:
			return pattern.Literal(testAlphabet[r.Intn(len(testAlphabet))])
		}
	}
	switch r.Intn(8) {
	case 0:
		return pattern.NoMatch()
	case 1:
		return pattern.Empty()
	case 2, 3:
		return pattern.Literal(testAlphabet[r.Intn(len(testAlphabet))])
	case 4, 5:
		return pattern.Concat(randomPattern(r, depth-1), randomPattern(r, depth-1))
	case 6:
		return pattern.Union(randomPattern(r, depth-1), randomPattern(r, depth-1))
	default:
		return pattern.Repeat(randomPattern(r, depth-1))
	}
}

// randomInput generates an input over the test alphabet. Short inputs keep
// the exponential oracle affordable.
func randomInput(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen + 1)
	input := make([]byte, n)
	for i := range input {
		input[i] = testAlphabet[r.Intn(len(testAlphabet))]
	}
	return input
}
