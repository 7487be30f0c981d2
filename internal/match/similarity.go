package match

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Similarity returns a [0,1] similarity ratio between two texts.
// Degenerate inputs (either side empty or whitespace-only) fall back to a
// token-overlap ratio instead of erroring, so the function is total.
func Similarity(a, b string) float64 {
	a = strings.TrimSpace(strings.ToLower(a))
	b = strings.TrimSpace(strings.ToLower(b))

	if a == "" || b == "" {
		return tokenOverlap(a, b)
	}
	if a == b {
		return 1.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	common := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			common += len(d.Text)
		}
	}

	// Same ratio difflib uses: 2*M / T
	return float64(2*common) / float64(len(a)+len(b))
}

// tokenOverlap is the Jaccard ratio of the two token sets
func tokenOverlap(a, b string) float64 {
	wordsA := tokenSet(a)
	wordsB := tokenSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	intersection := 0
	union := len(wordsB)
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}
