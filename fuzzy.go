package xlsq

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FuzzyFind returns the most approximate string inside 'targets' that
// matches the 'source' string within a maximum Levenshtein 'maxDistance'.
// Case and diacritics are ignored. Returns "" when nothing comes close.
func FuzzyFind(source string, targets []string, maxDistance int) (found string) {
	src := fix(source)

	for _, target := range targets {
		trg := fix(target)
		if strings.HasPrefix(src, trg) || strings.HasPrefix(trg, src) {
			return target
		}
		distance := fuzzy.LevenshteinDistance(src, trg)
		if distance <= maxDistance {
			maxDistance = distance
			found = target
		}
	}

	return
}

func fix(txt string) string {
	return RemoveDiacritics(strings.ToUpper(strings.TrimSpace(txt)))
}
