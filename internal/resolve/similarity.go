package resolve

import (
	"sort"
	"strings"
	"unicode"
)

// nameSimilarity computes a symmetric, case- and word-order-tolerant
// similarity between two names in [0,1]. Both inputs are lowercased,
// stripped to alphanumeric tokens, and token-sorted before an
// edit-distance ratio is taken, so "Gardevoir ex" and "EX Gardevoir"
// compare equal.
func nameSimilarity(a, b string) float64 {
	na := normalizeTokens(a)
	nb := normalizeTokens(b)

	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	longest := len(na)
	if len(nb) > longest {
		longest = len(nb)
	}

	return 1 - float64(editDistance(na, nb))/float64(longest)
}

// normalizeTokens lowercases, replaces non-alphanumeric runs with single
// spaces, and sorts the resulting tokens.
func normalizeTokens(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	tokens := strings.Fields(sb.String())
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// editDistance is the Levenshtein distance between two strings, computed
// over bytes with a two-row table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = prev[j-1] + cost
			if prev[j]+1 < curr[j] {
				curr[j] = prev[j] + 1
			}
			if curr[j-1]+1 < curr[j] {
				curr[j] = curr[j-1] + 1
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
