package search

import "strings"

// Graduated returns the mean classification weight of tokens against
// text. An empty token sequence scores 0.
func Graduated(tokens []string, text string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	sum := 0.0
	for _, tok := range tokens {
		sum += Classify(tok, text).weight()
	}
	return sum / float64(len(tokens))
}

// FirstMatchPosition returns the zero-based byte index of the first
// occurrence of any classified (non-NONE) token in text, and whether any
// token matched at all.
func FirstMatchPosition(tokens []string, text string) (int, bool) {
	lower := strings.ToLower(text)
	best := -1
	for _, tok := range tokens {
		if Classify(tok, text) == NONE {
			continue
		}
		idx := strings.Index(lower, tok)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best, best >= 0
}

// ConsecutiveMatches counts adjacent token pairs (tokens[k], tokens[k+1])
// that occur in text with tokens[k] immediately followed — ignoring runs
// of non-alphanumeric separators — by tokens[k+1].
func ConsecutiveMatches(tokens []string, text string) int {
	if len(tokens) < 2 {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for i := 0; i < len(tokens)-1; i++ {
		if isAdjacent(lower, tokens[i], tokens[i+1]) {
			count++
		}
	}
	return count
}

// isAdjacent reports whether a occurs in text immediately followed by b,
// with only non-alphanumeric characters (if any) between them.
func isAdjacent(lowerText, a, b string) bool {
	start := 0
	for {
		idx := strings.Index(lowerText[start:], a)
		if idx < 0 {
			return false
		}
		idx += start
		after := idx + len(a)

		j := after
		for j < len(lowerText) && !isAlnumByte(lowerText[j]) {
			j++
		}
		if strings.HasPrefix(lowerText[j:], b) {
			return true
		}
		start = idx + 1
	}
}
