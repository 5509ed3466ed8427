package search

import (
	"math"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// scoreMultiTokenMatch implements spec §4.4's multi_token_match scorer:
// graduated match over the full haystack, raised to the 1.3 exponent to
// reward strong average match quality disproportionately, plus a
// composition bonus for all-EXACT hits and a bonus for consecutive
// token runs.
func scoreMultiTokenMatch(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights, _ *searchAux) float64 {
	tokens := expandedTokenStrings(ctx)
	haystack := Haystack(r)

	g := Graduated(tokens, haystack)
	score := math.Pow(g, 1.3)

	score += compositionBonus(tokens, haystack, w.MultiTokenCompositionMax)
	score += consecutiveBonus(tokens, haystack, w.MultiTokenConsecutiveMax)

	return score
}

// compositionBonus rewards matches composed mostly of EXACT
// classifications: up to compositionMax when every classified token is
// EXACT, scaled down linearly as the mix shifts toward PREFIX/SUBSTRING.
// Records with no matching tokens get no bonus.
func compositionBonus(tokens []string, text string, compositionMax float64) float64 {
	matched := 0
	qualitySum := 0.0
	for _, tok := range tokens {
		c := Classify(tok, text)
		if c == NONE {
			continue
		}
		matched++
		qualitySum += c.weight()
	}
	if matched == 0 {
		return 0
	}
	avgQuality := qualitySum / float64(matched)
	return compositionMax * avgQuality
}

// consecutiveBonus rewards adjacent query tokens appearing adjacent in
// text, scaled by how many of the possible adjacent pairs matched.
func consecutiveBonus(tokens []string, text string, consecutiveMax float64) float64 {
	if len(tokens) < 2 {
		return 0
	}
	hits := ConsecutiveMatches(tokens, text)
	maxPairs := len(tokens) - 1
	return consecutiveMax * float64(hits) / float64(maxPairs)
}

// expandedTokenStrings extracts the plain token strings from the query
// context's expanded token list, in order.
func expandedTokenStrings(ctx *models.QueryContext) []string {
	out := make([]string, len(ctx.ExpandedTokens))
	for i, t := range ctx.ExpandedTokens {
		out[i] = t.Token
	}
	return out
}
