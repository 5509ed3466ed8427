package search

import (
	"strings"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// scoreTitle implements spec §4.4's title scorer.
func scoreTitle(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights, _ *searchAux) float64 {
	title := r.Title
	if title == "" {
		return 0
	}

	expanded := expandedTokenStrings(ctx)
	original := ctx.OriginalTokens

	score := 0.3*Graduated(expanded, title) + 0.7*Graduated(original, title)
	score += titlePositionBonus(original, title, w.TitlePositionBonusMax)
	score += consecutiveBonus(original, title, w.MultiTokenConsecutiveMax)
	score += compositionBonus(original, title, w.MultiTokenCompositionMax)
	score += startsWithBonus(original, title, w.TitleStartsWithBonus)

	if score > 1.0 {
		return 1.0
	}
	return score
}

// titlePositionBonus rewards matches near the start of the title, up to
// bonusMax, decaying to 0 toward the end of the string.
func titlePositionBonus(tokens []string, title string, bonusMax float64) float64 {
	pos, ok := FirstMatchPosition(tokens, title)
	if !ok || len(title) == 0 {
		return 0
	}
	fraction := 1.0 - float64(pos)/float64(len(title))
	if fraction < 0 {
		fraction = 0
	}
	return bonusMax * fraction
}

// startsWithBonus rewards a title whose first alphanumeric word is
// exactly an original query token.
func startsWithBonus(tokens []string, title string, bonus float64) float64 {
	words := strings.FieldsFunc(strings.ToLower(title), isSeparator)
	if len(words) == 0 {
		return 0
	}
	first := words[0]
	for _, tok := range tokens {
		if tok == first {
			return bonus
		}
	}
	return 0
}
