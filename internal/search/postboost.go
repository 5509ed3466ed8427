package search

import (
	"strings"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// derived holds the per-record fields the post-boost composer and
// intent sorter both need, computed once after scoring (spec §3's
// ScoredRecord fields).
type derived struct {
	titleURLCoverage float64
	titleURLQuality  float64
	splitField       bool
	hasKeywordMatch  bool
	hasLiteralMatch  bool
	onlyAIMatched    bool
}

// computeDerived fills in the fields of ScoredRecord that depend on
// where original tokens matched, used by both the post-boost composer
// and the intent-priority sorter.
func computeDerived(r *models.IndexedRecord, ctx *models.QueryContext) derived {
	titleURL := r.Title + " " + r.URL
	original := ctx.OriginalTokens
	_, urlPath := splitURL(r.URL)

	d := derived{
		titleURLQuality: Graduated(original, titleURL),
		hasLiteralMatch: literalMatch(r, ctx.RawQuery),
	}

	if len(original) > 0 {
		found := 0
		inTitleOnly := false
		inURLOnly := false
		for _, tok := range original {
			inTitle := Classify(tok, r.Title) != NONE
			inURL := Classify(tok, r.URL) != NONE
			// A token that only ever matches the host (e.g. "console" in
			// "console.cloud.google.com") shouldn't count as "in url" for
			// split-field purposes — it's really a title/host echo, not a
			// token split across title and url content. Split-field looks
			// at the url's path instead, so a host-only hit doesn't mask a
			// genuine title-vs-path split (see DESIGN.md's Open Question
			// decision on spec §8 scenario 2).
			inURLPath := Classify(tok, urlPath) != NONE
			if inTitle || inURL {
				found++
			}
			if inTitle && !inURLPath {
				inTitleOnly = true
			}
			if inURLPath && !inTitle {
				inURLOnly = true
			}
			if Classify(tok, Haystack(r)) != NONE {
				d.hasKeywordMatch = true
			}
		}
		d.titleURLCoverage = float64(found) / float64(len(original))
		d.splitField = inTitleOnly && inURLOnly
	}

	d.onlyAIMatched = onlyAIOriginMatched(r, ctx)

	return d
}

func literalMatch(r *models.IndexedRecord, rawQuery string) bool {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.URL), q)
}

// onlyAIOriginMatched reports whether every classified hit against the
// haystack came from an AI-origin expanded token, with no original or
// synonym token ever classifying as non-NONE.
func onlyAIOriginMatched(r *models.IndexedRecord, ctx *models.QueryContext) bool {
	haystack := Haystack(r)
	anyHit := false
	anyNonAIHit := false
	for _, t := range ctx.ExpandedTokens {
		if Classify(t.Token, haystack) == NONE {
			continue
		}
		anyHit = true
		if t.Origin != models.OriginAI {
			anyNonAIHit = true
		}
	}
	return anyHit && !anyNonAIHit
}

// applyPostBoost composes the fixed, ordered sequence of multiplicative
// boosts from spec §4.5 onto base, returning the final score.
func applyPostBoost(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights, d derived, base float64) float64 {
	score := base

	// 1. Literal match
	if d.hasLiteralMatch {
		score *= w.LiteralMatchBoost
	}

	// 2. Graduated title quality
	score *= titleQualityMultiplier(r, ctx, w)

	// 3. Combined title+URL intent (only for multi-token queries)
	if len(ctx.OriginalTokens) >= 2 {
		score *= combinedIntentMultiplier(d, w)
	}

	// 4. Consecutive token (title)
	score *= consecutiveTitleMultiplier(ctx.OriginalTokens, r.Title, w)

	// 5. AI expansion
	if d.onlyAIMatched {
		score *= w.AIOnlyBoost
	}

	return score
}

func titleQualityMultiplier(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights) float64 {
	original := ctx.OriginalTokens
	if len(original) == 0 || r.Title == "" {
		return 1.0
	}

	classes := make([]MatchClass, len(original))
	matchedCount := 0
	for i, tok := range original {
		classes[i] = Classify(tok, r.Title)
		if classes[i] != NONE {
			matchedCount++
		}
	}

	quality := Graduated(original, r.Title)

	if matchedCount < len(original) {
		if matchedCount == 0 {
			return 1.0
		}
		return 1.0 + quality*w.TitlePartialQualityFactor
	}

	// All matched.
	allExact, allPrefixOrSubstring, allSubstring := true, true, true
	for _, c := range classes {
		if c != EXACT {
			allExact = false
		}
		if c != PREFIX && c != SUBSTRING {
			allPrefixOrSubstring = false
		}
		if c != SUBSTRING {
			allSubstring = false
		}
	}

	switch {
	case allExact:
		return w.TitleAllExactBoost
	case allSubstring:
		return w.TitleAllSubstringBoost
	case allPrefixOrSubstring:
		return 1.0 + quality*w.TitleAllPrefixSubstringFactor
	default:
		return 1.0 + quality*w.TitleMixedQualityFactor
	}
}

func combinedIntentMultiplier(d derived, w *Weights) float64 {
	switch {
	case d.titleURLCoverage >= 1.0 && d.splitField:
		return w.CombinedFullSplitBoost
	case d.titleURLCoverage >= 1.0:
		return w.CombinedFullSingleBoost
	case d.titleURLCoverage >= w.CombinedHighCoverageThreshold:
		return w.CombinedHighCoverageBoost
	default:
		return 1.0
	}
}

func consecutiveTitleMultiplier(tokens []string, title string, w *Weights) float64 {
	if len(tokens) < 2 || title == "" {
		return 1.0
	}
	hits := ConsecutiveMatches(tokens, title)
	maxPairs := len(tokens) - 1
	return 1.0 + (float64(hits)/float64(maxPairs))*w.ConsecutiveTitleBoostMax
}
