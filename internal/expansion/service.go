// Package expansion provides the default ExpansionService used by
// cmd/deepsearch: an exact synonym table and typo-correction map adapted
// from the teacher, plus a fuzzy-matching pass against a canonical
// vocabulary that tags its suggestions as AI-origin tokens.
package expansion

import (
	"sort"

	"github.com/deepsearch-labs/deepsearch/internal/search"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"
)

// vocabulary is every canonical term the synonym and typo tables
// resolve to, plus the domain terms that appear as map values. The
// fuzzy pass ranks query tokens against this list rather than against
// the live corpus, so expansion stays independent of any particular
// record source.
var vocabulary = buildVocabulary()

func buildVocabulary() []string {
	seen := make(map[string]bool)
	var vocab []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			vocab = append(vocab, w)
		}
	}
	for _, canon := range synonyms {
		add(canon)
	}
	for _, canon := range typoCorrections {
		add(canon)
	}
	sort.Strings(vocab)
	return vocab
}

// maxFuzzyDistance bounds how loose a fuzzy suggestion may be; beyond
// this the match is more likely noise than a genuine typo.
const maxFuzzyDistance = 2

// Service is a synchronous ExpansionService (spec §6: "synchronous
// adapters wrap any async underlying call" — this implementation has no
// async call to wrap, so it is its own adapter).
type Service struct {
	Log *logrus.Entry
}

// New constructs a Service. log may be nil.
func New(log *logrus.Entry) *Service {
	return &Service{Log: log}
}

// Expand implements search.ExpansionService. Original tokens come from
// the shared tokenizer; synonyms come from an exact lookup per token;
// AI tokens come from a fuzzy pass over tokens with no exact synonym or
// typo hit, tagged ai so the post-boost composer can recognize
// AI-only matches (spec §4.5's fifth boost).
func (s *Service) Expand(rawQuery string) (search.ExpansionResult, error) {
	original := search.Tokenize(rawQuery)

	var syn, ai []string
	for _, t := range original {
		if canon, ok := synonyms[t]; ok {
			syn = append(syn, canon)
			continue
		}
		if canon, ok := correctTypo(t); ok {
			syn = append(syn, canon)
			continue
		}
		if suggestion, ok := fuzzySuggest(t); ok {
			ai = append(ai, suggestion)
		}
	}

	return search.ExpansionResult{
		Original: original,
		Synonyms: dedupe(syn),
		AI:       dedupe(ai),
	}, nil
}

func fuzzySuggest(token string) (string, bool) {
	if len(token) < 3 {
		return "", false
	}
	ranks, found := fuzzy.RankFindFold(token, vocabulary)
	if !found || len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	best := ranks[0]
	if best.Distance > maxFuzzyDistance {
		return "", false
	}
	return best.Target, true
}

func dedupe(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
