package search

import (
	"math"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
	"github.com/sirupsen/logrus"
)

// searchAux carries per-search state shared across scorers: the current
// time and the host→count map the domain_familiarity scorer needs. It is
// built once per Search call and discarded at the end, per spec §5's "no
// locks needed in the hot path" and §9's ban on scorer-visible mutable
// state beyond this read-only borrow. Scorers only read it; runScorers
// alone sets nanLogged.
type searchAux struct {
	nowMillis    int64
	hostCounts   map[string]int
	totalRecords int
	nanLogged    bool // a NaN/Inf debug line was already logged this search
}

// scorerFunc is the fixed contract every scorer implements: (record,
// query context) → a score, generally in [0, ~1]. The set is closed —
// spec §9 forbids runtime plugin registration — so this is a plain
// function value, not an interface with a registry.
type scorerFunc func(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights, aux *searchAux) float64

type scorerEntry struct {
	name   string
	weight func(w *Weights, ctx *models.QueryContext) float64
	score  scorerFunc
}

// scorers is the fixed, closed array of the nine scorers and their
// weights. Adding a scorer is a source change and recompilation, never a
// runtime registration, per spec §9.
var scorers = [...]scorerEntry{
	{"multi_token_match", constWeight(func(w *Weights) float64 { return w.MultiTokenMatch }), scoreMultiTokenMatch},
	{"title", constWeight(func(w *Weights) float64 { return w.Title }), scoreTitle},
	{"recency", constWeight(func(w *Weights) float64 { return w.Recency }), scoreRecency},
	{"cross_dimensional", constWeight(func(w *Weights) float64 { return w.CrossDimensional }), scoreCrossDimensional},
	{"visit_count", constWeight(func(w *Weights) float64 { return w.VisitCount }), scoreVisitCount},
	{"url", constWeight(func(w *Weights) float64 { return w.URL }), scoreURL},
	{"meta", constWeight(func(w *Weights) float64 { return w.Meta }), scoreMeta},
	{"domain_familiarity", constWeight(func(w *Weights) float64 { return w.DomainFamiliarity }), scoreDomainFamiliarity},
	{"embedding", scoreEmbeddingWeight, scoreEmbedding},
}

func constWeight(f func(w *Weights) float64) func(*Weights, *models.QueryContext) float64 {
	return func(w *Weights, _ *models.QueryContext) float64 { return f(w) }
}

// scoreEmbeddingWeight implements spec §4.4's "0.0 or 0.4" rule: the
// embedding scorer only carries weight when semantic search is enabled
// for this search and a query embedding is actually present.
func scoreEmbeddingWeight(w *Weights, ctx *models.QueryContext) float64 {
	if !ctx.Flags.SemanticEnabled || ctx.QueryEmbedding == nil {
		return 0
	}
	return w.Embedding
}

// runScorers evaluates every scorer against r, returning the per-scorer
// values and their weighted sum (the base score, §4.4: "not normalized
// to 1.0"). NaN/Inf from any scorer is treated as 0 and logged once per
// search at debug level, per spec §7.
func runScorers(r *models.IndexedRecord, ctx *models.QueryContext, w *Weights, aux *searchAux, log *logrus.Entry) (map[string]float64, float64) {
	values := make(map[string]float64, len(scorers))
	base := 0.0

	for _, s := range scorers {
		v := s.score(r, ctx, w, aux)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if log != nil && !aux.nanLogged {
				aux.nanLogged = true
				log.WithFields(logrus.Fields{
					"scorer": s.name,
					"url":    r.URL,
				}).Debug("scorer produced NaN/Inf, treating as 0")
			}
			v = 0
		}
		values[s.name] = v
		base += s.weight(w, ctx) * v
	}

	return values, base
}
