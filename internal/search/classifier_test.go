package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		text     string
		expected MatchClass
	}{
		{"no match", "zzz", "github pull requests", NONE},
		{"exact whole word", "github", "GitHub Pull Requests", EXACT},
		{"prefix inside path segment", "pull", "github.com/pulls-closed", PREFIX},
		{"prefix at word start", "pull", "pulls", PREFIX},
		{"substring mid-word", "hub", "github", SUBSTRING},
		{"exact at string start", "github", "github.com", EXACT},
		{"exact at string end", "dashboard", "cloud dashboard", EXACT},
		{"case insensitive text", "plan", "PLAN for today", EXACT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.token, tt.text))
		})
	}
}

func TestClassifyWeights(t *testing.T) {
	assert.Equal(t, 1.0, EXACT.weight())
	assert.Equal(t, 0.75, PREFIX.weight())
	assert.Equal(t, 0.4, SUBSTRING.weight())
	assert.Equal(t, 0.0, NONE.weight())
}

// Classifier monotonicity (spec §8): if text1 is a substring of text2,
// classify(t, text1) <= classify(t, text2) under NONE<SUBSTRING<PREFIX<EXACT.
func TestClassifyMonotonicUnderSubstring(t *testing.T) {
	cases := []struct {
		token          string
		text1, text2   string
	}{
		{"hub", "hub", "github hub"},
		{"github", "hub", "github hub"},
		{"pull", "pull", "pulls and pull requests"},
	}
	for _, c := range cases {
		c1 := Classify(c.token, c.text1)
		c2 := Classify(c.token, c.text2)
		assert.LessOrEqual(t, int(c1), int(c2), "token %q: classify(%q)=%v > classify(%q)=%v", c.token, c.text1, c1, c.text2, c2)
	}
}
