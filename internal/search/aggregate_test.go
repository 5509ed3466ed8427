package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraduated(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		text     string
		expected float64
	}{
		{"empty tokens", nil, "anything", 0},
		{"all exact", []string{"github", "pull"}, "github pull requests", 1.0},
		{"mixed exact and none", []string{"github", "zzz"}, "github pull requests", 0.5},
		{"single substring", []string{"hub"}, "github", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Graduated(tt.tokens, tt.text), 1e-9)
		})
	}
}

func TestFirstMatchPosition(t *testing.T) {
	pos, ok := FirstMatchPosition([]string{"pull", "github"}, "github pull requests")
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = FirstMatchPosition([]string{"zzz"}, "github pull requests")
	assert.False(t, ok)
}

func TestConsecutiveMatches(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		text     string
		expected int
	}{
		{"adjacent pair", []string{"github", "pull"}, "github pull requests", 1},
		{"separated by other words", []string{"github", "pull"}, "github dashboard pull requests", 0},
		{"separators ignored", []string{"zaar", "api"}, "zaar-api", 1},
		{"fewer than two tokens", []string{"github"}, "github pull", 0},
		{"three tokens two pairs", []string{"github", "pull", "requests"}, "github pull requests", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConsecutiveMatches(tt.tokens, tt.text))
		})
	}
}
