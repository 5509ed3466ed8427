package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"normal vectors", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"zero vector", []float64{1, 2, 3}, []float64{0, 0, 0}, 0},
		{"different lengths", []float64{1, 2}, []float64{3, 4, 5}, 0},
		{"empty vectors", []float64{}, []float64{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DotProduct(tt.a, tt.b))
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        []float64
		expected float64
	}{
		{"normal vector", []float64{3, 4}, 5},
		{"unit vector", []float64{1, 0, 0}, 1},
		{"zero vector", []float64{0, 0, 0}, 0},
		{"empty vector", []float64{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Magnitude(tt.v), 1e-10)
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical vectors", []float64{1, 0, 0}, []float64{1, 0, 0}, 1},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposed vectors clamp to zero", []float64{1, 0}, []float64{-1, 0}, 0},
		{"mismatched lengths", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"zero magnitude", []float64{0, 0}, []float64{1, 1}, 0},
		{"empty vectors", []float64{}, []float64{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-10)
		})
	}
}

// Cosine bounds (spec §8): the embedding scorer's output is in [0, 1]
// for arbitrary input vectors.
func TestCosineSimilarityBounds(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3}, {-1, -2, -3}, {0.5, -0.5, 0.1}, {100, -50, 25}, {0, 0, 0},
	}
	for _, a := range vectors {
		for _, b := range vectors {
			sim := CosineSimilarity(a, b)
			assert.False(t, math.IsNaN(sim))
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}
