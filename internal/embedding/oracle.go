// Package embedding defines the sentence-embedding oracle used for
// semantic job matching, plus vector similarity helpers.
package embedding

import (
	"context"
	"math"
)

// Oracle maps text to a fixed-length vector. It is an opaque external
// dependency: deterministic given a model, but model-version dependent.
// The matching engine tolerates its absence entirely.
type Oracle interface {
	// Embed returns the embedding vector for one text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths or empty/zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
