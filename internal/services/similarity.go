package services

import (
	"context"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// SimilarityThreshold is the inner-product cutoff above which two responses
// in the same category count as duplicates of each other.
const SimilarityThreshold = 0.85

// Embedder turns texts into vectors comparable by inner product.
type Embedder interface {
	Embed(ctx context.Context, input map[string]string) (map[string][]float64, error)
}

// SimilarityService detects near-duplicate responses across players for one
// category.
type SimilarityService struct {
	embedder Embedder
}

func NewSimilarityService(embedder Embedder) *SimilarityService {
	return &SimilarityService{embedder: embedder}
}

// CountSimilar returns, for each response position, how many other responses
// it exceeded the similarity threshold with. Counts always move in pairs: if
// i is similar to j, both counters increment. The count is additive over all
// pairs regardless of whether the matched responses resemble each other.
//
// The embedding batch is keyed by position index rather than by content, so
// two players answering the same word get independent vectors. Missing
// answers arrive as empty strings and are embedded like any other response;
// two players skipping the same category can therefore read as duplicates.
func (s *SimilarityService) CountSimilar(ctx context.Context, responses []string) ([]int, error) {
	counts := make([]int, len(responses))
	if len(responses) < 2 {
		return counts, nil
	}

	input := make(map[string]string, len(responses))
	for i, response := range responses {
		input[strconv.Itoa(i)] = response
	}

	embeddings, err := s.embedder.Embed(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("embed responses: %w", err)
	}

	vectors := make([][]float64, len(responses))
	for i := range responses {
		vector, ok := embeddings[strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("embedding provider returned no vector for position %d", i)
		}
		vectors[i] = vector
	}

	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			if len(vectors[i]) != len(vectors[j]) {
				return nil, fmt.Errorf("embedding dimensions disagree: %d vs %d", len(vectors[i]), len(vectors[j]))
			}
			// Vectors come back normalized, so the dot product stands in
			// for cosine similarity.
			if floats.Dot(vectors[i], vectors[j]) > SimilarityThreshold {
				counts[i]++
				counts[j]++
			}
		}
	}

	return counts, nil
}
