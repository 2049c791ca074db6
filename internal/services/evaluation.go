package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Dictionary reports whether a string is a recognized word. A lookup failure
// is an error, never a verdict.
type Dictionary interface {
	IsWord(ctx context.Context, word string) (bool, error)
}

// Classifier returns label probabilities for a zero-shot classification query.
type Classifier interface {
	LabelScores(ctx context.Context, text string) (map[string]float64, error)
}

// Evaluation holds the per-category results of evaluating one player's
// responses. All three slices are aligned to the game's category order and
// always have one entry per category.
type Evaluation struct {
	Entailment  []float64 `json:"entailment"`
	LetterValid []bool    `json:"letter_valid"`
	DictValid   []bool    `json:"dict_valid"`
}

// EvaluationService decides, per response, whether it starts with the game
// letter, whether it is a real word, and how strongly it entails its category.
type EvaluationService struct {
	dictionary Dictionary
	classifier Classifier
}

func NewEvaluationService(dictionary Dictionary, classifier Classifier) *EvaluationService {
	return &EvaluationService{dictionary: dictionary, classifier: classifier}
}

// EvaluateResponses evaluates one response per category. A short, empty or
// wrong-letter response is a normal non-result, not an error. Categories are
// independent, so they are evaluated concurrently; the first provider failure
// fails the whole evaluation rather than leaving a silent zero in the output.
func (s *EvaluationService) EvaluateResponses(ctx context.Context, letter string, categories, responses []string) (*Evaluation, error) {
	n := len(categories)
	ev := &Evaluation{
		Entailment:  make([]float64, n),
		LetterValid: make([]bool, n),
		DictValid:   make([]bool, n),
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if i >= len(responses) {
			// Absent response: stays invalid with entailment 0.
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			response := strings.ToLower(strings.TrimSpace(responses[i]))

			letterValid, dictValid, err := s.validate(ctx, letter, response)
			if err != nil {
				errs[i] = err
				return
			}
			ev.LetterValid[i] = letterValid
			ev.DictValid[i] = dictValid
			if !dictValid {
				// Entailment is "not applicable" for words that failed
				// validation; the classifier is not called.
				return
			}

			entailment, err := s.entailment(ctx, response, categories[i])
			if err != nil {
				errs[i] = err
				return
			}
			ev.Entailment[i] = entailment
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ev, nil
}

// validate checks the starting letter and, only for letter-valid responses
// longer than one character, the dictionary.
func (s *EvaluationService) validate(ctx context.Context, letter, response string) (bool, bool, error) {
	if !strings.HasPrefix(response, strings.ToLower(letter)) {
		return false, false, nil
	}
	if len(response) <= 1 {
		return true, false, nil
	}
	inDictionary, err := s.dictionary.IsWord(ctx, response)
	if err != nil {
		return true, false, fmt.Errorf("dictionary lookup for %q: %w", response, err)
	}
	return true, inDictionary, nil
}

func (s *EvaluationService) entailment(ctx context.Context, response, category string) (float64, error) {
	query := fmt.Sprintf("%s <sep> %s", response, category)
	labels, err := s.classifier.LabelScores(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("entailment for %q: %w", response, err)
	}
	return labels["entailment"], nil
}
