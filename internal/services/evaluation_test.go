package services

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubDictionary struct {
	mu    sync.Mutex
	words map[string]bool
	err   error
	calls []string
}

func (d *stubDictionary) IsWord(_ context.Context, word string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, word)
	if d.err != nil {
		return false, d.err
	}
	return d.words[word], nil
}

type stubClassifier struct {
	mu     sync.Mutex
	scores map[string]float64
	err    error
	calls  []string
}

func (c *stubClassifier) LabelScores(_ context.Context, text string) (map[string]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, text)
	if c.err != nil {
		return nil, c.err
	}
	return map[string]float64{
		"entailment":    c.scores[text],
		"contradiction": 1 - c.scores[text],
	}, nil
}

func TestEvaluateResponses_WrongLetter(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{"apple": true}}
	clf := &stubClassifier{scores: map[string]float64{}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"apple"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.LetterValid[0] || ev.DictValid[0] || ev.Entailment[0] != 0 {
		t.Errorf("wrong-letter response should be fully invalid, got %+v", ev)
	}
	if len(dict.calls) != 0 {
		t.Errorf("dictionary should not be consulted for a wrong-letter response, got calls %v", dict.calls)
	}
}

func TestEvaluateResponses_SingleLetterResponse(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{}}
	clf := &stubClassifier{scores: map[string]float64{}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.LetterValid[0] {
		t.Error("single-letter response starting with the letter should be letter-valid")
	}
	if ev.DictValid[0] {
		t.Error("single-letter response should not be dictionary-valid")
	}
	if len(dict.calls) != 0 {
		t.Errorf("dictionary should not be consulted for a single-letter response, got calls %v", dict.calls)
	}
}

func TestEvaluateResponses_ValidResponse(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{"banana": true}}
	clf := &stubClassifier{scores: map[string]float64{"banana <sep> Fruit": 0.9}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.LetterValid[0] || !ev.DictValid[0] {
		t.Errorf("banana should be letter- and dictionary-valid, got %+v", ev)
	}
	if ev.Entailment[0] != 0.9 {
		t.Errorf("entailment = %v, want 0.9", ev.Entailment[0])
	}
	if len(clf.calls) != 1 || clf.calls[0] != "banana <sep> Fruit" {
		t.Errorf("classifier query = %v, want [banana <sep> Fruit]", clf.calls)
	}
}

func TestEvaluateResponses_NotInDictionary(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{}}
	clf := &stubClassifier{scores: map[string]float64{}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"bxqzw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.LetterValid[0] {
		t.Error("bxqzw starts with b, should be letter-valid")
	}
	if ev.DictValid[0] {
		t.Error("bxqzw should not be dictionary-valid")
	}
	if ev.Entailment[0] != 0 {
		t.Errorf("entailment for a non-word should stay 0, got %v", ev.Entailment[0])
	}
	if len(clf.calls) != 0 {
		t.Errorf("classifier should not be called for a non-word, got calls %v", clf.calls)
	}
}

func TestEvaluateResponses_TrimsAndLowercases(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{"banana": true}}
	clf := &stubClassifier{scores: map[string]float64{"banana <sep> Fruit": 0.9}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"  Banana  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.LetterValid[0] || !ev.DictValid[0] || ev.Entailment[0] != 0.9 {
		t.Errorf("normalized response should evaluate like its lowercase form, got %+v", ev)
	}
	if len(dict.calls) != 1 || dict.calls[0] != "banana" {
		t.Errorf("dictionary lookup = %v, want [banana]", dict.calls)
	}
}

func TestEvaluateResponses_MissingResponse(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{"banana": true}}
	clf := &stubClassifier{scores: map[string]float64{"banana <sep> Fruit": 0.9}}
	svc := NewEvaluationService(dict, clf)

	ev, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit", "Animal"}, []string{"banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ev.Entailment) != 2 || len(ev.LetterValid) != 2 || len(ev.DictValid) != 2 {
		t.Fatalf("evaluation arrays must have one entry per category, got %+v", ev)
	}
	if ev.LetterValid[1] || ev.DictValid[1] || ev.Entailment[1] != 0 {
		t.Errorf("missing response should be an invalid entry, got %+v", ev)
	}
}

func TestEvaluateResponses_DictionaryFailure(t *testing.T) {
	dict := &stubDictionary{err: errors.New("connection refused")}
	clf := &stubClassifier{scores: map[string]float64{}}
	svc := NewEvaluationService(dict, clf)

	_, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"banana"})
	if err == nil {
		t.Fatal("a dictionary failure must fail the whole evaluation")
	}
}

func TestEvaluateResponses_ClassifierFailure(t *testing.T) {
	dict := &stubDictionary{words: map[string]bool{"banana": true}}
	clf := &stubClassifier{err: errors.New("model unavailable")}
	svc := NewEvaluationService(dict, clf)

	_, err := svc.EvaluateResponses(context.Background(), "B", []string{"Fruit"}, []string{"banana"})
	if err == nil {
		t.Fatal("a classifier failure must fail the whole evaluation, not read as a bad answer")
	}
}
