package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/hypermodeinc/ship-hypercategories/internal/models"
)

// TextGenerator produces free-form text from a prompt. Backs the AI opponent.
type TextGenerator interface {
	IsAvailable() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIPlayerName is the built-in opponent that answers every new game when
// text generation is configured.
const AIPlayerName = "house"

const categoriesPerGame = 5

// Letters are drawn with a weight close to how often each letter starts an
// English word.
const letterWeights = "TTTTTTTTTTTTTTTTAAAAAAAABBBBBCCCCDDDEFFFGGHHHHHHHIIIIIIJKLMNNNOOPPPPQRSSSSSSSUUVWXYZ"

var categoryPool = []string{
	"A thing to do in summer",
	"Flower",
	"Fruit",
	"Vegetable",
	"Occupation",
	"Sports",
	"Found in a kitchen",
	"Animal",
	"Drink",
	"Mode of transportation",
	"Clothing",
	"Found in a classroom",
	"Furniture",
	"Hobby",
	"A dessert",
	"A types of dance",
	"Bird",
	"Found in an office",
	"Found in bathroom",
	"Insect",
	"Types of fish",
	"A thing in the living room",
	"Found in a garage",
	"Cake",
	"A thing you wear",
	"Found at the beach",
	"In the sky",
	"Tree",
	"In a garden",
	"Found in a hospital",
	"Jewelry",
	"Found in a park",
	"Mammal",
	"Seen in a zoo",
	"A type of berry",
}

// GameService creates games and records player submissions. The random
// source is injected so tests can seed it.
type GameService struct {
	store      GameStore
	evaluation *EvaluationService
	generator  TextGenerator

	mu  sync.Mutex // guards rng, which is not safe for concurrent use
	rng *rand.Rand
}

func NewGameService(store GameStore, evaluation *EvaluationService, generator TextGenerator, rng *rand.Rand) *GameService {
	return &GameService{
		store:      store,
		evaluation: evaluation,
		generator:  generator,
		rng:        rng,
	}
}

// StartGame creates a game with a random letter and categories. When text
// generation is configured the AI opponent submits its answers right away,
// through the same pipeline as everyone else.
func (s *GameService) StartGame(ctx context.Context) (*models.Game, error) {
	game := &models.Game{
		Letter:     s.randomLetter(),
		Categories: strings.Join(s.randomCategories(categoriesPerGame), ","),
	}
	if err := s.store.CreateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	if s.generator != nil && s.generator.IsAvailable() {
		if _, err := s.SimulatePlayer(ctx, game.ID, AIPlayerName); err != nil {
			return nil, fmt.Errorf("ai opponent: %w", err)
		}
	}

	return game, nil
}

func (s *GameService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return s.store.GetGame(ctx, id)
}

// SubmitResponses evaluates and stores one player's answers. Responses are
// trimmed and lowercased; missing trailing answers are stored as empty
// (invalid) entries so every stored array has one entry per category.
func (s *GameService) SubmitResponses(ctx context.Context, gameID uint, player string, responses []string) (*models.Submission, *Evaluation, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	categories := game.CategoryList()

	if len(responses) > len(categories) {
		return nil, nil, fmt.Errorf("got %d responses for %d categories", len(responses), len(categories))
	}

	cleaned := make([]string, len(categories))
	for i := range responses {
		response := strings.ToLower(strings.TrimSpace(responses[i]))
		if strings.Contains(response, ",") {
			return nil, nil, errors.New("responses must not contain commas")
		}
		cleaned[i] = response
	}

	evaluation, err := s.evaluation.EvaluateResponses(ctx, game.Letter, categories, cleaned)
	if err != nil {
		return nil, nil, err
	}

	sub := &models.Submission{
		GameID:             gameID,
		Player:             player,
		Responses:          strings.Join(cleaned, ","),
		Entailment:         joinFloats(evaluation.Entailment),
		LetterValidity:     joinBools(evaluation.LetterValid),
		DictionaryValidity: joinBools(evaluation.DictValid),
	}
	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("store submission: %w", err)
	}

	return sub, evaluation, nil
}

// SimulatePlayer asks the text-generation model for one word per category
// and submits the result under the given player name.
func (s *GameService) SimulatePlayer(ctx context.Context, gameID uint, player string) (*models.Submission, error) {
	if s.generator == nil || !s.generator.IsAvailable() {
		return nil, errors.New("text generation is not configured")
	}

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	categories := game.CategoryList()

	prompt := fmt.Sprintf(
		"Provide %d words starting with the letter %s for the following categories:\n%q.\nRespond with one word per category, separated by a comma.",
		len(categories), game.Letter, strings.Join(categories, ", "))

	raw, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate responses: %w", err)
	}

	responses := strings.Split(raw, ",")
	if len(responses) > len(categories) {
		responses = responses[:len(categories)]
	}

	sub, _, err := s.SubmitResponses(ctx, gameID, player, responses)
	return sub, err
}

func (s *GameService) randomLetter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(letterWeights[s.rng.Intn(len(letterWeights))])
}

func (s *GameService) randomCategories(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := make([]string, len(categoryPool))
	copy(pool, categoryPool)

	picked := make([]string, 0, n)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := s.rng.Intn(len(pool))
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, val := range vals {
		parts[i] = strconv.FormatFloat(val, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func joinBools(vals []bool) string {
	parts := make([]string, len(vals))
	for i, val := range vals {
		parts[i] = strconv.FormatBool(val)
	}
	return strings.Join(parts, ",")
}
