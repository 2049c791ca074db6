package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hypermodeinc/ship-hypercategories/internal/models"
)

// ResponseScore is one evaluated answer on the leaderboard. Never persisted;
// rebuilt on every request.
type ResponseScore struct {
	Word             string  `json:"word"`
	Entailment       float64 `json:"entailment"`
	IsValid          bool    `json:"is_valid"`
	SimilarResponses int     `json:"similar_responses"`
	Score            float64 `json:"score"`
}

type PlayerInfo struct {
	Name      string          `json:"name"`
	Responses []ResponseScore `json:"responses"`
	Score     float64         `json:"score"`
	CreatedAt time.Time       `json:"created_at"`
}

type GameInfo struct {
	ID         uint     `json:"id"`
	Letter     string   `json:"letter"`
	Categories []string `json:"categories"`
}

type Leaderboard struct {
	Game    GameInfo     `json:"game"`
	Players []PlayerInfo `json:"players"`
}

// LeaderboardService recomputes the ranking for a game from its stored
// submissions. Letter/dictionary validity and entailment were computed at
// submission time and are only re-parsed here; duplicate detection runs fresh
// across all players on every request.
type LeaderboardService struct {
	store      GameStore
	similarity *SimilarityService
	scoring    *ScoringService
}

func NewLeaderboardService(store GameStore, similarity *SimilarityService, scoring *ScoringService) *LeaderboardService {
	return &LeaderboardService{store: store, similarity: similarity, scoring: scoring}
}

// BuildLeaderboard fails as a whole on any provider or data error; it never
// returns a partial ranking.
func (s *LeaderboardService) BuildLeaderboard(ctx context.Context, gameID uint) (*Leaderboard, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.store.GetSubmissions(ctx, gameID)
	if err != nil {
		return nil, err
	}

	categories := game.CategoryList()
	players := make([]PlayerInfo, len(submissions))
	for i, sub := range submissions {
		player, err := playerFromSubmission(sub, len(categories))
		if err != nil {
			return nil, err
		}
		players[i] = player
	}

	// One duplicate-detection pass per category across all players. The
	// categories have no data dependency on each other, so they fan out
	// concurrently.
	counts := make([][]int, len(categories))
	errs := make([]error, len(categories))
	var wg sync.WaitGroup
	for ci := range categories {
		wg.Add(1)
		go func(ci int) {
			defer wg.Done()
			column := make([]string, len(players))
			for pi := range players {
				column[pi] = players[pi].Responses[ci].Word
			}
			counts[ci], errs[ci] = s.similarity.CountSimilar(ctx, column)
		}(ci)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for ci := range categories {
		for pi := range players {
			players[pi].Responses[ci].SimilarResponses = counts[ci][pi]
		}
	}

	for pi := range players {
		var total float64
		for ci := range players[pi].Responses {
			response := &players[pi].Responses[ci]
			response.Score = s.scoring.ResponseScore(response.IsValid, response.Entailment, response.SimilarResponses)
			total += response.Score
		}
		players[pi].Score = s.scoring.RoundTotal(total)
	}

	// Highest score first; ties go to the earlier submission. Equal
	// timestamps fall back to the name so the order is total.
	sort.SliceStable(players, func(a, b int) bool {
		if players[a].Score != players[b].Score {
			return players[a].Score > players[b].Score
		}
		if !players[a].CreatedAt.Equal(players[b].CreatedAt) {
			return players[a].CreatedAt.Before(players[b].CreatedAt)
		}
		return players[a].Name < players[b].Name
	})

	return &Leaderboard{
		Game: GameInfo{
			ID:         game.ID,
			Letter:     game.Letter,
			Categories: categories,
		},
		Players: players,
	}, nil
}

// playerFromSubmission re-parses the stored per-category arrays. Every array
// must have exactly one entry per game category; a mismatch means the stored
// row is inconsistent with the game and the whole request fails rather than
// truncating or padding.
func playerFromSubmission(sub models.Submission, categoryCount int) (PlayerInfo, error) {
	words := strings.Split(sub.Responses, ",")
	entailment, err := parseFloats(sub.Entailment)
	if err != nil {
		return PlayerInfo{}, fmt.Errorf("player %q: entailment: %w", sub.Player, err)
	}
	letterValid, err := parseBools(sub.LetterValidity)
	if err != nil {
		return PlayerInfo{}, fmt.Errorf("player %q: letter validity: %w", sub.Player, err)
	}
	dictValid, err := parseBools(sub.DictionaryValidity)
	if err != nil {
		return PlayerInfo{}, fmt.Errorf("player %q: dictionary validity: %w", sub.Player, err)
	}

	for name, length := range map[string]int{
		"responses":           len(words),
		"entailment":          len(entailment),
		"letter validity":     len(letterValid),
		"dictionary validity": len(dictValid),
	} {
		if length != categoryCount {
			return PlayerInfo{}, fmt.Errorf(
				"player %q: stored %s has %d entries, game has %d categories",
				sub.Player, name, length, categoryCount)
		}
	}

	responses := make([]ResponseScore, categoryCount)
	for i := 0; i < categoryCount; i++ {
		responses[i] = ResponseScore{
			Word:       words[i],
			Entailment: entailment[i],
			IsValid:    letterValid[i] && dictValid[i],
		}
	}

	return PlayerInfo{
		Name:      sub.Player,
		Responses: responses,
		CreatedAt: sub.CreatedAt,
	}, nil
}

func parseFloats(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d %q is not a number", i, part)
		}
		out[i] = val
	}
	return out, nil
}

func parseBools(csv string) ([]bool, error) {
	parts := strings.Split(csv, ",")
	out := make([]bool, len(parts))
	for i, part := range parts {
		val, err := strconv.ParseBool(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("entry %d %q is not a boolean", i, part)
		}
		out[i] = val
	}
	return out, nil
}
