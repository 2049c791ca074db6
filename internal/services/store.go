package services

import (
	"context"

	"github.com/hypermodeinc/ship-hypercategories/internal/models"
)

// GameStore is the persistence contract the scoring engine depends on.
// Submissions are append-only; a stored row is never mutated, so leaderboard
// reads never race with writers.
type GameStore interface {
	CreateGame(ctx context.Context, game *models.Game) error
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	CreateSubmission(ctx context.Context, sub *models.Submission) error
	GetSubmissions(ctx context.Context, gameID uint) ([]models.Submission, error)
}
