package repository

import (
	"context"
	"errors"

	"github.com/hypermodeinc/ship-hypercategories/internal/models"

	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository is the gorm-backed store for games and submissions.
// Submissions are append-only: there is no update or delete path.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) CreateGame(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *GameRepository) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *GameRepository) GetSubmissions(ctx context.Context, gameID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
