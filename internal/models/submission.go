package models

import "time"

// Submission is one player's answers for a game, written once at submission
// time and never updated. Responses, Entailment, LetterValidity and
// DictionaryValidity are parallel comma-separated arrays, one entry per game
// category; the leaderboard re-parses them on every request.
type Submission struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	GameID             uint      `gorm:"not null;uniqueIndex:idx_submission_unique" json:"game_id"`
	Player             string    `gorm:"size:255;not null;uniqueIndex:idx_submission_unique" json:"player"`
	Responses          string    `gorm:"size:2048;not null" json:"responses"`
	Entailment         string    `gorm:"size:1024;not null" json:"entailment"`
	LetterValidity     string    `gorm:"size:255;not null" json:"letter_validity"`
	DictionaryValidity string    `gorm:"size:255;not null" json:"dictionary_validity"`
	CreatedAt          time.Time `gorm:"index" json:"created_at"`
}
