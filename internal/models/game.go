package models

import (
	"strings"
	"time"
)

// Game is immutable once created. Categories are stored as a comma-separated
// list; their order indexes every per-category array on a Submission.
type Game struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Letter     string    `gorm:"size:1;not null" json:"letter"`
	Categories string    `gorm:"size:1024;not null" json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
}

func (g *Game) CategoryList() []string {
	parts := strings.Split(g.Categories, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
