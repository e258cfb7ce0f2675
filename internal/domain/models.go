package domain

import (
	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// Dataset groups the three collections the service serves.
type Dataset struct {
	Games   []games.Game     `json:"games" yaml:"games"`
	Reviews []reviews.Review `json:"reviews" yaml:"reviews"`
	Authors []authors.Author `json:"authors" yaml:"authors"`
}
