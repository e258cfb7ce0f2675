package reviews

import (
	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	domainreviews "github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// Store defines the contract for reading reviews and their relations.
type Store interface {
	ListReviews() []domainreviews.Review
	GetReview(id string) (domainreviews.Review, bool)
	GameOfReview(r domainreviews.Review) (games.Game, bool)
	AuthorOfReview(r domainreviews.Review) (authors.Author, bool)
}

// Service exposes read-only review operations.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Reviews returns every review.
func (s *Service) Reviews() []domainreviews.Review {
	return s.store.ListReviews()
}

// ReviewByID returns a single review if present.
func (s *Service) ReviewByID(id string) (domainreviews.Review, bool) {
	return s.store.GetReview(id)
}

// Game returns the reviewed game, false when the reference dangles.
func (s *Service) Game(r domainreviews.Review) (games.Game, bool) {
	return s.store.GameOfReview(r)
}

// Author returns the review's author, false when the reference dangles.
func (s *Service) Author(r domainreviews.Review) (authors.Author, bool) {
	return s.store.AuthorOfReview(r)
}
