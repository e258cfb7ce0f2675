package authors

import (
	domainauthors "github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// Store defines the contract for reading authors.
type Store interface {
	ListAuthors() []domainauthors.Author
	GetAuthor(id string) (domainauthors.Author, bool)
	ReviewsForAuthor(authorID string) []reviews.Review
}

// Service exposes read-only author operations.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Authors returns every author.
func (s *Service) Authors() []domainauthors.Author {
	return s.store.ListAuthors()
}

// AuthorByID returns a single author if present.
func (s *Service) AuthorByID(id string) (domainauthors.Author, bool) {
	return s.store.GetAuthor(id)
}

// Reviews returns the reviews written by the author.
func (s *Service) Reviews(authorID string) []reviews.Review {
	return s.store.ReviewsForAuthor(authorID)
}
