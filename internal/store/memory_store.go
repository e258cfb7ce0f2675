package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/preston-bernstein/game-reviews-service/internal/domain"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// MemoryStore keeps the games, reviews and authors collections in insertion order.
// Reads hand out copies so callers never share backing arrays with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	games   []games.Game
	reviews []reviews.Review
	authors []authors.Author
	seeded  bool
	newID   func() string
}

// Option customizes a MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator overrides the identifier source used by AddGame.
func WithIDGenerator(fn func() string) Option {
	return func(s *MemoryStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		games:   []games.Game{},
		reviews: []reviews.Review{},
		authors: []authors.Author{},
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces all three collections with the dataset.
func (s *MemoryStore) Seed(data domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = cloneGames(data.Games)
	s.reviews = append([]reviews.Review{}, data.Reviews...)
	s.authors = append([]authors.Author{}, data.Authors...)
	s.seeded = true
}

// Seeded reports whether Seed has run.
func (s *MemoryStore) Seeded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeded
}

// ListGames returns a copy of the games collection.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGames(s.games)
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := domain.FindByID(s.games, id)
	return g.Clone(), ok
}

// ListReviews returns a copy of the reviews collection.
func (s *MemoryStore) ListReviews() []reviews.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]reviews.Review{}, s.reviews...)
}

// GetReview retrieves a review by ID.
func (s *MemoryStore) GetReview(id string) (reviews.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindByID(s.reviews, id)
}

// ListAuthors returns a copy of the authors collection.
func (s *MemoryStore) ListAuthors() []authors.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]authors.Author{}, s.authors...)
}

// GetAuthor retrieves an author by ID.
func (s *MemoryStore) GetAuthor(id string) (authors.Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindByID(s.authors, id)
}

// ReviewsForGame returns the reviews pointing at gameID.
func (s *MemoryStore) ReviewsForGame(gameID string) []reviews.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Filter(s.reviews, func(r reviews.Review) bool { return r.GameID == gameID })
}

// ReviewsForAuthor returns the reviews written by authorID.
func (s *MemoryStore) ReviewsForAuthor(authorID string) []reviews.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Filter(s.reviews, func(r reviews.Review) bool { return r.AuthorID == authorID })
}

// AuthorOfReview resolves the review's author. A dangling reference yields false.
func (s *MemoryStore) AuthorOfReview(r reviews.Review) (authors.Author, bool) {
	return s.GetAuthor(r.AuthorID)
}

// GameOfReview resolves the review's game. A dangling reference yields false.
func (s *MemoryStore) GameOfReview(r reviews.Review) (games.Game, bool) {
	return s.GetGame(r.GameID)
}

// AddGame appends a new game under a fresh identifier and returns it.
func (s *MemoryStore) AddGame(in games.AddGameInput) games.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	for s.hasGame(id) {
		id = s.newID()
	}
	g := in.New(id)
	s.games = append(s.games, g)
	return g.Clone()
}

// DeleteGame removes every game with the given id and returns the remaining games.
// Deleting an unknown id leaves the collection untouched.
func (s *MemoryStore) DeleteGame(id string) []games.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = domain.Filter(s.games, func(g games.Game) bool { return g.ID != id })
	return cloneGames(s.games)
}

// UpdateGame merges the update into the game with the given id.
// It returns false when no game matches.
func (s *MemoryStore) UpdateGame(id string, upd games.UpdateGameInput) (games.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.games {
		if g.ID == id {
			s.games[i] = upd.Apply(g)
		}
	}
	g, ok := domain.FindByID(s.games, id)
	return g.Clone(), ok
}

func (s *MemoryStore) hasGame(id string) bool {
	_, ok := domain.FindByID(s.games, id)
	return ok
}

func cloneGames(in []games.Game) []games.Game {
	out := make([]games.Game, len(in))
	for i, g := range in {
		out[i] = g.Clone()
	}
	return out
}
