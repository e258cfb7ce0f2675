package testutil

import (
	"strconv"

	"github.com/preston-bernstein/game-reviews-service/internal/app/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/app/games"
	"github.com/preston-bernstein/game-reviews-service/internal/app/reviews"
	"github.com/preston-bernstein/game-reviews-service/internal/domain"
	"github.com/preston-bernstein/game-reviews-service/internal/store"
)

// SequentialIDs returns an id generator yielding "new-1", "new-2", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "new-" + strconv.Itoa(n)
	}
}

// NewStore builds a memory store seeded with data and deterministic ids.
func NewStore(data domain.Dataset) *store.MemoryStore {
	ms := store.NewMemoryStore(store.WithIDGenerator(SequentialIDs()))
	ms.Seed(data)
	return ms
}

// NewServices builds the three application services over one seeded store.
func NewServices(data domain.Dataset) (*store.MemoryStore, *games.Service, *reviews.Service, *authors.Service) {
	ms := NewStore(data)
	return ms, games.NewService(ms), reviews.NewService(ms), authors.NewService(ms)
}
