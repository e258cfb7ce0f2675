package games

import (
	domaingames "github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// Store defines the contract for reading and mutating games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id string) (domaingames.Game, bool)
	ReviewsForGame(gameID string) []reviews.Review
	AddGame(in domaingames.AddGameInput) domaingames.Game
	DeleteGame(id string) []domaingames.Game
	UpdateGame(id string, upd domaingames.UpdateGameInput) (domaingames.Game, bool)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games.
func (s *Service) Games() []domaingames.Game {
	return s.store.ListGames()
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// Reviews returns the reviews left for the game.
func (s *Service) Reviews(gameID string) []reviews.Review {
	return s.store.ReviewsForGame(gameID)
}

// AddGame creates a game and returns it with its assigned identifier.
func (s *Service) AddGame(in domaingames.AddGameInput) domaingames.Game {
	return s.store.AddGame(in)
}

// DeleteGame removes the game and returns the games that remain.
func (s *Service) DeleteGame(id string) []domaingames.Game {
	return s.store.DeleteGame(id)
}

// UpdateGame applies a partial update and returns the resulting game if it exists.
func (s *Service) UpdateGame(id string, upd domaingames.UpdateGameInput) (domaingames.Game, bool) {
	return s.store.UpdateGame(id, upd)
}
