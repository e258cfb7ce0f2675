package testutil

import (
	"github.com/preston-bernstein/game-reviews-service/internal/domain"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string) games.Game {
	return games.Game{
		ID:       id,
		Title:    "Game " + id,
		Platform: []string{"Switch"},
	}
}

// SampleReview returns a review fixture linking gameID and authorID.
func SampleReview(id, gameID, authorID string) reviews.Review {
	return reviews.Review{
		ID:       id,
		Rating:   8,
		Content:  "review " + id,
		GameID:   gameID,
		AuthorID: authorID,
	}
}

// SampleAuthor returns an unverified author fixture.
func SampleAuthor(id string) authors.Author {
	return authors.Author{
		ID:   id,
		Name: "author " + id,
	}
}

// SampleDataset builds two games, two authors and three reviews, plus one review
// whose game and author do not exist.
//
//	game 1 <- review 1 (author 1), review 2 (author 2)
//	game 2 <- review 3 (author 1)
//	review 4 -> game 404, author 404
func SampleDataset() domain.Dataset {
	return domain.Dataset{
		Games:   []games.Game{SampleGame("1"), SampleGame("2")},
		Authors: []authors.Author{SampleAuthor("1"), SampleAuthor("2")},
		Reviews: []reviews.Review{
			SampleReview("1", "1", "1"),
			SampleReview("2", "1", "2"),
			SampleReview("3", "2", "1"),
			SampleReview("4", "404", "404"),
		},
	}
}
