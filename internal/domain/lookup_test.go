package domain

import (
	"testing"

	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
)

func TestFindByIDReturnsFirstMatch(t *testing.T) {
	items := []games.Game{{ID: "1", Title: "Zelda"}, {ID: "2", Title: "Celeste"}}

	got, ok := FindByID(items, "2")
	if !ok {
		t.Fatalf("expected to find game 2")
	}
	if got.Title != "Celeste" {
		t.Fatalf("unexpected game %+v", got)
	}
}

func TestFindByIDMissingReturnsZero(t *testing.T) {
	got, ok := FindByID([]authors.Author{{ID: "1"}}, "9")
	if ok {
		t.Fatalf("expected no match")
	}
	if got != (authors.Author{}) {
		t.Fatalf("expected zero author, got %+v", got)
	}
}

func TestFilterPreservesOrderAndIsNeverNil(t *testing.T) {
	items := []reviews.Review{
		{ID: "1", GameID: "a"},
		{ID: "2", GameID: "b"},
		{ID: "3", GameID: "a"},
	}

	got := Filter(items, func(r reviews.Review) bool { return r.GameID == "a" })
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result %+v", got)
	}

	none := Filter(items, func(r reviews.Review) bool { return r.GameID == "z" })
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestDuplicateID(t *testing.T) {
	if id, ok := DuplicateID([]games.Game{{ID: "1"}, {ID: "2"}}); ok {
		t.Fatalf("expected no duplicate, got %s", id)
	}
	id, ok := DuplicateID([]games.Game{{ID: "1"}, {ID: "2"}, {ID: "1"}})
	if !ok || id != "1" {
		t.Fatalf("expected duplicate 1, got %q (%v)", id, ok)
	}
}
