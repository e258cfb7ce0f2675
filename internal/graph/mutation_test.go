package graph

import (
	"context"
	"reflect"
	"testing"

	"github.com/preston-bernstein/game-reviews-service/internal/domain"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/testutil"
)

func TestAddGameAssignsFreshID(t *testing.T) {
	f := newFixture(t, domain.Dataset{Games: []games.Game{{ID: "1", Title: "Zelda", Platform: []string{"Switch"}}}})

	var data struct {
		AddGame *gameJSON `json:"addGame"`
	}
	f.exec(t, `mutation { addGame(game: {title: "Celeste", platform: ["Switch"]}) { id title platform } }`, nil, &data)

	created := data.AddGame
	if created == nil || created.ID == "" || created.ID == "1" {
		t.Fatalf("expected fresh id, got %+v", created)
	}
	if created.Title != "Celeste" || !reflect.DeepEqual(created.Platform, []string{"Switch"}) {
		t.Fatalf("unexpected created game %+v", created)
	}
	if got := len(f.store.ListGames()); got != 2 {
		t.Fatalf("expected 2 games, got %d", got)
	}
	if _, ok := f.store.GetGame(created.ID); !ok {
		t.Fatalf("expected created game to be stored")
	}
	if got := f.recorder.GameMutations("add"); got != 1 {
		t.Fatalf("expected add mutation recorded, got %d", got)
	}
}

func TestAddGameWithVariables(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		AddGame *gameJSON `json:"addGame"`
	}
	vars := map[string]any{
		"game": map[string]any{"title": "Hades", "platform": []any{"PC", "Switch"}},
	}
	f.exec(t, `mutation($game: AddGameInput) { addGame(game: $game) { id platform } }`, vars, &data)

	if data.AddGame == nil || !reflect.DeepEqual(data.AddGame.Platform, []string{"PC", "Switch"}) {
		t.Fatalf("unexpected created game %+v", data.AddGame)
	}
}

func TestAddGameWithoutInputFails(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	resp := f.schema.Exec(context.Background(), `mutation { addGame { id } }`, "", nil)

	if len(resp.Errors) != 1 {
		t.Fatalf("expected one error, got %v", resp.Errors)
	}
	if resp.Errors[0].Message != ErrMissingGameInput.Error() {
		t.Fatalf("unexpected error %v", resp.Errors[0])
	}
	if got := len(f.store.ListGames()); got != 2 {
		t.Fatalf("expected games unchanged, got %d", got)
	}
}

func TestDeleteGameReturnsRemainingGames(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		DeleteGame []gameJSON `json:"deleteGame"`
	}
	f.exec(t, `mutation { deleteGame(id: "1") { id } }`, nil, &data)

	if !reflect.DeepEqual(gameIDs(data.DeleteGame), []string{"2"}) {
		t.Fatalf("unexpected remaining games %v", gameIDs(data.DeleteGame))
	}
	if _, ok := f.store.GetGame("1"); ok {
		t.Fatalf("expected game 1 to be deleted")
	}
	if got := f.recorder.GameMutations("delete"); got != 1 {
		t.Fatalf("expected delete mutation recorded, got %d", got)
	}
}

func TestDeleteGameMissingReturnsUnchangedList(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		DeleteGame []gameJSON `json:"deleteGame"`
	}
	f.exec(t, `mutation { deleteGame(id: "nope") { id } }`, nil, &data)

	if !reflect.DeepEqual(gameIDs(data.DeleteGame), []string{"1", "2"}) {
		t.Fatalf("expected unchanged list, got %v", gameIDs(data.DeleteGame))
	}
	if got := f.recorder.GameMutations("delete"); got != 0 {
		t.Fatalf("expected no delete recorded, got %d", got)
	}
}

func TestDeletedGameLeavesDanglingReviews(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var deleted struct {
		DeleteGame []gameJSON `json:"deleteGame"`
	}
	f.exec(t, `mutation { deleteGame(id: "2") { id } }`, nil, &deleted)

	var data struct {
		Review *reviewJSON `json:"review"`
	}
	f.exec(t, `{ review(id: "3") { id game { id } } }`, nil, &data)
	if data.Review == nil || data.Review.Game != nil {
		t.Fatalf("expected review with null game, got %+v", data.Review)
	}
}

func TestUpdateGameTitleOnly(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		UpdateGame *gameJSON `json:"updateGame"`
	}
	f.exec(t, `mutation { updateGame(id: "2", updates: {title: "X"}) { id title platform } }`, nil, &data)

	g := data.UpdateGame
	if g == nil || g.Title != "X" || !reflect.DeepEqual(g.Platform, []string{"Switch"}) {
		t.Fatalf("unexpected updated game %+v", g)
	}
	stored, _ := f.store.GetGame("2")
	if stored.Title != "X" {
		t.Fatalf("expected stored title X, got %s", stored.Title)
	}
	if got := f.recorder.GameMutations("update"); got != 1 {
		t.Fatalf("expected update recorded, got %d", got)
	}
}

func TestUpdateGamePlatformOnly(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		UpdateGame *gameJSON `json:"updateGame"`
	}
	f.exec(t, `mutation { updateGame(id: "1", updates: {platform: ["PS5", "PC"]}) { title platform } }`, nil, &data)

	g := data.UpdateGame
	if g == nil || g.Title != "Game 1" || !reflect.DeepEqual(g.Platform, []string{"PS5", "PC"}) {
		t.Fatalf("unexpected updated game %+v", g)
	}
}

func TestUpdateGameMissingIsNull(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		UpdateGame *gameJSON `json:"updateGame"`
	}
	f.exec(t, `mutation { updateGame(id: "nope", updates: {title: "X"}) { id } }`, nil, &data)

	if data.UpdateGame != nil {
		t.Fatalf("expected null, got %+v", data.UpdateGame)
	}
	if got := f.recorder.GameMutations("update"); got != 0 {
		t.Fatalf("expected no update recorded, got %d", got)
	}
}

func TestUpdateGameWithoutUpdatesReturnsGame(t *testing.T) {
	f := newFixture(t, testutil.SampleDataset())

	var data struct {
		UpdateGame *gameJSON `json:"updateGame"`
	}
	f.exec(t, `mutation { updateGame(id: "1") { id title } }`, nil, &data)

	if data.UpdateGame == nil || data.UpdateGame.Title != "Game 1" {
		t.Fatalf("expected unchanged game, got %+v", data.UpdateGame)
	}
}
