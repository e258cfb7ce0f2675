package games

import (
	"reflect"
	"testing"
)

func TestGameJSONTags(t *testing.T) {
	gameType := reflect.TypeOf(Game{})
	fields := map[string]string{
		"ID":       "id",
		"Title":    "title",
		"Platform": "platform",
	}

	for name, tag := range fields {
		field, ok := gameType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := field.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected json tag %s, got %s", name, tag, got)
		}
	}
}

func TestCloneDoesNotSharePlatform(t *testing.T) {
	g := Game{ID: "1", Platform: []string{"Switch"}}
	c := g.Clone()
	c.Platform[0] = "PC"

	if g.Platform[0] != "Switch" {
		t.Fatalf("expected original platform untouched, got %v", g.Platform)
	}
}

func TestAddGameInputNew(t *testing.T) {
	in := AddGameInput{Title: "Celeste", Platform: []string{"Switch", "PC"}}
	g := in.New("abc")

	if g.ID != "abc" || g.Title != "Celeste" {
		t.Fatalf("unexpected game %+v", g)
	}
	in.Platform[0] = "mutated"
	if g.Platform[0] != "Switch" {
		t.Fatalf("expected game platform copied from input")
	}
}

func TestUpdateApplyTitleOnly(t *testing.T) {
	title := "Zelda: TotK"
	g := Game{ID: "1", Title: "Zelda", Platform: []string{"Switch"}}

	got := UpdateGameInput{Title: &title}.Apply(g)

	if got.Title != title {
		t.Fatalf("expected title %q, got %q", title, got.Title)
	}
	if !reflect.DeepEqual(got.Platform, []string{"Switch"}) {
		t.Fatalf("expected platform preserved, got %v", got.Platform)
	}
	if got.ID != "1" {
		t.Fatalf("expected id preserved, got %s", got.ID)
	}
}

func TestUpdateApplyPlatformOnly(t *testing.T) {
	platform := []string{"PS5", "PC"}
	g := Game{ID: "1", Title: "Elden Ring", Platform: []string{"PS5"}}

	got := UpdateGameInput{Platform: &platform}.Apply(g)

	if got.Title != "Elden Ring" {
		t.Fatalf("expected title preserved, got %q", got.Title)
	}
	if !reflect.DeepEqual(got.Platform, platform) {
		t.Fatalf("expected platform %v, got %v", platform, got.Platform)
	}
}

func TestUpdateIsEmpty(t *testing.T) {
	if !(UpdateGameInput{}).IsEmpty() {
		t.Fatalf("expected empty update")
	}
	title := "x"
	if (UpdateGameInput{Title: &title}).IsEmpty() {
		t.Fatalf("expected non-empty update")
	}
}
