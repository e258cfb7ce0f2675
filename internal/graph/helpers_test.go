package graph

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/preston-bernstein/game-reviews-service/internal/domain"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
	"github.com/preston-bernstein/game-reviews-service/internal/store"
	"github.com/preston-bernstein/game-reviews-service/internal/testutil"
)

type fixture struct {
	schema   *graphql.Schema
	store    *store.MemoryStore
	recorder *metrics.Recorder
}

func newFixture(t *testing.T, data domain.Dataset) fixture {
	t.Helper()
	ms, gamesSvc, reviewsSvc, authorsSvc := testutil.NewServices(data)
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()

	schema, err := NewSchema(Services{Games: gamesSvc, Reviews: reviewsSvc, Authors: authorsSvc}, rec, logger)
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}
	return fixture{schema: schema, store: ms, recorder: rec}
}

// exec runs query and decodes data into dest, failing on any GraphQL error.
func (f fixture) exec(t *testing.T, query string, vars map[string]any, dest any) {
	t.Helper()
	resp := f.schema.Exec(context.Background(), query, "", vars)
	if len(resp.Errors) > 0 {
		t.Fatalf("unexpected graphql errors: %v", resp.Errors)
	}
	if err := json.Unmarshal(resp.Data, dest); err != nil {
		t.Fatalf("failed to decode data %s: %v", resp.Data, err)
	}
}

type gameJSON struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Platform []string     `json:"platform"`
	Reviews  []reviewJSON `json:"reviews"`
}

type reviewJSON struct {
	ID      string      `json:"id"`
	Rating  int         `json:"rating"`
	Content string      `json:"content"`
	Game    *gameJSON   `json:"game"`
	Author  *authorJSON `json:"author"`
}

type authorJSON struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Verified bool         `json:"verified"`
	Reviews  []reviewJSON `json:"reviews"`
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func gameIDs(gs []gameJSON) []string {
	return ids(gs, func(g gameJSON) string { return g.ID })
}

func reviewIDs(rs []reviewJSON) []string {
	return ids(rs, func(r reviewJSON) string { return r.ID })
}
