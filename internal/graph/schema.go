package graph

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	oteltracer "github.com/graph-gophers/graphql-go/trace/otel"

	"github.com/preston-bernstein/game-reviews-service/internal/app/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/app/games"
	"github.com/preston-bernstein/game-reviews-service/internal/app/reviews"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
)

//go:embed schema.graphql
var schemaSDL string

// maxQueryDepth bounds Game.reviews.game.reviews... nesting.
const maxQueryDepth = 12

// Services bundles the application services the resolvers read and mutate through.
type Services struct {
	Games   *games.Service
	Reviews *reviews.Service
	Authors *authors.Service
}

// SDL returns the schema definition served by the API.
func SDL() string {
	return schemaSDL
}

// NewSchema parses the schema and binds it to resolvers over svcs.
// Extra options are appended after the defaults.
func NewSchema(svcs Services, recorder *metrics.Recorder, logger *slog.Logger, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	root := NewResolver(svcs, recorder, logger)
	all := append([]graphql.SchemaOpt{
		graphql.MaxDepth(maxQueryDepth),
		graphql.Tracer(oteltracer.DefaultTracer()),
	}, opts...)
	schema, err := graphql.ParseSchema(schemaSDL, root, all...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

// NewHandler serves GraphQL requests (POST JSON {query, operationName, variables}).
func NewHandler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}
