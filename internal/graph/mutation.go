package graph

import (
	"context"
	"log/slog"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/logging"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
)

type addGameArgs struct {
	Game *games.AddGameInput
}

type updateGameArgs struct {
	ID      graphql.ID
	Updates *games.UpdateGameInput
}

func (r *Resolver) AddGame(ctx context.Context, args addGameArgs) (*gameResolver, error) {
	start := time.Now()
	if args.Game == nil {
		r.observe("Mutation.addGame", start, metrics.OutcomeError)
		return nil, ErrMissingGameInput
	}
	created := r.svcs.Games.AddGame(*args.Game)
	r.observe("Mutation.addGame", start, metrics.OutcomeHit)
	r.recorder.RecordGameMutation("add")
	r.loggerFor(ctx).Info("game added",
		slog.String(logging.FieldOperation, "addGame"),
		slog.String(logging.FieldGameID, created.ID),
	)
	return r.game(created), nil
}

// DeleteGame returns the games that remain, not the deleted one.
func (r *Resolver) DeleteGame(ctx context.Context, args idArgs) *[]*gameResolver {
	start := time.Now()
	id := string(args.ID)
	before := len(r.svcs.Games.Games())
	remaining := r.svcs.Games.DeleteGame(id)
	removed := before - len(remaining)
	r.observe("Mutation.deleteGame", start, outcomeOf(removed > 0))
	if removed > 0 {
		r.recorder.RecordGameMutation("delete")
	}
	r.loggerFor(ctx).Info("game delete",
		slog.String(logging.FieldOperation, "deleteGame"),
		slog.String(logging.FieldGameID, id),
		slog.Int("removed", removed),
	)
	return r.gameList(remaining)
}

func (r *Resolver) UpdateGame(ctx context.Context, args updateGameArgs) *gameResolver {
	start := time.Now()
	id := string(args.ID)
	var upd games.UpdateGameInput
	if args.Updates != nil {
		upd = *args.Updates
	}
	updated, ok := r.svcs.Games.UpdateGame(id, upd)
	r.observe("Mutation.updateGame", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	r.recorder.RecordGameMutation("update")
	r.loggerFor(ctx).Info("game updated",
		slog.String(logging.FieldOperation, "updateGame"),
		slog.String(logging.FieldGameID, id),
	)
	return r.game(updated)
}
