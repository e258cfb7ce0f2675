package graph

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/game-reviews-service/internal/logging"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
)

// ErrMissingGameInput is returned by addGame when the game argument is omitted.
var ErrMissingGameInput = errors.New("game input is required")

// Resolver is the root resolver for both Query and Mutation fields.
type Resolver struct {
	svcs     Services
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewResolver builds the root resolver.
func NewResolver(svcs Services, recorder *metrics.Recorder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		svcs:     svcs,
		recorder: recorder,
		logger:   logger,
	}
}

func (r *Resolver) observe(field string, start time.Time, outcome metrics.Outcome) {
	r.recorder.RecordResolver(field, time.Since(start), outcome)
}

func (r *Resolver) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, r.logger)
}

func outcomeOf(found bool) metrics.Outcome {
	if found {
		return metrics.OutcomeHit
	}
	return metrics.OutcomeMiss
}
