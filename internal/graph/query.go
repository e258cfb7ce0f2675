package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) Games() *[]*gameResolver {
	defer r.observe("Query.games", time.Now(), metrics.OutcomeHit)
	return r.gameList(r.svcs.Games.Games())
}

func (r *Resolver) Game(args idArgs) *gameResolver {
	start := time.Now()
	g, ok := r.svcs.Games.GameByID(string(args.ID))
	r.observe("Query.game", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	return r.game(g)
}

func (r *Resolver) Reviews() *[]*reviewResolver {
	defer r.observe("Query.reviews", time.Now(), metrics.OutcomeHit)
	return r.reviewList(r.svcs.Reviews.Reviews())
}

func (r *Resolver) Review(args idArgs) *reviewResolver {
	start := time.Now()
	rv, ok := r.svcs.Reviews.ReviewByID(string(args.ID))
	r.observe("Query.review", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	return &reviewResolver{root: r, review: rv}
}

func (r *Resolver) Authors() *[]*authorResolver {
	defer r.observe("Query.authors", time.Now(), metrics.OutcomeHit)
	return r.authorList(r.svcs.Authors.Authors())
}

func (r *Resolver) Author(args idArgs) *authorResolver {
	start := time.Now()
	a, ok := r.svcs.Authors.AuthorByID(string(args.ID))
	r.observe("Query.author", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	return r.author(a)
}
