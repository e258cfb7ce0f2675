package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/preston-bernstein/game-reviews-service/internal/domain/authors"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/games"
	"github.com/preston-bernstein/game-reviews-service/internal/domain/reviews"
	"github.com/preston-bernstein/game-reviews-service/internal/metrics"
)

type gameResolver struct {
	root *Resolver
	game games.Game
}

func (g *gameResolver) ID() graphql.ID {
	return graphql.ID(g.game.ID)
}

func (g *gameResolver) Title() string {
	return g.game.Title
}

func (g *gameResolver) Platform() []string {
	if g.game.Platform == nil {
		return []string{}
	}
	return g.game.Platform
}

func (g *gameResolver) Reviews() *[]*reviewResolver {
	defer g.root.observe("Game.reviews", time.Now(), metrics.OutcomeHit)
	return g.root.reviewList(g.root.svcs.Games.Reviews(g.game.ID))
}

type reviewResolver struct {
	root   *Resolver
	review reviews.Review
}

func (r *reviewResolver) ID() graphql.ID {
	return graphql.ID(r.review.ID)
}

func (r *reviewResolver) Rating() int32 {
	return int32(r.review.Rating)
}

func (r *reviewResolver) Content() string {
	return r.review.Content
}

func (r *reviewResolver) Game() *gameResolver {
	start := time.Now()
	g, ok := r.root.svcs.Reviews.Game(r.review)
	r.root.observe("Review.game", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	return r.root.game(g)
}

func (r *reviewResolver) Author() *authorResolver {
	start := time.Now()
	a, ok := r.root.svcs.Reviews.Author(r.review)
	r.root.observe("Review.author", start, outcomeOf(ok))
	if !ok {
		return nil
	}
	return r.root.author(a)
}

type authorResolver struct {
	root   *Resolver
	author authors.Author
}

func (a *authorResolver) ID() graphql.ID {
	return graphql.ID(a.author.ID)
}

func (a *authorResolver) Name() string {
	return a.author.Name
}

func (a *authorResolver) Verified() bool {
	return a.author.Verified
}

func (a *authorResolver) Reviews() *[]*reviewResolver {
	defer a.root.observe("Author.reviews", time.Now(), metrics.OutcomeHit)
	return a.root.reviewList(a.root.svcs.Authors.Reviews(a.author.ID))
}

func (r *Resolver) game(g games.Game) *gameResolver {
	return &gameResolver{root: r, game: g}
}

func (r *Resolver) author(a authors.Author) *authorResolver {
	return &authorResolver{root: r, author: a}
}

func (r *Resolver) gameList(gs []games.Game) *[]*gameResolver {
	out := make([]*gameResolver, len(gs))
	for i, g := range gs {
		out[i] = r.game(g)
	}
	return &out
}

func (r *Resolver) reviewList(rs []reviews.Review) *[]*reviewResolver {
	out := make([]*reviewResolver, len(rs))
	for i, rv := range rs {
		out[i] = &reviewResolver{root: r, review: rv}
	}
	return &out
}

func (r *Resolver) authorList(as []authors.Author) *[]*authorResolver {
	out := make([]*authorResolver, len(as))
	for i, a := range as {
		out[i] = r.author(a)
	}
	return &out
}
