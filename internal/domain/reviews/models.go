package reviews

// Review is a rating left by an author for a game.
type Review struct {
	ID       string `json:"id" yaml:"id"`
	Rating   int    `json:"rating" yaml:"rating"`
	Content  string `json:"content" yaml:"content"`
	GameID   string `json:"gameId" yaml:"game_id"`
	AuthorID string `json:"authorId" yaml:"author_id"`
}

// EntityID returns the review identifier.
func (r Review) EntityID() string {
	return r.ID
}
