package games

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Platform []string `json:"platform" yaml:"platform"`
}

// EntityID returns the game identifier.
func (g Game) EntityID() string {
	return g.ID
}

// Clone returns a copy that shares no backing array with g.
func (g Game) Clone() Game {
	out := g
	if g.Platform != nil {
		out.Platform = append([]string(nil), g.Platform...)
	}
	return out
}

// AddGameInput carries the fields required to create a game.
type AddGameInput struct {
	Title    string
	Platform []string
}

// New builds a Game from the input under the given identifier.
func (in AddGameInput) New(id string) Game {
	return Game{
		ID:       id,
		Title:    in.Title,
		Platform: append([]string{}, in.Platform...),
	}
}

// UpdateGameInput is a partial update; nil fields are left untouched.
type UpdateGameInput struct {
	Title    *string
	Platform *[]string
}

// Apply merges the present fields of the update over g.
func (u UpdateGameInput) Apply(g Game) Game {
	out := g.Clone()
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Platform != nil {
		out.Platform = append([]string{}, (*u.Platform)...)
	}
	return out
}

// IsEmpty reports whether the update carries no fields.
func (u UpdateGameInput) IsEmpty() bool {
	return u.Title == nil && u.Platform == nil
}
