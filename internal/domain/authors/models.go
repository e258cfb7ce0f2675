package authors

// Author writes reviews.
type Author struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Verified bool   `json:"verified" yaml:"verified"`
}

// EntityID returns the author identifier.
func (a Author) EntityID() string {
	return a.ID
}
