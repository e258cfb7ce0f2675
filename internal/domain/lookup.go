package domain

// Identifiable is implemented by every entity stored by the service.
type Identifiable interface {
	EntityID() string
}

// FindByID returns the first item whose identifier equals id.
func FindByID[T Identifiable](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items for which keep reports true, preserving order.
// The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// DuplicateID returns the first identifier that appears more than once.
func DuplicateID[T Identifiable](items []T) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := item.EntityID()
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
