package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/game-reviews-service/internal/domain"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// ErrDuplicateID reports a collection that repeats an identifier.
var ErrDuplicateID = errors.New("duplicate id")

// Default returns the built-in dataset used when no seed file is configured.
func Default() (domain.Dataset, error) {
	return Decode(bytes.NewReader(defaultSeed))
}

// Load reads a dataset from a YAML file on disk.
func Load(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	data, err := Decode(f)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return data, nil
}

// LoadOrDefault loads path when set and falls back to the built-in dataset otherwise.
func LoadOrDefault(path string) (domain.Dataset, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Decode parses and validates a YAML dataset.
func Decode(r io.Reader) (domain.Dataset, error) {
	var data domain.Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return domain.Dataset{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := Validate(data); err != nil {
		return domain.Dataset{}, err
	}
	return data, nil
}

// Validate checks identifier uniqueness within each collection.
// Dangling foreign keys are allowed.
func Validate(data domain.Dataset) error {
	if id, ok := domain.DuplicateID(data.Games); ok {
		return fmt.Errorf("games: %w %q", ErrDuplicateID, id)
	}
	if id, ok := domain.DuplicateID(data.Reviews); ok {
		return fmt.Errorf("reviews: %w %q", ErrDuplicateID, id)
	}
	if id, ok := domain.DuplicateID(data.Authors); ok {
		return fmt.Errorf("authors: %w %q", ErrDuplicateID, id)
	}
	return nil
}
