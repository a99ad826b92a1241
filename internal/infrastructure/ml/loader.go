package ml

import (
	"fmt"
	"os"

	"github.com/bibbank/creditrisk/internal/domain/model"
)

// LoadModel reads and validates the artifact at path. Every failure wraps
// model.ErrModelUnavailable so callers can refuse to start.
func LoadModel(path string) (*Model, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open artifact: %w", model.ErrModelUnavailable, err)
	}
	defer f.Close()

	artifact, err := DecodeArtifact(f, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
	}

	m, err := NewModel(artifact)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return m, nil
}
