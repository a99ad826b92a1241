package ml

import (
	"context"
	"fmt"
	"slices"

	"github.com/bibbank/creditrisk/internal/domain/model"
)

type scorer interface {
	predict(x []float64) float64
}

// Model implements port.ScoringModel over a loaded artifact.
// It is immutable after construction and safe for concurrent use.
type Model struct {
	scorer       scorer
	kind         Kind
	version      string
	featureNames []string
}

// NewModel validates an artifact and builds the matching scorer.
func NewModel(a Artifact) (*Model, error) {
	if !slices.Equal(a.FeatureNames, model.FeatureNames) {
		return nil, fmt.Errorf("%w: artifact features %v do not match %v",
			model.ErrModelUnavailable, a.FeatureNames, model.FeatureNames)
	}

	var (
		s   scorer
		err error
	)
	switch a.Kind {
	case KindRandomForest:
		s, err = newForest(a.Trees, len(a.FeatureNames))
	case KindLogisticRegression:
		s, err = newLogistic(a.Coefficients, a.Intercept, len(a.FeatureNames))
	default:
		err = fmt.Errorf("unknown model kind %q", a.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
	}

	return &Model{
		scorer:       s,
		kind:         a.Kind,
		version:      a.Version,
		featureNames: slices.Clone(a.FeatureNames),
	}, nil
}

func (m *Model) Kind() Kind             { return m.kind }
func (m *Model) Version() string        { return m.version }
func (m *Model) FeatureNames() []string { return slices.Clone(m.featureNames) }

// Score returns the positive-class probability for features.
func (m *Model) Score(ctx context.Context, features model.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := features.Conforms(m.featureNames); err != nil {
		return 0, err
	}
	return m.scorer.predict(features.Values()), nil
}
