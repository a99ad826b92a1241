package model

import (
	"fmt"
	"slices"
)

// FeatureNames is the column order the default classifier was trained on.
var FeatureNames = []string{
	"LIMIT_BAL",
	"EDUCATION",
	"MARRIAGE",
	"PAY_0",
	"PAY_2",
	"PAY_3",
	"PAY_4",
	"PAY_5",
	"PAY_6",
	"BILL_AMT1",
	"BILL_AMT2",
	"BILL_AMT3",
	"BILL_AMT4",
	"BILL_AMT5",
	"BILL_AMT6",
	"PAY_AMT1",
	"PAY_AMT2",
	"PAY_AMT3",
	"PAY_AMT4",
	"PAY_AMT5",
	"PAY_AMT6",
	"SE_MA",
}

// FeatureVector is an ordered set of named model inputs.
type FeatureVector struct {
	names  []string
	values []float64
}

// NewFeatureVector pairs names with values. Both slices are copied.
func NewFeatureVector(names []string, values []float64) (FeatureVector, error) {
	if len(names) != len(values) {
		return FeatureVector{}, fmt.Errorf("%w: %d feature names for %d values", ErrInvalidInput, len(names), len(values))
	}
	return FeatureVector{
		names:  slices.Clone(names),
		values: slices.Clone(values),
	}, nil
}

// Len returns the number of features.
func (v FeatureVector) Len() int { return len(v.values) }

// Names returns a copy of the feature names in order.
func (v FeatureVector) Names() []string { return slices.Clone(v.names) }

// Values returns a copy of the feature values in order.
func (v FeatureVector) Values() []float64 { return slices.Clone(v.values) }

// Value looks up a feature by name.
func (v FeatureVector) Value(name string) (float64, bool) {
	i := slices.Index(v.names, name)
	if i < 0 {
		return 0, false
	}
	return v.values[i], true
}

// Conforms returns an ErrInvalidInput error unless the vector carries exactly
// the expected names in the expected order.
func (v FeatureVector) Conforms(expected []string) error {
	if len(v.names) != len(expected) {
		return fmt.Errorf("%w: model expects %d features, got %d", ErrInvalidInput, len(expected), len(v.names))
	}
	for i, name := range expected {
		if v.names[i] != name {
			return fmt.Errorf("%w: feature %d is %q, model expects %q", ErrInvalidInput, i, v.names[i], name)
		}
	}
	return nil
}

// Equal reports whether both vectors hold identical names and values.
func (v FeatureVector) Equal(other FeatureVector) bool {
	return slices.Equal(v.names, other.names) && slices.Equal(v.values, other.values)
}
