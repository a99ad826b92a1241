package ml

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the estimator family stored in an artifact.
type Kind string

const (
	KindRandomForest       Kind = "random_forest"
	KindLogisticRegression Kind = "logistic_regression"
)

// Format is the serialization of an artifact file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the artifact format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported artifact extension %q", filepath.Ext(path))
	}
}

// Artifact is the portable export of a trained classifier.
type Artifact struct {
	Kind         Kind       `json:"kind" yaml:"kind"`
	Version      string     `json:"version" yaml:"version"`
	FeatureNames []string   `json:"feature_names" yaml:"feature_names"`
	Trees        []TreeSpec `json:"trees,omitempty" yaml:"trees,omitempty"`
	Coefficients []float64  `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Intercept    float64    `json:"intercept,omitempty" yaml:"intercept,omitempty"`
}

// TreeSpec is one decision tree in node-array form.
type TreeSpec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes"`
}

// NodeSpec is a split or, when Left is -1, a leaf carrying class counts.
type NodeSpec struct {
	Value     []float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Threshold float64   `json:"threshold" yaml:"threshold"`
	Feature   int       `json:"feature" yaml:"feature"`
	Left      int       `json:"left" yaml:"left"`
	Right     int       `json:"right" yaml:"right"`
}

// IsLeaf reports whether the node terminates a descent.
func (n NodeSpec) IsLeaf() bool {
	return n.Left == leafIndex
}

// DecodeArtifact parses an artifact in the given format.
func DecodeArtifact(r io.Reader, format Format) (Artifact, error) {
	var a Artifact
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("failed to decode json artifact: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("failed to decode yaml artifact: %w", err)
		}
	default:
		return Artifact{}, fmt.Errorf("unsupported artifact format %q", format)
	}
	return a, nil
}
