package valueobject

import (
	"fmt"
	"math"
)

// RiskTier is an immutable value object representing the default risk classification.
type RiskTier struct {
	value string
}

var (
	RiskTierLow    = RiskTier{value: "LOW"}
	RiskTierMedium = RiskTier{value: "MEDIUM"}
	RiskTierHigh   = RiskTier{value: "HIGH"}
)

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "LOW":
		return RiskTierLow, nil
	case "MEDIUM":
		return RiskTierMedium, nil
	case "HIGH":
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %s", s)
	}
}

// String returns the string representation.
func (r RiskTier) String() string {
	return r.value
}

// Headline returns the short human readable verdict.
func (r RiskTier) Headline() string {
	switch r.value {
	case "LOW":
		return "Low Risk of Default"
	case "MEDIUM":
		return "Medium Risk of Default"
	case "HIGH":
		return "High Risk of Default"
	default:
		return ""
	}
}

// Note returns the static interpretation shown next to the verdict.
func (r RiskTier) Note() string {
	switch r.value {
	case "LOW":
		return "Customer is unlikely to default based on historical behavior."
	case "MEDIUM":
		return "Customer shows moderate signs of repayment risk."
	case "HIGH":
		return "Customer exhibits strong indicators of potential default."
	default:
		return ""
	}
}

// IsZero returns true if the RiskTier has not been set.
func (r RiskTier) IsZero() bool {
	return r.value == ""
}

// Default probability boundaries. Each bound is the inclusive start of the next tier.
const (
	DefaultMediumThreshold = 0.30
	DefaultHighThreshold   = 0.50
)

// Thresholds holds the probability boundaries between tiers.
//
//	p <  Medium         -> LOW
//	Medium <= p < High  -> MEDIUM
//	p >= High           -> HIGH
type Thresholds struct {
	Medium float64
	High   float64
}

// DefaultThresholds returns the production boundaries (0.30 / 0.50).
func DefaultThresholds() Thresholds {
	return Thresholds{
		Medium: DefaultMediumThreshold,
		High:   DefaultHighThreshold,
	}
}

// Validate checks 0 <= Medium < High <= 1.
func (t Thresholds) Validate() error {
	if math.IsNaN(t.Medium) || math.IsNaN(t.High) {
		return fmt.Errorf("thresholds must be numbers")
	}
	if t.Medium < 0 || t.High > 1 {
		return fmt.Errorf("thresholds must lie within [0, 1], got medium=%v high=%v", t.Medium, t.High)
	}
	if t.Medium >= t.High {
		return fmt.Errorf("medium threshold %v must be below high threshold %v", t.Medium, t.High)
	}
	return nil
}

// Classify maps a default probability to its tier. Upper bounds are exclusive.
func (t Thresholds) Classify(probability float64) RiskTier {
	switch {
	case probability < t.Medium:
		return RiskTierLow
	case probability < t.High:
		return RiskTierMedium
	default:
		return RiskTierHigh
	}
}
