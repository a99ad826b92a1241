package ml

import (
	"fmt"
	"math"
)

type logistic struct {
	coefficients []float64
	intercept    float64
}

func newLogistic(coefficients []float64, intercept float64, numFeatures int) (*logistic, error) {
	if len(coefficients) != numFeatures {
		return nil, fmt.Errorf("logistic regression has %d coefficients for %d features", len(coefficients), numFeatures)
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	return &logistic{coefficients: coefficients, intercept: intercept}, nil
}

func (l *logistic) predict(x []float64) float64 {
	z := l.intercept
	for i, c := range l.coefficients {
		z += c * x[i]
	}
	return 1 / (1 + math.Exp(-z))
}
