package operators

import (
	"math"
)

type logistic float64

// Logistic returns an Activation computing 1 / (1 + e^(-2*s*x)), where 's' is the default
// steepness.
func Logistic() logistic {
	return logistic(Steepness)
}

func (l logistic) TypeString() string {
	return "sigmoid"
}

func (l logistic) Value(sum float64) float64 {
	return 1 / (1 + math.Exp(-2*float64(l)*sum))
}

// the derivative is 2s * y * (1 - y)
func (l logistic) Deriv(sum, value float64) float64 {
	return 2 * float64(l) * value * (1 - value)
}
