package operators

import (
	"math"
)

type tanh float64

// Tanh returns an Activation computing tanh(s*x), where 's' is the default steepness. It is
// registered as "sigmoid_symmetric".
func Tanh() tanh {
	return tanh(Steepness)
}

func (t tanh) TypeString() string {
	return "sigmoid_symmetric"
}

func (t tanh) Value(sum float64) float64 {
	return math.Tanh(float64(t) * sum)
}

// the derivative of tanh(x) is 1 - tanh(x)^2
func (t tanh) Deriv(sum, value float64) float64 {
	return float64(t) * (1 - value*value)
}
