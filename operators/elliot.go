package operators

import (
	"math"
)

// elliot is a fast approximation of the logistic function, with range (0, 1). The value of an
// elliot is its steepness.
type elliot float64

// Elliot returns an Activation computing (x*s/2) / (1 + |x*s|) + 0.5, where 's' is the default
// steepness.
func Elliot() elliot {
	return elliot(Steepness)
}

func (e elliot) TypeString() string {
	return "elliot"
}

func (e elliot) Value(sum float64) float64 {
	xs := sum * float64(e)
	return (xs/2)/(1+math.Abs(xs)) + 0.5
}

func (e elliot) Deriv(sum, value float64) float64 {
	d := 1 + math.Abs(sum*float64(e))
	return float64(e) / (2 * d * d)
}

// elliotSymmetric is elliot stretched to the range (-1, 1)
type elliotSymmetric float64

// ElliotSymmetric returns an Activation computing (x*s) / (1 + |x*s|), an approximation of tanh.
func ElliotSymmetric() elliotSymmetric {
	return elliotSymmetric(Steepness)
}

func (e elliotSymmetric) TypeString() string {
	return "elliot_symmetric"
}

func (e elliotSymmetric) Value(sum float64) float64 {
	xs := sum * float64(e)
	return xs / (1 + math.Abs(xs))
}

func (e elliotSymmetric) Deriv(sum, value float64) float64 {
	d := 1 + math.Abs(sum*float64(e))
	return float64(e) / (d * d)
}
