package operators

type identity float64

// Identity returns an Activation that multiplies the sum by the default steepness. It is
// registered as "linear".
func Identity() identity {
	return identity(Steepness)
}

func (t identity) TypeString() string {
	return "linear"
}

func (t identity) Value(sum float64) float64 {
	return float64(t) * sum
}

func (t identity) Deriv(sum, value float64) float64 {
	return float64(t)
}
