package optimizers

// DefaultLearningRate is the learning rate of the Algorithms returned by Batch and Incremental
const DefaultLearningRate float64 = 0.7

type gradientDescent struct {
	LearningRate float64
	incremental  bool
}

// Batch returns an Algorithm that adjusts the weights once per epoch, by the learning rate times
// the mean slope.
func Batch() *gradientDescent {
	return &gradientDescent{LearningRate: DefaultLearningRate}
}

// Incremental returns an Algorithm that adjusts the weights after every Datum, by the learning
// rate times the slope.
func Incremental() *gradientDescent {
	return &gradientDescent{LearningRate: DefaultLearningRate, incremental: true}
}

func (g *gradientDescent) TypeString() string {
	if g.incremental {
		return "incremental"
	}
	return "batch"
}

func (g *gradientDescent) Incremental() bool {
	return g.incremental
}

// gradient descent has no state
func (g *gradientDescent) Reset() {}

func (g *gradientDescent) Adjust(layer int, weights, slopes []float64, numData int) {
	rate := g.LearningRate
	if numData > 1 {
		rate /= float64(numData)
	}

	for i := range weights {
		weights[i] += rate * slopes[i]
	}
}
