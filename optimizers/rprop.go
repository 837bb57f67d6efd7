package optimizers

import (
	"math"
)

// The default parameters of RPROP
const (
	RPROPIncrease  float64 = 1.2
	RPROPDecrease  float64 = 0.5
	RPROPDeltaMin  float64 = 0
	RPROPDeltaMax  float64 = 50
	RPROPDeltaZero float64 = 0.1

	// steps never start out smaller than this, even if DeltaZero is
	rpropMinStep float64 = 0.0001
)

// rprop implements iRPROP-: every weight has its own step size, which grows while the sign of its
// slope stays the same and shrinks when it changes. Only the sign of the slope is used.
type rprop struct {
	Increase, Decrease float64
	DeltaMin, DeltaMax float64
	DeltaZero          float64

	// per layer index
	layers map[int]*rpropState
}

type rpropState struct {
	steps, prevSlopes []float64
}

// RPROP returns a batch Algorithm implementing iRPROP-, with the default parameters.
func RPROP() *rprop {
	return &rprop{
		Increase:  RPROPIncrease,
		Decrease:  RPROPDecrease,
		DeltaMin:  RPROPDeltaMin,
		DeltaMax:  RPROPDeltaMax,
		DeltaZero: RPROPDeltaZero,
		layers:    make(map[int]*rpropState),
	}
}

func (r *rprop) TypeString() string {
	return "rprop"
}

func (r *rprop) Incremental() bool {
	return false
}

func (r *rprop) Reset() {
	r.layers = make(map[int]*rpropState)
}

// state returns the state for the given layer, starting over if the number of weights changed
func (r *rprop) state(layer, size int) *rpropState {
	st, ok := r.layers[layer]
	if ok && len(st.steps) == size {
		return st
	}

	st = &rpropState{
		steps:      make([]float64, size),
		prevSlopes: make([]float64, size),
	}
	for i := range st.steps {
		st.steps[i] = math.Max(r.DeltaZero, rpropMinStep)
	}
	r.layers[layer] = st
	return st
}

func (r *rprop) Adjust(layer int, weights, slopes []float64, numData int) {
	st := r.state(layer, len(weights))

	for i, slope := range slopes {
		prev := st.prevSlopes[i]
		step := st.steps[i]

		if prev*slope > 0 {
			step = math.Min(step*r.Increase, r.DeltaMax)
		} else if prev*slope < 0 {
			step = math.Max(step*r.Decrease, r.DeltaMin)
			slope = 0
		}

		if slope > 0 {
			weights[i] += step
		} else if slope < 0 {
			weights[i] -= step
		}

		st.steps[i] = step
		st.prevSlopes[i] = slope
	}
}
