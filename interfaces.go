package enrollnet

import (
	"math/rand"
)

// Activation is the function applied by every neuron of a layer to the weighted sum of its
// inputs. Implementations can be found in the subpackage "operators".
type Activation interface {
	// TypeString returns the name under which the Activation is registered. It is also the name
	// written to saved networks, so it must not change between versions.
	TypeString() string

	// Value returns the output of a neuron given its weighted sum.
	Value(sum float64) float64

	// Deriv returns the derivative of Value with respect to the sum. Both the sum and the value
	// that Value returned for it are given, so that implementations can use whichever is cheaper.
	Deriv(sum, value float64) float64
}

// Algorithm is a training algorithm: it moves the weights of a layer, given the slopes that have
// been accumulated for them. Implementations can be found in the subpackage "optimizers".
type Algorithm interface {
	TypeString() string

	// Incremental returns whether Adjust should be called after every Datum. If false, Adjust is
	// called once at the end of every epoch.
	Incremental() bool

	// Adjust changes 'weights' in place. 'slopes' has the same length and holds the accumulated
	// negative gradient of the squared error for each weight, over 'numData' Datums. 'layer' is
	// the index of the layer within the Network, so that per-weight state can be kept.
	//
	// Adjust must not keep references to either slice.
	Adjust(layer int, weights, slopes []float64, numData int)

	// Reset discards any per-weight state, e.g. after the weights were re-initialized or the
	// topology changed.
	Reset()
}

// InitInfo is the information given to an Initializer about the layer being initialized.
type InitInfo struct {
	// Layer is the index of the layer in the Network. The input layer has index 0 and is never
	// initialized.
	Layer int

	// Size is the number of neurons in the layer; FanIn the number of values each neuron receives
	// (not counting the bias).
	Size, FanIn int

	// NumInputs and NumHidden give the number of network inputs and the total number of hidden
	// neurons of the Network.
	NumInputs, NumHidden int

	// Smallest and Largest are the bounds of the input values of the data set the weights are
	// initialized from. They are both zero if no data set was used.
	Smallest, Largest float64

	Rand *rand.Rand
}

// Initializer sets the weights of a layer. 'ws' is laid out row by row, one row per neuron, with
// FanIn+1 weights per row; the last weight of each row is the bias weight.
type Initializer interface {
	TypeString() string
	Set(info InitInfo, ws []float64)
}
