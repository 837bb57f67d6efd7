package enrollnet

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Network is a feed-forward neural network: a sequence of layers, the first of which holds the
// inputs. Every other layer computes its values from the layers that feed it.
//
// In a standard Network each layer is fed only by the layer directly before it. In a shortcut
// Network each layer is fed by every layer before it, which is the topology grown by
// CascadeTrain.
type Network struct {
	layers []*layer

	shortcut bool

	alg  Algorithm
	init Initializer

	// nil until SetInputScalingParams is called
	scale *scaling

	rng *rand.Rand

	released bool
}

// layer is a set of neurons that share their sources and their Activation. The input layer has
// no sources, no weights and no Activation.
type layer struct {
	size int
	act  Activation

	// indexes of the layers that feed this one, in increasing order
	sources []int
	// the total size of all sources
	fanIn int

	// weights has one row per neuron and fanIn+1 columns; the last column is the bias weight.
	// slopes is laid out the same way and accumulates the negative gradient between adjustments.
	weights, slopes *mat.Dense

	sums, values []float64

	// errs holds the back-propagated error of each neuron for the current Datum
	errs []float64

	// scratch vectors, reused between Datums. sumVec and errVec share their backing arrays with
	// sums and errs.
	x, back        *mat.VecDense
	sumVec, errVec *mat.VecDense
}

// scaling holds the parameters used to map inputs onto [NewMin, NewMax]. Min and Max are the
// observed bounds of each input.
type scaling struct {
	Min, Max       []float64
	NewMin, NewMax float64
}

// bias is the value of the implicit bias input of every neuron
const bias float64 = 1
