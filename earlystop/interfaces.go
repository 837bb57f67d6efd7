// Package earlystop selects a trained network by comparing several independently initialized
// candidates. Each candidate is trained on one half of a shuffled data set and validated on the
// other half, until it stops improving on both; the candidate with the lowest combined error is
// saved.
//
// The numeric work is done through the Trainer interface, so that the selection logic can be
// used with any backend. Backend provides the one built on package enrollnet.
package earlystop

import (
	"math/rand"
)

// Dataset is a labeled data set, as seen by Run
type Dataset interface {
	Len() int
	NumInputs() int
	NumOutputs() int

	// Shuffle reorders the Dataset in place
	Shuffle(rng *rand.Rand)

	// Subset returns a copy of 'length' rows, starting at 'pos'
	Subset(pos, length int) (Dataset, error)

	// Release frees the Dataset. It is not used afterwards.
	Release()
}

// Candidate is a single network being trained
type Candidate interface {
	// Configure sets the training algorithm and the activation functions of the hidden and
	// output layers by name.
	Configure(algorithm, hidden, output string) error

	// SetInputScaling computes the input scaling parameters from 'd', mapping each input onto
	// [newMin, newMax].
	SetInputScaling(d Dataset, newMin, newMax float64) error

	// Scale applies the input scaling parameters to 'd', in place
	Scale(d Dataset) error

	InitWeights(d Dataset) error

	// TrainEpoch trains on 'd' for one epoch, returning the mean squared error
	TrainEpoch(d Dataset) (float64, error)

	// Test returns the mean squared error on 'd', without training
	Test(d Dataset) (float64, error)

	Save(path string) error
	Release()
}

// Trainer creates Candidates
type Trainer interface {
	// NewCandidate returns a network with the given layer sizes, starting with the inputs.
	// Any randomness used by the Candidate should come from 'rng'.
	NewCandidate(sizes []int, rng *rand.Rand) (Candidate, error)
}
