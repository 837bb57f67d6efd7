package earlystop

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/dm-hansen/enrollnet"
)

// data adapts *enrollnet.Data to Dataset
type data struct {
	*enrollnet.Data
}

// WrapData returns 'd' as a Dataset, for use with Backend
func WrapData(d *enrollnet.Data) Dataset {
	return data{d}
}

func (d data) Subset(pos, length int) (Dataset, error) {
	sub, err := d.Data.Subset(pos, length)
	if err != nil {
		return nil, err
	}
	return data{sub}, nil
}

func unwrap(d Dataset) (*enrollnet.Data, error) {
	w, ok := d.(data)
	if !ok {
		return nil, errors.Errorf("Dataset of type %T was not created by WrapData", d)
	}
	return w.Data, nil
}

// Backend is the Trainer that creates standard enrollnet Networks. The default Initializer is
// used for InitWeights, so package "initializers" should be imported, along with "operators" and
// "optimizers" for the names given to Configure.
type Backend struct{}

func (Backend) NewCandidate(sizes []int, rng *rand.Rand) (Candidate, error) {
	net, err := enrollnet.NewStandard(sizes...)
	if err != nil {
		return nil, err
	}
	if rng != nil {
		net.SetRand(rng)
	}

	return candidate{net}, nil
}

type candidate struct {
	net *enrollnet.Network
}

func (c candidate) Configure(algorithm, hidden, output string) error {
	if err := c.net.SetAlgorithm(algorithm); err != nil {
		return err
	} else if err := c.net.SetActivationHidden(hidden); err != nil {
		return err
	}
	return c.net.SetActivationOutput(output)
}

func (c candidate) SetInputScaling(d Dataset, newMin, newMax float64) error {
	ed, err := unwrap(d)
	if err != nil {
		return err
	}
	return c.net.SetInputScalingParams(ed, newMin, newMax)
}

func (c candidate) Scale(d Dataset) error {
	ed, err := unwrap(d)
	if err != nil {
		return err
	}
	return c.net.ScaleTrain(ed)
}

func (c candidate) InitWeights(d Dataset) error {
	ed, err := unwrap(d)
	if err != nil {
		return err
	}
	return c.net.InitWeights(ed)
}

func (c candidate) TrainEpoch(d Dataset) (float64, error) {
	ed, err := unwrap(d)
	if err != nil {
		return 0, err
	}
	return c.net.TrainEpoch(ed)
}

func (c candidate) Test(d Dataset) (float64, error) {
	ed, err := unwrap(d)
	if err != nil {
		return 0, err
	}
	return c.net.Test(ed)
}

func (c candidate) Save(path string) error {
	return c.net.Save(path)
}

func (c candidate) Release() {
	c.net.Release()
}
