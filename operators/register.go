// Package operators provides the activation functions for enrollnet Networks. Importing it
// registers every Activation by its TypeString and makes "elliot" the default.
package operators

import (
	bs "github.com/dm-hansen/enrollnet"
)

// Steepness is the steepness given to every Activation created by this package
const Steepness float64 = 0.5

func init() {
	list := []func() bs.Activation{
		func() bs.Activation { return Elliot() },
		func() bs.Activation { return ElliotSymmetric() },
		func() bs.Activation { return Logistic() },
		func() bs.Activation { return Tanh() },
		func() bs.Activation { return Identity() },
	}

	for _, f := range list {
		if err := bs.RegisterActivation(f().TypeString(), f); err != nil {
			panic(err)
		}
	}

	if err := bs.SetDefaultActivation(Elliot().TypeString()); err != nil {
		panic(err)
	}
}
