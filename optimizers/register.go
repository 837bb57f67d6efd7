// Package optimizers provides the training algorithms for enrollnet Networks. Importing it
// registers every Algorithm by its TypeString and makes "rprop" the default.
package optimizers

import (
	bs "github.com/dm-hansen/enrollnet"
)

func init() {
	list := []func() bs.Algorithm{
		func() bs.Algorithm { return RPROP() },
		func() bs.Algorithm { return Batch() },
		func() bs.Algorithm { return Incremental() },
	}

	for _, f := range list {
		if err := bs.RegisterAlgorithm(f().TypeString(), f); err != nil {
			panic(err.Error())
		}
	}

	if err := bs.SetDefaultAlgorithm(RPROP().TypeString()); err != nil {
		panic(err.Error())
	}
}
