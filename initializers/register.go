// Package initializers provides the weight initializers for enrollnet Networks. Importing it
// registers them and makes "nguyen-widrow" the default.
package initializers

import (
	bs "github.com/dm-hansen/enrollnet"
)

func init() {
	list := []func() bs.Initializer{
		func() bs.Initializer { return Uniform() },
		func() bs.Initializer { return NguyenWidrow() },
	}

	for _, f := range list {
		if err := bs.RegisterInitializer(f().TypeString(), f); err != nil {
			panic(err)
		}
	}

	if err := bs.SetDefaultInitializer(NguyenWidrow().TypeString()); err != nil {
		panic(err)
	}
}
