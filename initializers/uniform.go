package initializers

import (
	bs "github.com/dm-hansen/enrollnet"
)

type uniform struct {
	lower, upper float64
}

// Uniform returns an Initalizer that draws every weight from a uniform random sample within a
// range, which can be set by Range. The default range is [-0.1, 0.1].
func Uniform() *uniform {
	return &uniform{-0.1, 0.1}
}

// Range sets the Range of a Uniform Initializer, returning the same Initializer
func (u *uniform) Range(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

func (u *uniform) TypeString() string {
	return "uniform"
}

func (u *uniform) Set(info bs.InitInfo, ws []float64) {
	if u.lower > u.upper {
		u.lower, u.upper = u.upper, u.lower
	}

	for i := range ws {
		ws[i] = info.Rand.Float64()*(u.upper-u.lower) + u.lower
	}
}
