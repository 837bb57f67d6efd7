package initializers

import (
	"math"

	bs "github.com/dm-hansen/enrollnet"
)

type nguyenWidrow int8

// NguyenWidrow returns an Initializer that spreads the weights according to the range of the
// input data, so that the active regions of the neurons cover the inputs. Bias weights are drawn
// uniformly from [-f, f], and all others from [0, f], where
//
//	f = (0.7 * hidden)^(1 / inputs) / (largest - smallest)
//
// NguyenWidrow is the default Initializer
func NguyenWidrow() nguyenWidrow {
	return nguyenWidrow(0)
}

func (n nguyenWidrow) TypeString() string {
	return "nguyen-widrow"
}

func (n nguyenWidrow) Set(info bs.InitInfo, ws []float64) {
	hidden := math.Max(float64(info.NumHidden), 1)
	width := info.Largest - info.Smallest
	if width == 0 {
		width = 1
	}

	factor := math.Pow(0.7*hidden, 1/float64(info.NumInputs)) / width

	row := info.FanIn + 1
	for i := range ws {
		if i%row == info.FanIn {
			ws[i] = (2*info.Rand.Float64() - 1) * factor
		} else {
			ws[i] = info.Rand.Float64() * factor
		}
	}
}
