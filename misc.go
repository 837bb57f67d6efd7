package enrollnet

import (
	"math"

	"github.com/pkg/errors"
)

// OutputRange returns the smallest and largest value that the Network produces for its first
// output over the inputs of 'd'. The inputs are used as they are.
func (net *Network) OutputRange(d *Data) (min, max float64, err error) {
	if err = net.check(d); err != nil {
		return 0, 0, errors.Wrapf(err, "Can't get output range")
	}

	min, max = math.Inf(1), math.Inf(-1)
	out := net.layers[len(net.layers)-1]
	for _, r := range d.rows {
		net.forward(r.Inputs)
		v := out.values[0]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max, nil
}

// Every returns a function that reports whether an iteration falls on the given frequency, for use
// with progress reporting.
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	if frequency <= 0 {
		return func(int) bool { return false }
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
