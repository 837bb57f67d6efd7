package enrollnet

import (
	"github.com/pkg/errors"
)

// TrainEpoch trains the Network for a single pass over 'd', returning the mean squared error
// measured during that pass (that is: before the final adjustment of the epoch). The weights are
// adjusted after every Datum if the Algorithm is incremental, otherwise once at the end.
func (net *Network) TrainEpoch(d *Data) (float64, error) {
	if err := net.check(d); err != nil {
		return 0, errors.Wrapf(err, "Can't train network")
	} else if net.alg == nil {
		return 0, errors.Wrapf(ErrNoAlgorithm, "Can't train network")
	}

	return net.trainEpoch(d, 1), nil
}

// trainEpoch is TrainEpoch, but only the layers from index 'from' onwards are trained. 'd' must
// already have been checked.
func (net *Network) trainEpoch(d *Data, from int) float64 {
	if net.alg == nil {
		// checked by callers; a nil Algorithm would panic below
		panic(ErrNoAlgorithm)
	}

	net.zeroSlopes(from)

	var mse meanSquared
	incremental := net.alg.Incremental()
	for _, r := range d.rows {
		net.forward(r.Inputs)
		mse.add(net.backward(r.Outputs, from), len(r.Outputs))

		if incremental {
			net.adjust(from, 1)
		}
	}

	if !incremental {
		net.adjust(from, len(d.rows))
	}

	return mse.value()
}

func (net *Network) zeroSlopes(from int) {
	for _, l := range net.layers[from:] {
		l.slopes.Zero()
	}
}

// adjust gives the accumulated slopes of each layer from 'from' onwards to the Algorithm, then
// clears them.
func (net *Network) adjust(from, numData int) {
	for i := from; i < len(net.layers); i++ {
		l := net.layers[i]
		net.alg.Adjust(i, l.weights.RawMatrix().Data, l.slopes.RawMatrix().Data, numData)
		l.slopes.Zero()
	}
}

// Test returns the mean squared error of the Network over 'd'. The weights are not changed.
func (net *Network) Test(d *Data) (float64, error) {
	if err := net.check(d); err != nil {
		return 0, errors.Wrapf(err, "Can't test network")
	}

	var mse meanSquared
	out := net.layers[len(net.layers)-1]
	for _, r := range d.rows {
		net.forward(r.Inputs)
		mse.add(squaredError(out.values, r.Outputs), len(r.Outputs))
	}

	return mse.value(), nil
}
