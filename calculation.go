package enrollnet

import (
	"github.com/pkg/errors"
)

// gather fills the scratch input vector of 'l' with the values of its sources, followed by the
// bias.
func (net *Network) gather(l *layer) {
	x := l.x.RawVector().Data

	var i int
	for _, s := range l.sources {
		i += copy(x[i:], net.layers[s].values)
	}
	x[i] = bias
}

// forward evaluates every layer for the given inputs. 'inputs' must have the right length.
func (net *Network) forward(inputs []float64) {
	copy(net.layers[0].values, inputs)

	for _, l := range net.layers[1:] {
		net.gather(l)
		l.sumVec.MulVec(l.weights, l.x)

		for i, s := range l.sums {
			l.values[i] = l.act.Value(s)
		}
	}
}

// backward back-propagates the error between the outputs of the last call to forward and
// 'targets', adding to the slopes of every layer from index 'from' onwards. It returns the sum of
// the squared differences between outputs and targets.
//
// Layers before 'from' have neither their slopes nor their errors updated.
func (net *Network) backward(targets []float64, from int) float64 {
	last := len(net.layers) - 1

	for _, l := range net.layers[from:last] {
		for i := range l.errs {
			l.errs[i] = 0
		}
	}

	out := net.layers[last]
	var sum float64
	for i, v := range out.values {
		diff := targets[i] - v
		sum += diff * diff
		out.errs[i] = diff * out.act.Deriv(out.sums[i], v)
	}

	for index := last; index >= from; index-- {
		l := net.layers[index]

		if index != last {
			// errs holds the error sums pushed down from later layers
			for i := range l.errs {
				l.errs[i] *= l.act.Deriv(l.sums[i], l.values[i])
			}
		}

		// the gathered inputs still hold the values from forward
		l.slopes.RankOne(l.slopes, 1, l.errVec, l.x)

		if index == from {
			break
		}

		l.back.MulVec(l.weights.T(), l.errVec)
		back := l.back.RawVector().Data

		var off int
		for _, s := range l.sources {
			src := net.layers[s]
			if s >= from && s > 0 {
				for i := range src.errs {
					src.errs[i] += back[off+i]
				}
			}
			off += src.size
		}
	}

	return sum
}

// Run returns the outputs of the Network for the given inputs. The inputs are used as they are;
// they are not scaled (see ScaleInput). The returned slice is a copy.
func (net *Network) Run(inputs []float64) ([]float64, error) {
	if net.released {
		return nil, ErrReleased
	} else if len(inputs) != net.NumInputs() {
		return nil, SizeMismatchError{net.NumInputs(), len(inputs), "inputs"}
	}

	for i, l := range net.layers[1:] {
		if l.act == nil {
			return nil, errors.Wrapf(ErrNoActivation, "Can't run network, layer %d", i+1)
		}
	}

	net.forward(inputs)

	outs := net.layers[len(net.layers)-1].values
	return append([]float64(nil), outs...), nil
}
