package enrollnet

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NewStandard creates a Network where each layer is fully connected to the layer before it. The
// first size given is the number of inputs, the last the number of outputs; there must be at
// least two. Every layer after the inputs is given the default Activation, and the Network the
// default Algorithm and Initializer (see SetDefaultActivation and friends). The weights start
// out uniformly random in [-0.1, 0.1].
func NewStandard(sizes ...int) (*Network, error) {
	return newNetwork(false, sizes)
}

// NewShortcut creates a Network where each layer is connected to every layer before it, including
// the inputs. Otherwise it is the same as NewStandard.
func NewShortcut(sizes ...int) (*Network, error) {
	return newNetwork(true, sizes)
}

func newNetwork(shortcut bool, sizes []int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, errors.Wrapf(ErrNoHiddenLayer, "Can't create network with %d layers", len(sizes))
	}

	for i, s := range sizes {
		if s < 1 {
			return nil, errors.Errorf("Can't create network, layer %d must have size >= 1 (%d)", i, s)
		}
	}

	act, alg, init := defaults()

	net := &Network{
		shortcut: shortcut,
		alg:      alg,
		init:     init,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	net.layers = append(net.layers, &layer{size: sizes[0], values: make([]float64, sizes[0])})
	for _, s := range sizes[1:] {
		l := &layer{size: s, act: act}
		net.layers = append(net.layers, l)
		net.connect(len(net.layers) - 1)
	}

	net.Randomize(-0.1, 0.1)
	return net, nil
}

// connect sets the sources of the layer at 'index' and allocates its weights and buffers. Any
// existing weights are discarded.
func (net *Network) connect(index int) {
	l := net.layers[index]

	l.sources = l.sources[:0]
	if net.shortcut {
		for s := 0; s < index; s++ {
			l.sources = append(l.sources, s)
		}
	} else {
		l.sources = append(l.sources, index-1)
	}

	l.fanIn = 0
	for _, s := range l.sources {
		l.fanIn += net.layers[s].size
	}

	l.weights = mat.NewDense(l.size, l.fanIn+1, nil)
	l.alloc()
}

// alloc (re)allocates every buffer of 'l' that depends on its size or fan-in, including the
// slopes. The weights are left as they are.
func (l *layer) alloc() {
	l.slopes = mat.NewDense(l.size, l.fanIn+1, nil)
	l.sums = make([]float64, l.size)
	l.values = make([]float64, l.size)
	l.errs = make([]float64, l.size)

	l.x = mat.NewVecDense(l.fanIn+1, nil)
	l.back = mat.NewVecDense(l.fanIn+1, nil)
	l.sumVec = mat.NewVecDense(l.size, l.sums)
	l.errVec = mat.NewVecDense(l.size, l.errs)
}

// SetRand sets the source of randomness used for initializing weights. Networks start with a
// source seeded from the current time.
func (net *Network) SetRand(rng *rand.Rand) {
	if rng == nil {
		panic(NilArgError{"*rand.Rand"})
	}
	net.rng = rng
}

// SetAlgorithm sets the training Algorithm by its registered name.
func (net *Network) SetAlgorithm(name string) error {
	alg, err := newAlgorithm(name)
	if err != nil {
		return errors.Wrapf(err, "Can't set training algorithm")
	}

	net.alg = alg
	return nil
}

// SetInitializer sets the Initializer used by InitWeights by its registered name.
func (net *Network) SetInitializer(name string) error {
	in, err := newInitializer(name)
	if err != nil {
		return errors.Wrapf(err, "Can't set initializer")
	}

	net.init = in
	return nil
}

// SetActivationHidden sets the Activation of every hidden layer by its registered name.
func (net *Network) SetActivationHidden(name string) error {
	for i := 1; i < len(net.layers)-1; i++ {
		act, err := newActivation(name)
		if err != nil {
			return errors.Wrapf(err, "Can't set hidden activation function")
		}
		net.layers[i].act = act
	}

	return nil
}

// SetActivationOutput sets the Activation of the output layer by its registered name.
func (net *Network) SetActivationOutput(name string) error {
	act, err := newActivation(name)
	if err != nil {
		return errors.Wrapf(err, "Can't set output activation function")
	}

	net.layers[len(net.layers)-1].act = act
	return nil
}

// Algorithm returns the current training Algorithm, which may be nil.
func (net *Network) Algorithm() Algorithm {
	return net.alg
}

// NumInputs returns the number of inputs to the Network.
func (net *Network) NumInputs() int {
	return net.layers[0].size
}

// NumOutputs returns the number of values the Network produces.
func (net *Network) NumOutputs() int {
	return net.layers[len(net.layers)-1].size
}

// Sizes returns the size of every layer, starting with the inputs.
func (net *Network) Sizes() []int {
	ss := make([]int, len(net.layers))
	for i, l := range net.layers {
		ss[i] = l.size
	}
	return ss
}

// Shortcut returns whether every layer is connected to all layers before it.
func (net *Network) Shortcut() bool {
	return net.shortcut
}

// numHidden returns the total number of neurons in hidden layers.
func (net *Network) numHidden() int {
	var n int
	for _, l := range net.layers[1 : len(net.layers)-1] {
		n += l.size
	}
	return n
}

// Randomize sets every weight to a uniformly random value in [min, max].
func (net *Network) Randomize(min, max float64) {
	if net.released {
		return
	}

	if min > max {
		min, max = max, min
	}

	for _, l := range net.layers[1:] {
		ws := l.weights.RawMatrix().Data
		for i := range ws {
			ws[i] = min + net.rng.Float64()*(max-min)
		}
	}

	if net.alg != nil {
		net.alg.Reset()
	}
}

// InitWeights initializes the weights with the Network's Initializer, using the range of the
// input values in 'd'. If the Network has no Initializer, the weights are randomized as by
// NewStandard.
func (net *Network) InitWeights(d *Data) error {
	if net.released {
		return ErrReleased
	} else if d == nil {
		return NilArgError{"*Data"}
	} else if d.Len() == 0 {
		return errors.Wrapf(ErrEmptyData, "Can't initialize weights")
	} else if d.NumInputs() != net.NumInputs() {
		return SizeMismatchError{net.NumInputs(), d.NumInputs(), "data inputs"}
	}

	if net.init == nil {
		net.Randomize(-0.1, 0.1)
		return nil
	}

	smallest, largest := d.inputRange()
	for i, l := range net.layers[1:] {
		info := InitInfo{
			Layer:     i + 1,
			Size:      l.size,
			FanIn:     l.fanIn,
			NumInputs: net.NumInputs(),
			NumHidden: net.numHidden(),
			Smallest:  smallest,
			Largest:   largest,
			Rand:      net.rng,
		}
		net.init.Set(info, l.weights.RawMatrix().Data)
	}

	if net.alg != nil {
		net.alg.Reset()
	}
	return nil
}

// Release drops the weights and buffers of the Network. Every method that uses them returns
// ErrReleased afterwards.
func (net *Network) Release() {
	for _, l := range net.layers {
		l.weights, l.slopes = nil, nil
		l.sums, l.values, l.errs = nil, nil, nil
		l.x, l.back, l.sumVec, l.errVec = nil, nil, nil, nil
	}

	net.scale = nil
	net.alg = nil
	net.released = true
}

func (net *Network) check(d *Data) error {
	if net.released {
		return ErrReleased
	} else if d == nil {
		return NilArgError{"*Data"}
	} else if d.Len() == 0 {
		return ErrEmptyData
	} else if d.NumInputs() != net.NumInputs() {
		return SizeMismatchError{net.NumInputs(), d.NumInputs(), "data inputs"}
	} else if d.NumOutputs() != net.NumOutputs() {
		return SizeMismatchError{net.NumOutputs(), d.NumOutputs(), "data outputs"}
	}

	for i, l := range net.layers[1:] {
		if l.act == nil {
			return errors.Wrapf(ErrNoActivation, "Layer %d", i+1)
		}
	}

	return nil
}
