package enrollnet

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CascadeArgs are the arguments to CascadeTrain
type CascadeArgs struct {
	// MaxNeurons is the maximum number of hidden neurons that will be added. It must be >= 1.
	MaxNeurons int

	// ReportEvery is the number of added neurons between calls to Update, starting with the
	// network before any were added. If it is <= 0, Update is only called once training has
	// finished.
	ReportEvery int

	// DesiredError is the mean squared error at which training stops early.
	DesiredError float64

	// Activation is the registered name of the Activation given to added neurons. If empty, the
	// default Activation is used.
	Activation string

	// Update, if not nil, is called with the current status of training. See ReportEvery.
	Update func(CascadeStatus)
}

// CascadeStatus is the information given to CascadeArgs.Update
type CascadeStatus struct {
	// Neurons is the number of hidden neurons added so far
	Neurons int

	// MSE is the error over the training data, measured after the output weights were trained
	MSE float64
}

const (
	cascadeMaxOutEpochs  int     = 150
	cascadeMaxCandEpochs int     = 150
	cascadeStagnation    int     = 12
	cascadeChangeFrac    float64 = 0.01
	cascadeNumCandidates int     = 8
	cascadeCandRange     float64 = 0.5
	cascadeOutputWeight  float64 = 0.1
)

// CascadeTrain grows the Network by adding one-neuron hidden layers, in the manner of cascade
// correlation. The Network must have been created with NewShortcut; typically it has no hidden
// layers to begin with.
//
// Training alternates between two phases. First, only the weights into the outputs are trained,
// until the error stops improving. Then a pool of candidate neurons, each fed by every existing
// layer, is trained to maximize the covariance between its value and the remaining output error.
// The best candidate is added to the Network just before the outputs, and the cycle repeats until
// the error is at most args.DesiredError or args.MaxNeurons neurons have been added.
//
// CascadeTrain returns the final status.
func (net *Network) CascadeTrain(d *Data, args CascadeArgs) (CascadeStatus, error) {
	var status CascadeStatus

	if err := net.check(d); err != nil {
		return status, errors.Wrapf(err, "Can't cascade train network")
	} else if net.alg == nil {
		return status, errors.Wrapf(ErrNoAlgorithm, "Can't cascade train network")
	} else if !net.shortcut {
		return status, errors.Errorf("Can't cascade train network, it must have shortcut connections")
	} else if args.MaxNeurons < 1 {
		return status, errors.Errorf("Can't cascade train network, MaxNeurons must be >= 1 (%d)", args.MaxNeurons)
	}

	newAct := func() (Activation, error) {
		if args.Activation == "" {
			act, _, _ := defaults()
			if act == nil {
				return nil, errors.Wrapf(ErrNoActivation, "Can't cascade train network")
			}
			return act, nil
		}
		return newActivation(args.Activation)
	}

	candAlg, err := newAlgorithm(net.alg.TypeString())
	if err != nil {
		return status, errors.Wrapf(err, "Can't cascade train network")
	}

	report := func() {
		if args.Update != nil {
			args.Update(status)
		}
	}

	for {
		status.MSE = net.trainOutputs(d)
		if args.ReportEvery > 0 && status.Neurons%args.ReportEvery == 0 {
			report()
		}

		if status.MSE <= args.DesiredError || status.Neurons >= args.MaxNeurons {
			break
		}

		pool := make([]*candidate, cascadeNumCandidates)
		for i := range pool {
			act, err := newAct()
			if err != nil {
				return status, errors.Wrapf(err, "Can't cascade train network")
			}
			pool[i] = net.newCandidate(act)
		}

		best := net.trainCandidates(d, pool, candAlg)
		net.install(best)
		status.Neurons++
	}

	if args.ReportEvery <= 0 {
		report()
	}

	return status, nil
}

// trainOutputs trains only the weights into the output layer until the error stagnates, returning
// the error over 'd' afterwards.
func (net *Network) trainOutputs(d *Data) float64 {
	last := len(net.layers) - 1

	net.alg.Reset()

	target := math.Inf(1)
	stagnation := cascadeStagnation
	for epoch := 0; epoch < cascadeMaxOutEpochs; epoch++ {
		mse := net.trainEpoch(d, last)

		if math.Abs(mse-target) > target*cascadeChangeFrac || math.IsInf(target, 1) {
			target = mse
			stagnation = epoch + cascadeStagnation
		}
		if epoch >= stagnation {
			break
		}
	}

	mse, _ := net.Test(d)
	return mse
}

// candidate is a single neuron that may be added to the Network
type candidate struct {
	act     Activation
	weights []float64

	// score is the sum of the absolute covariances with each output's error. corr holds the
	// covariance for each output.
	score float64
	corr  []float64
}

func (net *Network) newCandidate(act Activation) *candidate {
	var fanIn int
	for _, l := range net.layers[:len(net.layers)-1] {
		fanIn += l.size
	}

	c := &candidate{
		act:     act,
		weights: make([]float64, fanIn+1),
		corr:    make([]float64, net.NumOutputs()),
	}
	for i := range c.weights {
		c.weights[i] = (2*net.rng.Float64() - 1) * cascadeCandRange
	}
	return c
}

// trainCandidates trains every candidate in the pool and returns the one with the highest
// score. Candidates are fed by every layer except the outputs, which stay fixed, so their inputs
// and the output errors are computed once.
func (net *Network) trainCandidates(d *Data, pool []*candidate, alg Algorithm) *candidate {
	last := len(net.layers) - 1
	out := net.layers[last]
	numOut := out.size
	rows := d.Len()
	fanIn := len(pool[0].weights) - 1

	inputs := mat.NewDense(rows, fanIn+1, nil)
	errs := mat.NewDense(rows, numOut, nil)
	for p, r := range d.rows {
		net.forward(r.Inputs)

		x := inputs.RawRowView(p)
		var i int
		for _, l := range net.layers[:last] {
			i += copy(x[i:], l.values)
		}
		x[i] = bias

		e := errs.RawRowView(p)
		for o, v := range out.values {
			e[o] = r.Outputs[o] - v
		}
	}

	// center the errors on their means; the covariance only needs the centered values
	for o := 0; o < numOut; o++ {
		col := mat.Col(nil, o, errs)
		var mean float64
		for _, v := range col {
			mean += v
		}
		mean /= float64(rows)
		for p := range col {
			errs.Set(p, o, col[p]-mean)
		}
	}

	alg.Reset()

	sums := mat.NewVecDense(rows, nil)
	values := make([]float64, rows)
	slopes := make([]float64, fanIn+1)
	deltas := mat.NewVecDense(rows, nil)
	grad := mat.NewVecDense(fanIn+1, slopes)

	for ci, c := range pool {
		ws := mat.NewVecDense(fanIn+1, c.weights)

		best := math.Inf(-1)
		stagnation := cascadeStagnation
		for epoch := 0; epoch < cascadeMaxCandEpochs; epoch++ {
			sums.MulVec(inputs, ws)

			var mean float64
			for p := range values {
				values[p] = c.act.Value(sums.AtVec(p))
				mean += values[p]
			}
			mean /= float64(rows)

			c.score = 0
			for o := range c.corr {
				var cov float64
				for p, v := range values {
					cov += (v - mean) * errs.At(p, o)
				}
				c.corr[o] = cov
				c.score += math.Abs(cov)
			}

			// d(score)/d(sum_p) = sum_o sign(corr_o) * err_po * f'(sum_p); the centered errors make
			// the mean value drop out
			for p, v := range values {
				var s float64
				for o, cov := range c.corr {
					if cov < 0 {
						s -= errs.At(p, o)
					} else {
						s += errs.At(p, o)
					}
				}
				deltas.SetVec(p, s*c.act.Deriv(sums.AtVec(p), v))
			}
			grad.MulVec(inputs.T(), deltas)

			if math.Abs(c.score-best) > math.Abs(best)*cascadeChangeFrac || math.IsInf(best, -1) {
				best = c.score
				stagnation = epoch + cascadeStagnation
			}
			if epoch >= stagnation {
				break
			}

			// the score is maximized, so the slopes are the gradient itself
			alg.Adjust(ci, c.weights, slopes, rows)
		}
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best
}

// install adds 'c' to the network as a new one-neuron layer just before the outputs. The output
// layer gets a new weight for it, inserted before the bias.
func (net *Network) install(c *candidate) {
	last := len(net.layers) - 1
	out := net.layers[last]

	l := &layer{size: 1, act: c.act}
	for s := 0; s < last; s++ {
		l.sources = append(l.sources, s)
		l.fanIn += net.layers[s].size
	}
	l.weights = mat.NewDense(1, l.fanIn+1, append([]float64(nil), c.weights...))
	l.alloc()

	old := out.weights
	out.weights = mat.NewDense(out.size, out.fanIn+2, nil)
	for n := 0; n < out.size; n++ {
		row := out.weights.RawRowView(n)
		oldRow := old.RawRowView(n)

		copy(row, oldRow[:out.fanIn])
		if c.corr[n] < 0 {
			row[out.fanIn] = -cascadeOutputWeight
		} else {
			row[out.fanIn] = cascadeOutputWeight
		}
		row[out.fanIn+1] = oldRow[out.fanIn]
	}

	out.sources = append(out.sources, last)
	out.fanIn++
	out.alloc()

	net.layers = append(net.layers[:last], l, out)
	net.alg.Reset()
}
