package earlystop

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/dm-hansen/enrollnet"
)

// ErrNoImprovement is returned by Run if no trial ever improved on both of its errors, in which
// case no network was saved.
var ErrNoImprovement = errors.New("No trial improved on its initial error")

// TrialResult is the outcome of a single trial
type TrialResult struct {
	Trial  int
	Record TrialRecord

	// Saved is whether the trial's network was written to the output path
	Saved bool
}

// Report is the outcome of Run
type Report struct {
	Best   GlobalBest
	Trials []TrialResult
}

// Run trains cfg.Trials candidates on 'd' and saves the best of them to 'path'. Every time a
// trial's combined error is strictly lower than all before it, its network is saved over the
// previous one, so on success the file at 'path' holds the network of Report.Best.Trial.
//
// Any error ends the run. Data sets that cannot be trained on (fewer than two rows, fewer than
// two inputs or no outputs) are reported as an enrollnet.DataError before any trial starts.
func Run(t Trainer, d Dataset, path string, cfg Config) (Report, error) {
	report := Report{Best: NoBest()}

	if t == nil {
		return report, errors.New("Trainer is nil")
	} else if err := cfg.validate(); err != nil {
		return report, err
	} else if err := validate(d); err != nil {
		return report, err
	}

	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sizes := []int{d.NumInputs(), HiddenSize(d.NumInputs()), d.NumOutputs()}

	for i := 0; i < cfg.Trials; i++ {
		res, cand, err := runTrial(t, d, sizes, cfg, rng, progress)
		if err != nil {
			return report, errors.Wrapf(err, "Trial %d failed", i)
		}
		res.Trial = i

		if report.Best.Improves(res.Record.CombinedAtBest) {
			err = cand.Save(path)
			if err == nil {
				res.Saved = true
				report.Best = report.Best.With(res.Record.CombinedAtBest, i)
			}
		}
		cand.Release()
		if err != nil {
			return report, errors.Wrapf(err, "Can't save network of trial %d", i)
		}

		report.Trials = append(report.Trials, res)
		fmt.Fprintf(progress, "MSE: %v\n\n", report.Best.Error)
	}

	if !report.Best.Found() {
		return report, ErrNoImprovement
	}

	return report, nil
}

func validate(d Dataset) error {
	if d == nil {
		return enrollnet.DataError{Err: errors.New("Dataset is nil")}
	} else if d.Len() < 2 {
		return enrollnet.DataError{Err: errors.Errorf("need at least 2 rows to split, have %d", d.Len())}
	} else if HiddenSize(d.NumInputs()) < 1 {
		return enrollnet.DataError{Err: errors.Errorf("need at least 2 inputs, have %d", d.NumInputs())}
	} else if d.NumOutputs() < 1 {
		return enrollnet.DataError{Err: errors.Errorf("need at least 1 output, have %d", d.NumOutputs())}
	}

	return nil
}

// runTrial trains a single candidate. The split halves are always released; the candidate is
// released on error, and otherwise returned to the caller, which must release it.
func runTrial(t Trainer, d Dataset, sizes []int, cfg Config, rng *rand.Rand, progress io.Writer) (res TrialResult, cand Candidate, err error) {
	res.Record = NewTrialRecord()

	if cand, err = t.NewCandidate(sizes, rng); err != nil {
		return res, nil, errors.Wrapf(err, "Can't create network")
	}
	defer func() {
		if err != nil {
			cand.Release()
			cand = nil
		}
	}()

	if err = cand.Configure(cfg.Algorithm, cfg.HiddenActivation, cfg.OutputActivation); err != nil {
		return res, cand, err
	}
	if err = cand.SetInputScaling(d, cfg.ScaleMin, cfg.ScaleMax); err != nil {
		return res, cand, err
	}

	d.Shuffle(rng)
	trainLen, testLen := SplitSizes(d.Len())

	train, err := d.Subset(0, trainLen)
	if err != nil {
		return res, cand, errors.Wrapf(err, "Can't split off training data")
	}
	defer train.Release()

	test, err := d.Subset(trainLen, testLen)
	if err != nil {
		return res, cand, errors.Wrapf(err, "Can't split off validation data")
	}
	defer test.Release()

	if err = cand.Scale(train); err != nil {
		return res, cand, err
	}
	if err = cand.Scale(test); err != nil {
		return res, cand, err
	}
	if err = cand.InitWeights(train); err != nil {
		return res, cand, err
	}

	rec := &res.Record
	for {
		var trainMSE, testMSE float64
		if trainMSE, err = cand.TrainEpoch(train); err != nil {
			return res, cand, err
		}
		if testMSE, err = cand.Test(test); err != nil {
			return res, cand, err
		}

		fmt.Fprintf(progress, "%d\t%d\t%v\t%v\t%v\t%v\n", rec.Epochs+1, rec.Stalls, rec.CombinedAtBest,
			trainMSE+testMSE, testMSE, trainMSE)

		if rec.Observe(trainMSE, testMSE, cfg.StallTolerance) {
			break
		} else if cfg.MaxEpochs > 0 && rec.Epochs >= cfg.MaxEpochs {
			break
		}
	}

	return res, cand, nil
}
