package earlystop

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

// epochErrors is the pair of errors reported by a fake candidate for one epoch
type epochErrors struct {
	train, test float64
}

// counts is shared by every fake so tests can check resource handling
type counts struct {
	subsets, subsetReleases int
	shuffles                int
	candidates, releases    int
	saves                   []int
}

type fakeData struct {
	n, in, out int
	c          *counts
	released   bool
}

func (d *fakeData) Len() int        { return d.n }
func (d *fakeData) NumInputs() int  { return d.in }
func (d *fakeData) NumOutputs() int { return d.out }

func (d *fakeData) Shuffle(rng *rand.Rand) {
	d.c.shuffles++
}

func (d *fakeData) Subset(pos, length int) (Dataset, error) {
	if pos+length > d.n {
		return nil, errors.Errorf("subset [%d, %d) out of range", pos, pos+length)
	}
	d.c.subsets++
	return &fakeData{n: length, in: d.in, out: d.out, c: d.c}, nil
}

func (d *fakeData) Release() {
	if !d.released {
		d.c.subsetReleases++
	}
	d.released = true
}

// fakeTrainer hands out candidates that report scripted errors. script is called with the index of
// the trial.
type fakeTrainer struct {
	script func(trial int) []epochErrors
	c      *counts
	sizes  [][]int

	trainErr error
}

func (t *fakeTrainer) NewCandidate(sizes []int, rng *rand.Rand) (Candidate, error) {
	trial := t.c.candidates
	t.c.candidates++
	t.sizes = append(t.sizes, sizes)

	return &fakeCandidate{trial: trial, errs: t.script(trial), c: t.c, trainErr: t.trainErr}, nil
}

type fakeCandidate struct {
	trial int
	errs  []epochErrors
	epoch int
	c     *counts

	trainErr error
}

func (f *fakeCandidate) Configure(algorithm, hidden, output string) error {
	return nil
}

func (f *fakeCandidate) SetInputScaling(d Dataset, newMin, newMax float64) error {
	return nil
}

func (f *fakeCandidate) Scale(d Dataset) error {
	return nil
}

func (f *fakeCandidate) InitWeights(d Dataset) error {
	return nil
}

// once the script runs out, every epoch is worse than anything before
func (f *fakeCandidate) current() epochErrors {
	if f.epoch < len(f.errs) {
		return f.errs[f.epoch]
	}
	return epochErrors{100, 100}
}

func (f *fakeCandidate) TrainEpoch(d Dataset) (float64, error) {
	if f.trainErr != nil {
		return 0, f.trainErr
	}
	return f.current().train, nil
}

func (f *fakeCandidate) Test(d Dataset) (float64, error) {
	e := f.current()
	f.epoch++
	return e.test, nil
}

func (f *fakeCandidate) Save(path string) error {
	f.c.saves = append(f.c.saves, f.trial)
	return os.WriteFile(path, []byte(fmt.Sprintf("trial %d", f.trial)), 0644)
}

func (f *fakeCandidate) Release() {
	f.c.releases++
}

// bestThenWorse improves once to reach 'combined', split evenly, and then only gets worse
func bestThenWorse(combined float64) []epochErrors {
	return []epochErrors{{combined / 2, combined / 2}}
}
