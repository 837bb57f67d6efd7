package earlystop

import (
	"math"
)

// TrialRecord is the running state of a single trial
type TrialRecord struct {
	Epochs int

	// Stalls is the number of consecutive epochs without a joint improvement
	Stalls int

	// BestTrain and BestTest start at the largest finite value, so that any non-finite error is
	// worse than them
	BestTrain, BestTest float64

	// CombinedAtBest is the sum of the train and test errors at the last epoch where both
	// improved. It is +Inf until that first happens.
	CombinedAtBest float64
}

// NewTrialRecord returns the TrialRecord of a trial that has not run any epochs
func NewTrialRecord() TrialRecord {
	return TrialRecord{
		BestTrain:      math.MaxFloat64,
		BestTest:       math.MaxFloat64,
		CombinedAtBest: math.Inf(1),
	}
}

// Observe records the errors of one epoch and reports whether the trial should stop.
//
// An epoch improves only if both errors are strictly lower than their bests, in which case the
// bests and CombinedAtBest are updated and Stalls is reset. Otherwise Stalls is incremented, and
// the trial stops once Stalls exceeds 'tolerance' on an epoch where either error is worse than
// its best. NaN errors are treated as +Inf, so a trial that never produces finite errors stops
// after 'tolerance'+1 epochs without being saved.
func (r *TrialRecord) Observe(train, test float64, tolerance int) bool {
	train, test = finite(train), finite(test)
	r.Epochs++

	if train < r.BestTrain && test < r.BestTest {
		r.BestTrain, r.BestTest = train, test
		r.CombinedAtBest = train + test
		r.Stalls = 0
		return false
	}

	r.Stalls++
	return r.Stalls > tolerance && (train > r.BestTrain || test > r.BestTest)
}

func finite(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// SplitSizes returns the sizes of the train and validation halves of a data set with 'n' rows.
// If 'n' is odd, the validation half is the larger one.
func SplitSizes(n int) (train, test int) {
	return n / 2, n - n/2
}

// HiddenSize returns the width of the hidden layer used for a data set with 'numInputs' inputs
func HiddenSize(numInputs int) int {
	return numInputs / 2
}

// GlobalBest is the lowest combined error over all trials so far, and the trial that achieved
// it. It is updated by value.
type GlobalBest struct {
	Error float64

	// Trial is the index of the trial, or -1 if no trial has been saved
	Trial int
}

// NoBest returns the GlobalBest before any trial
func NoBest() GlobalBest {
	return GlobalBest{Error: math.Inf(1), Trial: -1}
}

// Improves returns whether 'combined' is strictly lower than the current best
func (g GlobalBest) Improves(combined float64) bool {
	return combined < g.Error
}

// With returns the GlobalBest for 'trial' achieving 'combined'
func (g GlobalBest) With(combined float64, trial int) GlobalBest {
	return GlobalBest{Error: combined, Trial: trial}
}

// Found returns whether any trial has been saved
func (g GlobalBest) Found() bool {
	return g.Trial >= 0
}
