package earlystop

import (
	"io"

	"github.com/pkg/errors"
)

// Config holds the parameters of Run
type Config struct {
	// Trials is the number of candidates trained
	Trials int

	// StallTolerance is the number of consecutive epochs without improvement a trial may go
	// through before it can be stopped
	StallTolerance int

	// ScaleMin and ScaleMax give the range that inputs are scaled onto
	ScaleMin, ScaleMax float64

	// Algorithm, HiddenActivation and OutputActivation are registered names, given to
	// Candidate.Configure
	Algorithm        string
	HiddenActivation string
	OutputActivation string

	// MaxEpochs, if > 0, stops every trial after that many epochs
	MaxEpochs int

	// Seed seeds the shuffling of the data and the initialization of each Candidate
	Seed int64

	// Progress, if not nil, receives a line for every epoch and every trial
	Progress io.Writer
}

// DefaultConfig returns the Config used for training enrollment models. Its Seed is zero and
// it has no Progress writer.
func DefaultConfig() Config {
	return Config{
		Trials:           5,
		StallTolerance:   15,
		ScaleMin:         0,
		ScaleMax:         1,
		Algorithm:        "rprop",
		HiddenActivation: "elliot",
		OutputActivation: "elliot",
	}
}

func (c Config) validate() error {
	if c.Trials < 1 {
		return errors.Errorf("Invalid config, Trials must be >= 1 (%d)", c.Trials)
	} else if c.StallTolerance < 0 {
		return errors.Errorf("Invalid config, StallTolerance must be >= 0 (%d)", c.StallTolerance)
	} else if c.MaxEpochs < 0 {
		return errors.Errorf("Invalid config, MaxEpochs must be >= 0 (%d)", c.MaxEpochs)
	} else if c.ScaleMin >= c.ScaleMax {
		return errors.Errorf("Invalid config, ScaleMin must be less than ScaleMax (%v >= %v)", c.ScaleMin, c.ScaleMax)
	}

	return nil
}
