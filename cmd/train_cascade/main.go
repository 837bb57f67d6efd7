// Command train_cascade grows a network with cascade training and saves it.
//
// Usage:
//
//	train_cascade <training-data-file> <output-network-file>
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/dm-hansen/enrollnet"
	"github.com/dm-hansen/enrollnet/cliutils"

	_ "github.com/dm-hansen/enrollnet/initializers"
	_ "github.com/dm-hansen/enrollnet/operators"
	_ "github.com/dm-hansen/enrollnet/optimizers"
)

const (
	maxNeurons   int     = 50
	reportEvery  int     = 1
	desiredError float64 = 0.0001

	scaleMin float64 = 0
	scaleMax float64 = 1
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := cliutils.CheckArgs(args, "<training-data-file>", "<output-network-file>"); err != nil {
		return cliutils.ExitCode(err, stderr)
	}

	return cliutils.ExitCode(train(args[1], args[2], stdout), stderr)
}

func train(dataPath, netPath string, stdout io.Writer) error {
	if err := cliutils.LoadEnv(); err != nil {
		return err
	}
	settings, err := cliutils.ReadSettings(nil)
	if err != nil {
		return err
	}

	d, err := enrollnet.ReadData(dataPath)
	if err != nil {
		return err
	}
	defer d.Release()

	if d.Len() == 0 {
		return enrollnet.DataError{Path: dataPath, Err: enrollnet.ErrEmptyData}
	}

	net, err := enrollnet.NewShortcut(d.NumInputs(), d.NumOutputs())
	if err != nil {
		return err
	}
	defer net.Release()

	net.SetRand(rand.New(rand.NewSource(settings.Seed)))
	net.Randomize(-0.1, 0.1)

	if err = net.SetInputScalingParams(d, scaleMin, scaleMax); err != nil {
		return err
	} else if err = net.ScaleTrain(d); err != nil {
		return err
	}

	args := enrollnet.CascadeArgs{
		MaxNeurons:   maxNeurons,
		ReportEvery:  reportEvery,
		DesiredError: desiredError,
	}
	if !settings.Quiet {
		args.Update = func(s enrollnet.CascadeStatus) {
			fmt.Fprintf(stdout, "Neurons     %d. Current error: %.6f\n", s.Neurons, s.MSE)
		}
	}

	status, err := net.CascadeTrain(d, args)
	if err != nil {
		return err
	}

	if err = net.Save(netPath); err != nil {
		return err
	}

	lo, hi, err := net.OutputRange(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Trained with %d hidden neurons, MSE %v, output range [%v, %v]\n",
		status.Neurons, status.MSE, lo, hi)
	return nil
}
