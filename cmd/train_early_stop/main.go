// Command train_early_stop trains several candidate networks on a data set, stopping each when it
// no longer improves on both halves of the data, and saves the best one.
//
// Usage:
//
//	train_early_stop <training-data-file> <output-network-file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dm-hansen/enrollnet"
	"github.com/dm-hansen/enrollnet/cliutils"
	"github.com/dm-hansen/enrollnet/earlystop"

	_ "github.com/dm-hansen/enrollnet/initializers"
	_ "github.com/dm-hansen/enrollnet/operators"
	_ "github.com/dm-hansen/enrollnet/optimizers"
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

	cfg := earlystop.DefaultConfig()
	cfg.Seed = settings.Seed
	cfg.MaxEpochs = settings.MaxEpochs
	if !settings.Quiet {
		cfg.Progress = stdout
	}

	report, err := earlystop.Run(earlystop.Backend{}, earlystop.WrapData(d), netPath, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Best network from trial %d, combined MSE %v, saved to %s\n",
		report.Best.Trial+1, report.Best.Error, netPath)
	return nil
}
