// Command predict loads a trained network and prints its first output for every row of a data
// file, one per line. The rows are scaled the way the training data was.
//
// Usage:
//
//	predict <network-file> <data-file>
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dm-hansen/enrollnet"
	"github.com/dm-hansen/enrollnet/cliutils"

	_ "github.com/dm-hansen/enrollnet/operators"
	_ "github.com/dm-hansen/enrollnet/optimizers"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := cliutils.CheckArgs(args, "<network-file>", "<data-file>"); err != nil {
		return cliutils.ExitCode(err, stderr)
	}

	return cliutils.ExitCode(predict(args[1], args[2], stdout), stderr)
}

func predict(netPath, dataPath string, stdout io.Writer) error {
	net, err := enrollnet.Load(netPath)
	if err != nil {
		return err
	}
	defer net.Release()

	d, err := enrollnet.ReadData(dataPath)
	if err != nil {
		return err
	}
	defer d.Release()

	w := bufio.NewWriter(stdout)
	for _, in := range d.Inputs() {
		if net.HasScaling() {
			if err = net.ScaleInput(in); err != nil {
				return err
			}
		}

		outs, err := net.Run(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%22.20f\n", outs[0])
	}

	return errors.Wrapf(w.Flush(), "Can't write predictions")
}
