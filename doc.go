// Package enrollnet provides the small feed-forward neural networks used to predict enrollment
// from tabular data, along with the data sets they are trained on.
//
// # Data
//
// Training data is read from the plain text format shared by every tool in this module: a header
// line with the number of rows, inputs and outputs, followed by the inputs and outputs of each
// row:
//
//	3 2 1
//	0 1
//	1
//	...
//
//	d, err := enrollnet.ReadData("applicants.data")
//
// # Creating Networks
//
// Networks are made of layers; the first holds the inputs, the last the outputs. A standard
// Network connects each layer to the one before it:
//
//	net, err := enrollnet.NewStandard(d.NumInputs(), d.NumInputs()/2, d.NumOutputs())
//
// A shortcut Network connects each layer to every layer before it, and is the starting point for
// CascadeTrain.
//
// Activation functions, training algorithms and weight initializers are chosen by name. The
// implementations live in the subpackages "operators", "optimizers" and "initializers", which
// register themselves when imported, and set the defaults:
//
//	import (
//		_ "github.com/dm-hansen/enrollnet/initializers"
//		_ "github.com/dm-hansen/enrollnet/operators"
//		_ "github.com/dm-hansen/enrollnet/optimizers"
//	)
//
//	err = net.SetAlgorithm("rprop")
//	err = net.SetActivationHidden("elliot")
//
// # Training
//
// The inputs are usually scaled before training; the scaling parameters are kept by the Network
// so that new inputs can be scaled the same way:
//
//	err = net.SetInputScalingParams(d, 0, 1)
//	err = net.ScaleTrain(d)
//	err = net.InitWeights(d)
//
//	for {
//		trainErr, err := net.TrainEpoch(train)
//		testErr, err := net.Test(test)
//		...
//	}
//
// Choosing when to stop is left to the caller; the subpackage "earlystop" does so by comparing
// several independently trained Networks.
//
// # Saving and Loading
//
// Networks are written to a single file with Save, and read back with Load. Loading requires that
// the Activations and Algorithm named in the file are registered, so the same subpackages must be
// imported.
package enrollnet
