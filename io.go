package enrollnet

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// header is the first line of every saved Network. It should not be changed unless the format
// itself changes.
const header string = "enrollnet network 1"

type savedLayer struct {
	Size       int
	Activation string      `json:",omitempty"`
	Weights    [][]float64 `json:",omitempty"`
}

type savedNetwork struct {
	Shortcut  bool
	Algorithm string `json:",omitempty"`
	Layers    []savedLayer
	Scaling   *scaling `json:",omitempty"`
}

// Save writes the Network to the file at 'path', replacing it if it exists. The file is first
// written next to its destination and then renamed, so an existing file is never left half
// written.
func (net *Network) Save(path string) error {
	if net.released {
		return ErrReleased
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file in %q", dir)
	}

	finishedSafely := false
	defer func() {
		if !finishedSafely {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = net.Write(f); err != nil {
		return errors.Wrapf(err, "Can't save network to %q", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "Can't save network, closing %q failed", f.Name())
	}
	if err = os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		finishedSafely = true
		return errors.Wrapf(err, "Can't save network, couldn't move file into place at %q", path)
	}

	finishedSafely = true
	return nil
}

// Write writes the Network to 'w' in the format read by Read.
func (net *Network) Write(w io.Writer) error {
	if net.released {
		return ErrReleased
	}

	sn := savedNetwork{
		Shortcut: net.shortcut,
		Layers:   make([]savedLayer, len(net.layers)),
		Scaling:  net.scale,
	}
	if net.alg != nil {
		sn.Algorithm = net.alg.TypeString()
	}

	for i, l := range net.layers {
		sl := savedLayer{Size: l.size}
		if i != 0 {
			if l.act == nil {
				return errors.Wrapf(ErrNoActivation, "Can't write network, layer %d", i)
			}
			sl.Activation = l.act.TypeString()

			sl.Weights = make([][]float64, l.size)
			for n := range sl.Weights {
				sl.Weights[n] = mat.Row(nil, n, l.weights)
			}
		}
		sn.Layers[i] = sl
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header + "\n"); err != nil {
		return errors.Wrapf(err, "Can't write network header")
	}

	enc := json.NewEncoder(bw)
	enc.SetIndent("", "\t")
	if err := enc.Encode(sn); err != nil {
		return errors.Wrapf(err, "Can't write network, failed to encode JSON")
	}

	return errors.Wrapf(bw.Flush(), "Can't write network")
}

// Load reads a Network from the file at 'path', as written by Save. The Activations and the
// Algorithm named in the file must have been registered.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network")
	}
	defer f.Close()

	net, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	return net, nil
}

// Read reads a Network from 'r'.
func Read(r io.Reader) (*Network, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil || line != header+"\n" {
		return nil, errors.Errorf("Not a saved network, header is missing")
	}

	var sn savedNetwork
	if err = json.NewDecoder(br).Decode(&sn); err != nil {
		return nil, errors.Wrapf(err, "Saved network is incompatible, failed to decode JSON")
	}

	sizes := make([]int, len(sn.Layers))
	for i, l := range sn.Layers {
		sizes[i] = l.Size
	}

	net, err := newNetwork(sn.Shortcut, sizes)
	if err != nil {
		return nil, errors.Wrapf(err, "Saved network is incompatible")
	}

	if sn.Algorithm != "" {
		if err = net.SetAlgorithm(sn.Algorithm); err != nil {
			return nil, err
		}
	}

	for i, sl := range sn.Layers[1:] {
		l := net.layers[i+1]

		if l.act, err = newActivation(sl.Activation); err != nil {
			return nil, errors.Wrapf(err, "Saved network is incompatible, layer %d", i+1)
		}

		if len(sl.Weights) != l.size {
			return nil, SizeMismatchError{l.size, len(sl.Weights), "saved weights"}
		}
		for n, row := range sl.Weights {
			if len(row) != l.fanIn+1 {
				return nil, SizeMismatchError{l.fanIn + 1, len(row), "saved weights of a neuron"}
			}
			l.weights.SetRow(n, row)
		}
	}

	if sc := sn.Scaling; sc != nil {
		if len(sc.Min) != net.NumInputs() || len(sc.Max) != net.NumInputs() {
			return nil, errors.Errorf("Saved network is incompatible, scaling parameters don't fit %d inputs", net.NumInputs())
		}
		net.scale = sc
	}

	return net, nil
}
