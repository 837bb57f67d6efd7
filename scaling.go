package enrollnet

import (
	"github.com/pkg/errors"
)

// SetInputScalingParams records the observed range of every input over 'd', so that inputs can
// later be mapped linearly onto [newMin, newMax] by ScaleInput and ScaleTrain. Inputs that are
// constant over 'd' are mapped to newMin.
//
// The parameters are saved along with the Network.
func (net *Network) SetInputScalingParams(d *Data, newMin, newMax float64) error {
	if net.released {
		return ErrReleased
	} else if d == nil {
		return NilArgError{"*Data"}
	} else if d.Len() == 0 {
		return errors.Wrapf(ErrEmptyData, "Can't set input scaling parameters")
	} else if d.NumInputs() != net.NumInputs() {
		return SizeMismatchError{net.NumInputs(), d.NumInputs(), "data inputs"}
	}

	sc := &scaling{
		Min:    make([]float64, d.NumInputs()),
		Max:    make([]float64, d.NumInputs()),
		NewMin: newMin,
		NewMax: newMax,
	}

	copy(sc.Min, d.rows[0].Inputs)
	copy(sc.Max, d.rows[0].Inputs)
	for _, r := range d.rows[1:] {
		for i, v := range r.Inputs {
			if v < sc.Min[i] {
				sc.Min[i] = v
			}
			if v > sc.Max[i] {
				sc.Max[i] = v
			}
		}
	}

	net.scale = sc
	return nil
}

// HasScaling returns whether input scaling parameters have been set or loaded.
func (net *Network) HasScaling() bool {
	return net.scale != nil
}

// ScaleInput scales a single input vector in place. It returns ErrScalingNotSet if no scaling
// parameters have been set.
func (net *Network) ScaleInput(inputs []float64) error {
	if net.scale == nil {
		return ErrScalingNotSet
	} else if len(inputs) != len(net.scale.Min) {
		return SizeMismatchError{len(net.scale.Min), len(inputs), "inputs"}
	}

	net.scale.apply(inputs)
	return nil
}

// ScaleTrain scales the inputs of every row of 'd' in place. The outputs are left as they are.
func (net *Network) ScaleTrain(d *Data) error {
	if net.scale == nil {
		return ErrScalingNotSet
	} else if d == nil {
		return NilArgError{"*Data"}
	} else if d.NumInputs() != len(net.scale.Min) {
		return SizeMismatchError{len(net.scale.Min), d.NumInputs(), "data inputs"}
	}

	for _, r := range d.rows {
		net.scale.apply(r.Inputs)
	}
	return nil
}

func (sc *scaling) apply(inputs []float64) {
	span := sc.NewMax - sc.NewMin
	for i, v := range inputs {
		width := sc.Max[i] - sc.Min[i]
		if width == 0 {
			inputs[i] = sc.NewMin
			continue
		}

		inputs[i] = sc.NewMin + (v-sc.Min[i])*span/width
	}
}
