package operators

import (
	"math"
	"testing"

	bs "github.com/dm-hansen/enrollnet"
)

func TestValues(t *testing.T) {
	tests := []struct {
		act       bs.Activation
		sum, want float64
	}{
		{Elliot(), 0, 0.5},
		{Elliot(), 2, 0.75},
		{Elliot(), -2, 0.25},
		{ElliotSymmetric(), 2, 0.5},
		{ElliotSymmetric(), -2, -0.5},
		{Logistic(), 0, 0.5},
		{Logistic(), 1, 1 / (1 + math.Exp(-1))},
		{Tanh(), 2, math.Tanh(1)},
		{Identity(), 3, 1.5},
	}

	for _, tt := range tests {
		if v := tt.act.Value(tt.sum); math.Abs(v-tt.want) > 1e-12 {
			t.Errorf("%s(%v): expected %v, got %v", tt.act.TypeString(), tt.sum, tt.want, v)
		}
	}
}

// the derivatives should match a finite difference of the values
func TestDerivs(t *testing.T) {
	acts := []bs.Activation{Elliot(), ElliotSymmetric(), Logistic(), Tanh(), Identity()}
	const h = 1e-6

	for _, act := range acts {
		for _, x := range []float64{-3, -0.7, 0.4, 2.5} {
			numeric := (act.Value(x+h) - act.Value(x-h)) / (2 * h)
			d := act.Deriv(x, act.Value(x))

			if math.Abs(numeric-d) > 1e-6 {
				t.Errorf("%s'(%v): expected about %v, got %v", act.TypeString(), x, numeric, d)
			}
		}
	}
}

func TestRegistered(t *testing.T) {
	// registered in init, so registering again must fail
	for _, name := range []string{"elliot", "elliot_symmetric", "sigmoid", "sigmoid_symmetric", "linear"} {
		err := bs.RegisterActivation(name, func() bs.Activation { return Elliot() })
		if err == nil {
			t.Errorf("Activation %q was not registered", name)
		}
	}
}
