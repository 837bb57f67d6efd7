package earlystop

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/dm-hansen/enrollnet"
	_ "github.com/dm-hansen/enrollnet/initializers"
	_ "github.com/dm-hansen/enrollnet/operators"
	_ "github.com/dm-hansen/enrollnet/optimizers"
)

func sumData(t *testing.T, n int) *enrollnet.Data {
	t.Helper()

	rng := rand.New(rand.NewSource(11))
	rows := make([]enrollnet.Datum, n)
	for i := range rows {
		in := make([]float64, 4)
		for j := range in {
			in[j] = rng.Float64() * 10
		}
		out := 0.0
		if in[0]+in[1] > in[2]+in[3] {
			out = 1
		}
		rows[i] = enrollnet.Datum{Inputs: in, Outputs: []float64{out}}
	}

	d, err := enrollnet.NewData(rows)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBackendRun(t *testing.T) {
	d := sumData(t, 40)

	cfg := DefaultConfig()
	cfg.Trials = 2
	cfg.Seed = 5
	cfg.MaxEpochs = 300

	path := filepath.Join(t.TempDir(), "enroll.net")
	report, err := Run(Backend{}, WrapData(d), path, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.Best.Found() {
		t.Fatalf("No trial was saved")
	}

	net, err := enrollnet.Load(path)
	if err != nil {
		t.Fatalf("Loading the saved network failed: %v", err)
	}
	if s := net.Sizes(); len(s) != 3 || s[0] != 4 || s[1] != 2 || s[2] != 1 {
		t.Errorf("Expected sizes [4 2 1], got %v", s)
	}
	if !net.HasScaling() {
		t.Errorf("Saved network has no scaling parameters")
	}

	// the full data set is shuffled but never scaled
	var large bool
	for i := 0; i < d.Len(); i++ {
		for _, v := range d.Datum(i).Inputs {
			large = large || v > 1
		}
	}
	if !large {
		t.Errorf("The full data set was scaled")
	}
}

func TestWrapDataSubset(t *testing.T) {
	d := WrapData(sumData(t, 7))

	sub, err := d.Subset(3, 4)
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if sub.Len() != 4 || sub.NumInputs() != 4 {
		t.Errorf("Subset has %d rows of %d inputs", sub.Len(), sub.NumInputs())
	}
	if _, err = unwrap(sub); err != nil {
		t.Errorf("Subset can't be used by Backend: %v", err)
	}

	if _, err = d.Subset(5, 4); err == nil {
		t.Errorf("Expected an error for a subset past the end")
	}
}

func TestBackendRejectsForeignData(t *testing.T) {
	cand, err := Backend{}.NewCandidate([]int{4, 2, 1}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	defer cand.Release()

	c := &counts{}
	if err = cand.InitWeights(&fakeData{n: 4, in: 4, out: 1, c: c}); err == nil {
		t.Errorf("Expected an error for a Dataset not made by WrapData")
	}
}
