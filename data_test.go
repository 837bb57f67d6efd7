package enrollnet_test

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dm-hansen/enrollnet"
)

const xorData = `4 2 1
0 0
0
0 1
1
1 0
1
1 1
0
`

func TestReadDataFrom(t *testing.T) {
	d, err := enrollnet.ReadDataFrom(strings.NewReader(xorData))
	if err != nil {
		t.Fatalf("ReadDataFrom failed: %v", err)
	}

	if d.Len() != 4 || d.NumInputs() != 2 || d.NumOutputs() != 1 {
		t.Fatalf("Expected 4 rows of 2 -> 1, got %d rows of %d -> %d", d.Len(), d.NumInputs(), d.NumOutputs())
	}

	r := d.Datum(2)
	if r.Inputs[0] != 1 || r.Inputs[1] != 0 || r.Outputs[0] != 1 {
		t.Errorf("Row 2 read incorrectly: %v", r)
	}
}

func TestReadDataFromLineBreaks(t *testing.T) {
	// line breaks are not significant
	d, err := enrollnet.ReadDataFrom(strings.NewReader("2 2 1 0.5 1e-1 1 -2 3 0"))
	if err != nil {
		t.Fatalf("ReadDataFrom failed: %v", err)
	}

	if r := d.Datum(1); r.Inputs[0] != -2 || r.Inputs[1] != 3 || r.Outputs[0] != 0 {
		t.Errorf("Row 1 read incorrectly: %v", r)
	}
}

func TestReadDataFromInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"short header":   "4 2",
		"negative count": "-1 2 1",
		"not a number":   "1 2 1\n0 x\n1",
		"early end":      "2 2 1\n0 0\n1\n1",
		"trailing field": "1 2 1\n0 0\n1\n7",
		"nan input":      "1 2 1\n0 nan\n1",
		"inf input":      "1 2 1\nInf 0\n1",
		"inf output":     "1 2 1\n0 0\n-infinity",
		"NaN output":     "1 2 1\n0 0\nNaN",
	}

	for name, text := range tests {
		_, err := enrollnet.ReadDataFrom(strings.NewReader(text))
		if err == nil {
			t.Errorf("%s: expected an error", name)
		} else if !enrollnet.IsDataError(err) {
			t.Errorf("%s: expected a DataError, got %T: %v", name, err, err)
		}
	}
}

func TestReadDataMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.data")

	_, err := enrollnet.ReadData(path)
	if !enrollnet.IsDataError(err) {
		t.Fatalf("Expected a DataError, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.data") {
		t.Errorf("Error should name the file: %v", err)
	}
}

func TestNewDataMismatch(t *testing.T) {
	_, err := enrollnet.NewData([]enrollnet.Datum{
		{Inputs: []float64{1, 2}, Outputs: []float64{1}},
		{Inputs: []float64{1}, Outputs: []float64{1}},
	})
	if !enrollnet.IsDataError(err) {
		t.Errorf("Expected a DataError, got %v", err)
	}
}

func TestSubset(t *testing.T) {
	d, err := enrollnet.ReadDataFrom(strings.NewReader(xorData))
	if err != nil {
		t.Fatal(err)
	}

	sub, err := d.Subset(1, 2)
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if sub.Len() != 2 || sub.NumInputs() != 2 || sub.NumOutputs() != 1 {
		t.Fatalf("Subset has the wrong shape: %d rows of %d -> %d", sub.Len(), sub.NumInputs(), sub.NumOutputs())
	}

	// the subset is a copy
	sub.Datum(0).Inputs[0] = 42
	if d.Datum(1).Inputs[0] != 0 {
		t.Errorf("Changing the subset changed the original")
	}

	if _, err = d.Subset(3, 2); err == nil {
		t.Errorf("Expected an error for a subset past the end")
	}
	if _, err = d.Subset(-1, 1); err == nil {
		t.Errorf("Expected an error for a negative position")
	}
}

func TestShuffleKeepsRows(t *testing.T) {
	d, err := enrollnet.ReadDataFrom(strings.NewReader(xorData))
	if err != nil {
		t.Fatal(err)
	}

	d.Shuffle(rand.New(rand.NewSource(3)))

	var ones int
	for i := 0; i < d.Len(); i++ {
		r := d.Datum(i)
		want := 0.0
		if r.Inputs[0] != r.Inputs[1] {
			want = 1
		}
		if r.Outputs[0] != want {
			t.Errorf("Row %v was split from its output", r)
		}
		ones += int(r.Outputs[0])
	}
	if ones != 2 {
		t.Errorf("Expected 2 positive rows after shuffling, got %d", ones)
	}
}

func TestWriteReadData(t *testing.T) {
	d, err := enrollnet.ReadDataFrom(strings.NewReader(xorData))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = d.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	again, err := enrollnet.ReadDataFrom(&buf)
	if err != nil {
		t.Fatalf("Reading written data failed: %v", err)
	}
	if again.Len() != d.Len() {
		t.Fatalf("Expected %d rows, got %d", d.Len(), again.Len())
	}
	for i := 0; i < d.Len(); i++ {
		a, b := d.Datum(i), again.Datum(i)
		if a.Inputs[0] != b.Inputs[0] || a.Inputs[1] != b.Inputs[1] || a.Outputs[0] != b.Outputs[0] {
			t.Errorf("Row %d differs: %v != %v", i, a, b)
		}
	}
}

func TestRelease(t *testing.T) {
	d, err := enrollnet.ReadDataFrom(strings.NewReader(xorData))
	if err != nil {
		t.Fatal(err)
	}

	d.Release()
	if d.Len() != 0 {
		t.Errorf("Released data should have no rows, has %d", d.Len())
	}
}
