package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dm-hansen/enrollnet"
	"github.com/dm-hansen/enrollnet/cliutils"
)

func TestWrongArgCount(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.net")

	for _, args := range [][]string{
		{"train_early_stop"},
		{"train_early_stop", "missing.data"},
		{"train_early_stop", "missing.data", out, "extra"},
		{"train_early_stop", "a", "b", "c", "d"},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != cliutils.ExitUsage {
			t.Errorf("%d args: expected exit code %d, got %d", len(args)-1, cliutils.ExitUsage, code)
		}
		if !strings.Contains(stderr.String(), "Usage") {
			t.Errorf("%d args: no usage message: %q", len(args)-1, stderr.String())
		}
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("A network was written despite the usage error")
	}
}

func TestMissingData(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"train_early_stop", filepath.Join(dir, "none.data"), filepath.Join(dir, "out.net")}, &stdout, &stderr)
	if code != cliutils.ExitFailure {
		t.Errorf("Expected exit code %d, got %d", cliutils.ExitFailure, code)
	}
}

func writeData(t *testing.T, path string, n int) {
	t.Helper()

	rng := rand.New(rand.NewSource(3))
	var b strings.Builder
	fmt.Fprintf(&b, "%d 4 1\n", n)
	for i := 0; i < n; i++ {
		in := []float64{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
		out := 0
		if in[0]+in[1] > 1 {
			out = 1
		}
		fmt.Fprintf(&b, "%v %v %v %v\n%d\n", in[0], in[1], in[2], in[3], out)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTrain(t *testing.T) {
	dir := t.TempDir()
	data, out := filepath.Join(dir, "train.data"), filepath.Join(dir, "out.net")
	writeData(t, data, 30)

	t.Setenv("ENROLL_SEED", "8")
	t.Setenv("ENROLL_MAX_EPOCHS", "50")
	t.Setenv("ENROLL_QUIET", "1")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"train_early_stop", data, out}, &stdout, &stderr); code != cliutils.ExitOK {
		t.Fatalf("Exit code %d: %s", code, stderr.String())
	}

	net, err := enrollnet.Load(out)
	if err != nil {
		t.Fatalf("Can't load the trained network: %v", err)
	}
	if net.NumInputs() != 4 || net.NumOutputs() != 1 {
		t.Errorf("Trained network has %d inputs and %d outputs", net.NumInputs(), net.NumOutputs())
	}
	if !strings.Contains(stdout.String(), "Best network") {
		t.Errorf("No summary printed: %q", stdout.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 {
		t.Errorf("Expected only the data and network files in the output directory, found %v", names)
	}
}

func TestTrainSameSeed(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "train.data")
	writeData(t, data, 30)

	t.Setenv("ENROLL_SEED", "8")
	t.Setenv("ENROLL_MAX_EPOCHS", "50")
	t.Setenv("ENROLL_QUIET", "1")

	var saved [2][]byte
	for i := range saved {
		out := filepath.Join(dir, fmt.Sprintf("out%d.net", i))

		var stdout, stderr bytes.Buffer
		if code := run([]string{"train_early_stop", data, out}, &stdout, &stderr); code != cliutils.ExitOK {
			t.Fatalf("Run %d: exit code %d: %s", i, code, stderr.String())
		}

		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		saved[i] = b
	}

	if !bytes.Equal(saved[0], saved[1]) {
		t.Errorf("Two runs with the same seed saved different networks")
	}
}
