package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dm-hansen/enrollnet"
	"github.com/dm-hansen/enrollnet/cliutils"
	"github.com/dm-hansen/enrollnet/extract"
)

func TestWrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{"extract_data"},
		{"extract_data", "q.sql"},
		{"extract_data", "q.sql", "fields.json"},
		{"extract_data", "a", "b", "c", "d"},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != cliutils.ExitUsage {
			t.Errorf("%d args: expected exit code %d, got %d", len(args)-1, cliutils.ExitUsage, code)
		}
	}
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "enroll.db")

	db, err := extract.Open(context.Background(), "sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		`CREATE TABLE apps (gpa REAL, enrolled TEXT)`,
		`INSERT INTO apps VALUES (4.0, 'Y'), (2.0, 'N')`,
	} {
		if _, err = db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	db.Close()

	query, fields, out := filepath.Join(dir, "q.sql"), filepath.Join(dir, "fields.json"), filepath.Join(dir, "out.data")
	if err = os.WriteFile(query, []byte("SELECT gpa, enrolled FROM apps"), 0644); err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fields, []byte(`[
		{"column": "gpa", "kind": "numeric", "divisor": 4},
		{"column": "enrolled", "kind": "target", "positive": "Y"}
	]`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("EXTRACT_DRIVER", "sqlite")
	t.Setenv("EXTRACT_DSN", dbPath)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"extract_data", query, fields, out}, &stdout, &stderr); code != cliutils.ExitOK {
		t.Fatalf("Exit code %d: %s", code, stderr.String())
	}

	d, err := enrollnet.ReadData(out)
	if err != nil {
		t.Fatalf("Can't read the extracted data: %v", err)
	}
	if d.Len() != 2 || d.NumInputs() != 1 || d.NumOutputs() != 1 {
		t.Fatalf("Expected 2 rows of 1 -> 1, got %d rows of %d -> %d", d.Len(), d.NumInputs(), d.NumOutputs())
	}
	if r := d.Datum(1); r.Inputs[0] != 0.5 || r.Outputs[0] != 0 {
		t.Errorf("Row 1 extracted incorrectly: %v", r)
	}
}
