// Package extract builds training data from the rows of a SQL query. Each selected column is
// mapped onto inputs or outputs according to a list of Fields.
package extract

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Kind is the way a column is turned into values
type Kind string

const (
	// Numeric columns give one input: the value divided by Divisor, capped at 1
	Numeric Kind = "numeric"

	// Categorical columns give one input per category, 1 for the category matching the value and
	// 0 for the others
	Categorical Kind = "categorical"

	// Target columns give one output: 1 if the value equals Positive, 0 otherwise
	Target Kind = "target"
)

// Field describes how a single column is used
type Field struct {
	Column string `json:"column"`
	Kind   Kind   `json:"kind"`

	// Divisor applies to Numeric fields. If zero, it is taken to be 1.
	Divisor float64 `json:"divisor,omitempty"`

	// Missing is the value used for NULL or unparseable values. For Categorical fields, every
	// input of the field is set to it.
	Missing float64 `json:"missing,omitempty"`

	Categories []string `json:"categories,omitempty"`
	Positive   string   `json:"positive,omitempty"`
}

// width returns the number of values the Field produces
func (f Field) width() int {
	if f.Kind == Categorical {
		return len(f.Categories)
	}
	return 1
}

// ReadFields reads a JSON array of Fields from 'r' and checks them. There must be at least one
// Target field and at least one input field.
func ReadFields(r io.Reader) ([]Field, error) {
	var fs []Field
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, errors.Wrapf(err, "Can't read fields, failed to decode JSON")
	}

	var inputs, outputs int
	seen := make(map[string]bool)
	for i, f := range fs {
		if f.Column == "" {
			return nil, errors.Errorf("Field %d has no column", i)
		} else if seen[f.Column] {
			return nil, errors.Errorf("Column %q is given more than once", f.Column)
		}
		seen[f.Column] = true

		switch f.Kind {
		case Numeric:
			if f.Divisor < 0 {
				return nil, errors.Errorf("Field %q has a negative divisor (%v)", f.Column, f.Divisor)
			}
			inputs++
		case Categorical:
			if len(f.Categories) == 0 {
				return nil, errors.Errorf("Categorical field %q has no categories", f.Column)
			}
			inputs += len(f.Categories)
		case Target:
			outputs++
		default:
			return nil, errors.Errorf("Field %q has unknown kind %q", f.Column, f.Kind)
		}
	}

	if inputs == 0 {
		return nil, errors.Errorf("Fields give no inputs")
	} else if outputs == 0 {
		return nil, errors.Errorf("Fields give no target")
	}

	return fs, nil
}

// ReadFieldsFile is ReadFields, for the file at 'path'
func ReadFieldsFile(path string) ([]Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read fields")
	}
	defer f.Close()

	fs, err := ReadFields(f)
	return fs, errors.Wrapf(err, "Can't read fields from %q", path)
}
