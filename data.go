package enrollnet

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Datum is a single labeled example: the inputs given to the Network and the outputs it is
// expected to produce for them.
type Datum struct {
	Inputs  []float64
	Outputs []float64
}

// Data is an ordered set of Datums that all share the same number of inputs and outputs. Data is
// what Networks are trained and tested on.
//
// Data is read from files in the FANN training-file format:
//
//	num_data num_input num_output
//	inputs of row 0
//	outputs of row 0
//	inputs of row 1
//	...
//
// Numbers are separated by whitespace. Line breaks are not significant.
type Data struct {
	rows []Datum

	numIn, numOut int
}

// NewData creates Data from the given rows. The rows are not copied. NewData returns a
// DataError if the rows do not all have the same dimensions.
func NewData(rows []Datum) (*Data, error) {
	d := &Data{rows: rows}
	if len(rows) == 0 {
		return d, nil
	}

	d.numIn, d.numOut = len(rows[0].Inputs), len(rows[0].Outputs)
	for i, r := range rows {
		if len(r.Inputs) != d.numIn {
			return nil, DataError{Err: SizeMismatchError{d.numIn, len(r.Inputs), "inputs of row " + strconv.Itoa(i)}}
		} else if len(r.Outputs) != d.numOut {
			return nil, DataError{Err: SizeMismatchError{d.numOut, len(r.Outputs), "outputs of row " + strconv.Itoa(i)}}
		}
	}

	return d, nil
}

// ReadData reads Data from the file at 'path'. Any failure to open or to parse the file is
// returned as a DataError.
func ReadData(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DataError{path, err}
	}
	defer f.Close()

	d, err := ReadDataFrom(f)
	if err != nil {
		if de, ok := errors.Cause(err).(DataError); ok {
			de.Path = path
			return nil, de
		}
		return nil, DataError{path, err}
	}

	return d, nil
}

// ReadDataFrom reads Data in the FANN training-file format from 'r'.
func ReadDataFrom(r io.Reader) (*Data, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var field int
	nextInt := func(name string) (int, error) {
		if !sc.Scan() {
			return 0, DataError{Err: errors.Errorf("header is missing %s", name)}
		}
		field++

		v, err := strconv.Atoi(sc.Text())
		if err != nil || v < 0 {
			return 0, DataError{Err: errors.Errorf("header field %s is not a non-negative integer (%q)", name, sc.Text())}
		}
		return v, nil
	}

	nextFloat := func(row int) (float64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, DataError{Err: errors.Wrapf(err, "reading row %d failed", row)}
			}
			return 0, DataError{Err: errors.Errorf("file ends in row %d", row)}
		}
		field++

		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, DataError{Err: errors.Errorf("field %d (row %d) is not a number (%q)", field, row, sc.Text())}
		} else if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, DataError{Err: errors.Errorf("field %d (row %d) is not finite (%q)", field, row, sc.Text())}
		}
		return v, nil
	}

	numData, err := nextInt("num_data")
	if err != nil {
		return nil, err
	}
	numIn, err := nextInt("num_input")
	if err != nil {
		return nil, err
	}
	numOut, err := nextInt("num_output")
	if err != nil {
		return nil, err
	}

	d := &Data{rows: make([]Datum, numData), numIn: numIn, numOut: numOut}
	for i := range d.rows {
		in, out := make([]float64, numIn), make([]float64, numOut)
		for j := range in {
			if in[j], err = nextFloat(i); err != nil {
				return nil, err
			}
		}
		for j := range out {
			if out[j], err = nextFloat(i); err != nil {
				return nil, err
			}
		}

		d.rows[i] = Datum{in, out}
	}

	if sc.Scan() {
		return nil, DataError{Err: errors.Errorf("unexpected field %q after %d rows", sc.Text(), numData)}
	}
	if err := sc.Err(); err != nil {
		return nil, DataError{Err: errors.Wrapf(err, "reading data failed")}
	}

	return d, nil
}

// Len returns the number of rows.
func (d *Data) Len() int {
	return len(d.rows)
}

// NumInputs returns the number of inputs of every row.
func (d *Data) NumInputs() int {
	return d.numIn
}

// NumOutputs returns the number of outputs of every row.
func (d *Data) NumOutputs() int {
	return d.numOut
}

// Datum returns the row at 'index'. The returned slices are not copies.
func (d *Data) Datum(index int) Datum {
	return d.rows[index]
}

// Inputs returns the inputs of every row, in order. The inner slices are not copies.
func (d *Data) Inputs() [][]float64 {
	ins := make([][]float64, len(d.rows))
	for i := range d.rows {
		ins[i] = d.rows[i].Inputs
	}
	return ins
}

// Shuffle reorders the rows in place.
func (d *Data) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.rows), func(i, j int) { d.rows[i], d.rows[j] = d.rows[j], d.rows[i] })
}

// Subset returns a copy of the rows [pos, pos+length). Changes to the subset do not affect 'd'.
func (d *Data) Subset(pos, length int) (*Data, error) {
	if pos < 0 || length < 0 || pos+length > len(d.rows) {
		return nil, errors.Errorf("Can't take subset [%d, %d) of data with %d rows", pos, pos+length, len(d.rows))
	}

	sub := &Data{rows: make([]Datum, length), numIn: d.numIn, numOut: d.numOut}
	for i := range sub.rows {
		r := d.rows[pos+i]
		sub.rows[i] = Datum{
			Inputs:  append([]float64(nil), r.Inputs...),
			Outputs: append([]float64(nil), r.Outputs...),
		}
	}

	return sub, nil
}

// Copy returns a deep copy of 'd'.
func (d *Data) Copy() *Data {
	c, _ := d.Subset(0, len(d.rows))
	return c
}

// Release drops the rows held by 'd'. Afterwards 'd' has no rows.
func (d *Data) Release() {
	d.rows = nil
}

// inputRange returns the smallest and largest input value over all rows.
func (d *Data) inputRange() (smallest, largest float64) {
	first := true
	for _, r := range d.rows {
		for _, v := range r.Inputs {
			if first || v < smallest {
				smallest = v
			}
			if first || v > largest {
				largest = v
			}
			first = false
		}
	}

	return
}

// Write writes 'd' to 'w' in the format that ReadDataFrom reads.
func (d *Data) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	line := func(vs []float64) {
		for i, v := range vs {
			if i != 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	bw.WriteString(strconv.Itoa(len(d.rows)) + " " + strconv.Itoa(d.numIn) + " " + strconv.Itoa(d.numOut) + "\n")
	for _, r := range d.rows {
		line(r.Inputs)
		line(r.Outputs)
	}

	return errors.Wrapf(bw.Flush(), "Couldn't write data")
}

// WriteFile writes 'd' to the file at 'path', replacing it if it exists.
func (d *Data) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create data file %q", path)
	}

	if err = d.Write(f); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "Couldn't close data file %q", path)
}
