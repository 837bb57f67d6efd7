package enrollnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrRegisterDuplicate = Error{"Name is already registered"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrNotRegistered     = Error{"Name is not registered"}

	ErrEmptyData     = Error{"Data has no rows"}
	ErrReleased      = Error{"Value has already been released"}
	ErrScalingNotSet = Error{"Input scaling parameters have not been set"}
	ErrNoAlgorithm   = Error{"Network has no training algorithm"}
	ErrNoActivation  = Error{"Network layer has no activation function"}
	ErrNoHiddenLayer = Error{"Network topology needs at least input and output layers"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError results from a slice or data set whose length does not fit what the Network
// expects.
type SizeMismatchError struct {
	Expected, Given int
	Of              string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch of %s: expected %d, given %d", err.Of, err.Expected, err.Given)
}

// DataError is returned for data files that are missing, unreadable or structurally invalid, and
// for data sets that cannot be trained on at all. Err carries the underlying cause.
type DataError struct {
	Path string
	Err  error
}

func (err DataError) Error() string {
	if err.Path == "" {
		return "Bad data: " + err.Err.Error()
	}

	return fmt.Sprintf("Bad data in %q: %s", err.Path, err.Err.Error())
}

// IsDataError reports whether the root cause of e (through github.com/pkg/errors) is a
// DataError.
func IsDataError(e error) bool {
	_, ok := errors.Cause(e).(DataError)
	return ok
}
