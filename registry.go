package enrollnet

import (
	"github.com/pkg/errors"
	"sync"
)

var registry = struct {
	sync.RWMutex

	activations  map[string]func() Activation
	algorithms   map[string]func() Algorithm
	initializers map[string]func() Initializer

	defaultActivation, defaultAlgorithm, defaultInitializer string
}{
	activations:  make(map[string]func() Activation),
	algorithms:   make(map[string]func() Algorithm),
	initializers: make(map[string]func() Initializer),
}

// RegisterActivation allows the Activation returned by 'f' to be referenced by 'name', both when
// configuring a Network and when loading one from a file. RegisterActivation returns
// ErrRegisterDuplicate if the name is taken, and ErrRegisterNilReturn if 'f' returns nil.
func RegisterActivation(name string, f func() Activation) error {
	if f == nil {
		return NilArgError{"Activation constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.activations[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Activation %q", name)
	}

	registry.activations[name] = f
	return nil
}

// RegisterAlgorithm is the equivalent of RegisterActivation for training Algorithms.
func RegisterAlgorithm(name string, f func() Algorithm) error {
	if f == nil {
		return NilArgError{"Algorithm constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.algorithms[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Algorithm %q", name)
	}

	registry.algorithms[name] = f
	return nil
}

// RegisterInitializer is the equivalent of RegisterActivation for Initializers.
func RegisterInitializer(name string, f func() Initializer) error {
	if f == nil {
		return NilArgError{"Initializer constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.initializers[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Initializer %q", name)
	}

	registry.initializers[name] = f
	return nil
}

// SetDefaultActivation sets the Activation given to every non-input layer of newly created
// Networks. The name must already be registered.
func SetDefaultActivation(name string) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.activations[name]; !ok {
		return errors.Wrapf(ErrNotRegistered, "Can't set default Activation %q", name)
	}

	registry.defaultActivation = name
	return nil
}

// SetDefaultAlgorithm sets the training Algorithm of newly created Networks.
func SetDefaultAlgorithm(name string) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.algorithms[name]; !ok {
		return errors.Wrapf(ErrNotRegistered, "Can't set default Algorithm %q", name)
	}

	registry.defaultAlgorithm = name
	return nil
}

// SetDefaultInitializer sets the Initializer used by InitWeights for newly created Networks.
func SetDefaultInitializer(name string) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.initializers[name]; !ok {
		return errors.Wrapf(ErrNotRegistered, "Can't set default Initializer %q", name)
	}

	registry.defaultInitializer = name
	return nil
}

func newActivation(name string) (Activation, error) {
	registry.RLock()
	f, ok := registry.activations[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Unknown Activation %q", name)
	}
	return f(), nil
}

func newAlgorithm(name string) (Algorithm, error) {
	registry.RLock()
	f, ok := registry.algorithms[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Unknown Algorithm %q", name)
	}
	return f(), nil
}

func newInitializer(name string) (Initializer, error) {
	registry.RLock()
	f, ok := registry.initializers[name]
	registry.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Unknown Initializer %q", name)
	}
	return f(), nil
}

// defaults returns whatever defaults have been set. Any of them may be nil.
func defaults() (Activation, Algorithm, Initializer) {
	registry.RLock()
	act, alg, in := registry.defaultActivation, registry.defaultAlgorithm, registry.defaultInitializer
	registry.RUnlock()

	var (
		a  Activation
		o  Algorithm
		it Initializer
	)
	if act != "" {
		a, _ = newActivation(act)
	}
	if alg != "" {
		o, _ = newAlgorithm(alg)
	}
	if in != "" {
		it, _ = newInitializer(in)
	}

	return a, o, it
}
