package actlayer

import (
	"sort"

	"github.com/pkg/errors"
)

// registered Activations, by their TypeString
var registry = make(map[string]func() Activation)

// Register adds the type of Activation returned by f to the set that can be retrieved by Lookup,
// under its TypeString. Register is intended to be called from init() functions and is not safe
// for concurrent use.
//
// Register returns ErrRegisterNilReturn if f returns nil, and an error wrapping
// ErrRegisterDuplicate if the name has already been taken.
func Register(f func() Activation) error {
	a := f()
	if a == nil {
		return ErrRegisterNilReturn
	}

	name := a.TypeString()
	if _, ok := registry[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Activation %q", name)
	}

	registry[name] = f
	return nil
}

// RegisterAll calls Register on each function in the list, stopping at the first error.
func RegisterAll(list []func() Activation) error {
	for i, f := range list {
		if err := Register(f); err != nil {
			return errors.Wrapf(err, "Failed to register Activation %d", i)
		}
	}

	return nil
}

// Lookup returns a new Activation of the type registered under name. It returns an error wrapping
// ErrInvalidArgument if there is no such type.
func Lookup(name string) (Activation, error) {
	f, ok := registry[name]
	if !ok {
		return nil, invalidArg("No Activation registered with name %q", name)
	}

	return f(), nil
}

// Registered returns the names of all registered Activations, in sorted order.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
