package activations

import (
	"math"

	"github.com/pkg/errors"
	al "github.com/sharnoff/actlayer"
)

func init() {
	defaultValue = map[string]float64{
		"leaky-relu-alpha": 0.01,
		"elu-alpha":        1,
		"integrator-rate":  0.5,
	}

	list := []func() al.Activation{
		func() al.Activation { return Identity() },
		func() al.Activation { return Logistic() },
		func() al.Activation { return Tanh() },
		func() al.Activation { return Softsign() },
		func() al.Activation { return ReLU() },
		func() al.Activation { return LeakyReLU() },
		func() al.Activation { return ELU() },
		func() al.Activation { return Softplus() },
		func() al.Activation { return Integrator(Logistic()) },
	}

	if err := al.RegisterAll(list); err != nil {
		panic(err)
	}
}

var defaultValue map[string]float64

// SetDefault sets the default values for certain Activations. The values that can be set are:
// "leaky-relu-alpha", "elu-alpha", and "integrator-rate". Only Activations made afterwards are
// affected.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
