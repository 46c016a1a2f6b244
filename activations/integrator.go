package activations

import (
	al "github.com/sharnoff/actlayer"
)

type integrator struct {
	inner al.Activation
	rate  float64
}

// Integrator returns an Activation that smooths the output of another over time, using the
// previous output of each Neuron:
//
//	out = (1 - rate) * previous + rate * inner(in)
//
// The rate is given by the default "integrator-rate", and can be changed with Rate.
//
// The inner Activation should not itself depend on the previous output. Integrator will panic if
// given a nil Activation.
func Integrator(inner al.Activation) *integrator {
	if inner == nil {
		panic("given inner Activation is nil")
	}

	return &integrator{inner, defaultValue["integrator-rate"]}
}

// Rate sets the fraction of each new output that comes from the inner Activation, returning the
// same Integrator. Rate will panic if given a value outside of (0, 1].
func (t *integrator) Rate(rate float64) *integrator {
	if rate <= 0 || rate > 1 {
		panic("given integrator rate is not in (0, 1]")
	}

	t.rate = rate
	return t
}

func (t *integrator) TypeString() string {
	return "integrator"
}

func (t *integrator) Activate(in, prev float64) float64 {
	return (1-t.rate)*prev + t.rate*t.inner.Activate(in, prev)
}

func (t *integrator) Derivative(in, out float64) float64 {
	// the previous output is constant w.r.t. the input, so only the inner part remains. 'out'
	// isn't the inner output, so that has to be recalculated
	return t.rate * t.inner.Derivative(in, t.inner.Activate(in, out))
}
