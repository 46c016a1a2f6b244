package initializers

import (
	al "github.com/sharnoff/actlayer"
)

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the biases of a Layer and
// the weights leading into it. There is no scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Initialize is the implementation of actlayer.Initializer
func (r random) Initialize(l *al.Layer) {
	fixed := l.UseFixedBiasValues()
	for _, n := range l.Neurons() {
		if !fixed {
			n.Bias = r.Gen()
		}

		for _, s := range n.Inputs() {
			s.Weight = r.Gen()
		}
	}
}

type constant float64

// Constant returns an Initializer that sets every bias and weight to the given value.
func Constant(value float64) constant {
	return constant(value)
}

// Zero returns an Initializer that sets every bias and weight to 0.
func Zero() constant {
	return Constant(0)
}

// Initialize is the implementation of actlayer.Initializer
func (c constant) Initialize(l *al.Layer) {
	fixed := l.UseFixedBiasValues()
	for _, n := range l.Neurons() {
		if !fixed {
			n.Bias = float64(c)
		}

		for _, s := range n.Inputs() {
			s.Weight = float64(c)
		}
	}
}
