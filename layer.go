package actlayer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Layer is a fixed-size, ordered set of Neurons that all share one Activation. The number of
// Neurons is set when the Layer is made (by New or Restore) and never changes afterwards.
//
// A Layer owns its Neurons; no Neuron belongs to more than one Layer.
//
// Layers are not safe for concurrent use.
type Layer struct {
	neurons []*Neuron

	act Activation

	// whether or not biases should be left alone by training. The Layer itself only stores
	// this; it's up to whatever is adjusting the biases to check it.
	useFixedBiasValues bool

	init Initializer
}

// New creates a Layer of neuronCount fresh Neurons, all with a bias of zero. The returned Layer
// does not use fixed bias values.
//
// New returns an error wrapping ErrInvalidArgument if neuronCount < 1 or act is nil.
func New(act Activation, neuronCount int) (*Layer, error) {
	if act == nil {
		return nil, invalidArg("Can't make layer, Activation is nil")
	} else if neuronCount < 1 {
		return nil, invalidArg("Can't make layer, must have neuron count >= 1 (%d)", neuronCount)
	}

	return newLayer(act, neuronCount), nil
}

func newLayer(act Activation, size int) *Layer {
	l := &Layer{
		act:     act,
		neurons: make([]*Neuron, size),
	}

	for i := range l.neurons {
		l.neurons[i] = &Neuron{layer: l, index: i}
	}

	return l
}

// String returns a short description of the Layer, in the form:
//
//	<size: %d, Activation: %s>
//
// If given a Layer that is nil, String will return:
//
//	<nil>
func (l *Layer) String() string {
	if l == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<size: %d, Activation: %s>", len(l.neurons), l.act.TypeString())
}

// Size returns the number of Neurons in the Layer. It is always at least 1.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// Neuron returns the Neuron at the given index. Index-out-of-bounds panics are allowed through.
func (l *Layer) Neuron(index int) *Neuron {
	return l.neurons[index]
}

// Neurons returns a copy of the list of Neurons in the Layer, in order. The Neurons themselves
// are not copied.
func (l *Layer) Neurons() []*Neuron {
	ns := make([]*Neuron, len(l.neurons))
	copy(ns, l.neurons)
	return ns
}

// Activation returns the Activation used by every Neuron in the Layer.
func (l *Layer) Activation() Activation {
	return l.act
}

// UseFixedBiasValues returns whether or not the biases of the Layer should be left unchanged by
// training.
func (l *Layer) UseFixedBiasValues() bool {
	return l.useFixedBiasValues
}

// SetUseFixedBiasValues sets whether or not the biases of the Layer should be left unchanged by
// training. This is not enforced by the Layer, only reported.
func (l *Layer) SetUseFixedBiasValues(fixed bool) {
	l.useFixedBiasValues = fixed
}

// SetInitializer attaches the Initializer that will be used by Initialize. It may be nil, in
// which case Initialize does nothing.
func (l *Layer) SetInitializer(init Initializer) {
	l.init = init
}

// Initializer returns the Initializer attached to the Layer, or nil if there isn't one.
func (l *Layer) Initializer() Initializer {
	return l.init
}

// Initialize prepares the Layer for a new training run by running its Initializer. If no
// Initializer has been attached, Initialize does nothing.
func (l *Layer) Initialize() {
	if l.init != nil {
		l.init.Initialize(l)
	}
}

// Activate applies the Layer's Activation to the given input.
func (l *Layer) Activate(input, previousOutput float64) float64 {
	return l.act.Activate(input, previousOutput)
}

// Derivative applies the derivative of the Layer's Activation at the given point.
func (l *Layer) Derivative(input, output float64) float64 {
	return l.act.Derivative(input, output)
}

// SetErrors sets the error of each Neuron to the difference between its expected and actual
// output, for use with output Layers. It returns the sum of the squared errors.
//
// The returned value is not divided by the number of Neurons. Averaging across Neurons or
// samples is left to the caller.
//
// SetErrors returns an error wrapping ErrInvalidArgument if expected is nil or is not the same
// length as the Layer, in which case no Neuron has been changed.
func (l *Layer) SetErrors(expected []float64) (float64, error) {
	if expected == nil {
		return 0, invalidArg("Can't set errors of layer %v, expected output is nil", l)
	} else if len(expected) != len(l.neurons) {
		return 0, invalidArg("Can't set errors of layer %v, len(expected) != layer size (%d != %d)", l, len(expected), len(l.neurons))
	}

	errs := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		errs[i] = n.Output
	}
	floats.SubTo(errs, expected, errs)

	for i, n := range l.neurons {
		n.Error = errs[i]
	}

	return floats.Dot(errs, errs), nil
}

// EvaluateErrors has each Neuron in the Layer evaluate its own error, in order. This is used for
// hidden Layers, after the errors of the Layers that they output to have been set.
func (l *Layer) EvaluateErrors() {
	for _, n := range l.neurons {
		n.EvaluateError()
	}
}

// SetInput sets the external input to each Neuron, which is added to the sum of its inputs
// on the next Run. This is mostly used for input Layers, which have no Synapses leading in.
//
// SetInput returns an error wrapping ErrInvalidArgument if values is nil or is not the same
// length as the Layer.
func (l *Layer) SetInput(values []float64) error {
	if values == nil {
		return invalidArg("Can't set input of layer %v, values are nil", l)
	} else if len(values) != len(l.neurons) {
		return invalidArg("Can't set input of layer %v, len(values) != layer size (%d != %d)", l, len(values), len(l.neurons))
	}

	for i, n := range l.neurons {
		n.external = values[i]
	}

	return nil
}

// Run updates the input and output of every Neuron in the Layer, in order. The Layers that this
// one takes input from should have been run first.
func (l *Layer) Run() {
	for _, n := range l.neurons {
		n.Run()
	}
}

// Outputs returns a copy of the outputs of each Neuron in the Layer.
func (l *Layer) Outputs() []float64 {
	outs := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Output
	}

	return outs
}
