package actlayer

import (
	"fmt"
)

// Neuron is a single unit of a Layer. The exported fields are the state that training works with:
// they may be changed freely by Initializers and trainers.
type Neuron struct {
	Bias float64

	// Input is the sum of the weighted outputs leading into the Neuron, its bias, and any
	// external input, as of the last Run.
	Input float64

	// Output is the result of the Layer's Activation on Input, as of the last Run.
	Output float64

	// Error is the error of the Neuron for the current sample, set either by the Layer's
	// SetErrors or by EvaluateError.
	Error float64

	// The Layer that the Neuron belongs to. The Layer owns the Neuron, not the other way around.
	layer *Layer
	index int

	// external input, given by *Layer.SetInput()
	external float64

	inputs, outputs []*Synapse
}

// String returns a short description of the Neuron, in the form:
//
//	<index: %d, layer: %v>
func (n *Neuron) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<index: %d, layer: %v>", n.index, n.layer)
}

// Layer returns the Layer that the Neuron belongs to.
func (n *Neuron) Layer() *Layer {
	return n.layer
}

// Index returns the position of the Neuron within its Layer.
func (n *Neuron) Index() int {
	return n.index
}

// Inputs returns a copy of the list of Synapses leading into the Neuron
func (n *Neuron) Inputs() []*Synapse {
	ss := make([]*Synapse, len(n.inputs))
	copy(ss, n.inputs)
	return ss
}

// Outputs returns a copy of the list of Synapses leading out of the Neuron
func (n *Neuron) Outputs() []*Synapse {
	ss := make([]*Synapse, len(n.outputs))
	copy(ss, n.outputs)
	return ss
}

// Run sets the input of the Neuron from its bias, external input and the weighted outputs of
// the Neurons leading into it, then sets its output from that.
func (n *Neuron) Run() {
	sum := n.Bias + n.external
	for _, s := range n.inputs {
		sum += s.Weight * s.source.Output
	}

	n.Input = sum
	n.Output = n.layer.Activate(sum, n.Output)
}

// EvaluateError sets the error of the Neuron from the errors of the Neurons that it outputs to,
// each weighted by the Synapse between them, multiplied by the derivative of the Layer's
// Activation at the Neuron's current input and output.
//
// A Neuron with no outputs ends up with an error of 0.
func (n *Neuron) EvaluateError() {
	var sum float64
	for _, s := range n.outputs {
		sum += s.Weight * s.target.Error
	}

	n.Error = sum * n.layer.Derivative(n.Input, n.Output)
}
