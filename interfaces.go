package actlayer

// Activation is the function shared by every Neuron in a Layer. Implementations are found in the
// subpackage "activations".
type Activation interface {
	// TypeString returns the string corresponding to the type of the Activation.
	// For example: the Activation "Identity" should return "identity", or something
	// to that effect. It is the name used by Register and Lookup.
	TypeString() string

	// Activate maps the accumulated input of a Neuron (weighted sum plus bias) to its output.
	//
	// previousOutput is the output of the same Neuron from the last forward pass, for functions
	// that depend on time. Stateless functions ignore it.
	//
	// Must not have side effects.
	Activate(input, previousOutput float64) float64

	// Derivative returns the derivative of Activate w.r.t. its input, at the point given either
	// by the input or by the output that Activate already produced from it. Implementations may
	// use whichever of the two is cheaper.
	//
	// This is not checked by the Layer: an Activation whose Derivative doesn't match Activate
	// will quietly train incorrectly.
	Derivative(input, output float64) float64
}

// Initializer dictates how the parameters of a Layer are (re)set before training. It is free to
// change the bias of any Neuron in the Layer and the weights of any Synapse leading into it.
// Implementations are found in the subpackage "initializers".
//
// Initialize may be called many times on the same Layer, and should leave it ready for a new
// training run each time.
type Initializer interface {
	Initialize(*Layer)
}
