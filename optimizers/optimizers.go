// Package optimizers provides the update rules used to train the weights and biases around a
// Layer. The Layer itself never changes them; these are for use by whatever is doing the
// training (see cmd/xor for an example).
package optimizers

// Optimizer is an interface
type Optimizer interface {
	// Run is called to suggest changes to each parameter, given:
	// number of parameters, gradient of the cost w.r.t. the parameter at index, function to add
	// to the parameter at index, and a learning-rate
	//
	// number of parameters can be 0
	Run(size int, grad func(int) float64, add func(int, float64), learningRate float64)

	// TypeString returns the string corresponding to the type of the Optimizer.
	// For example: the Optimizer "Adam" should return "adam", or something
	// to that effect.
	TypeString() string
}
