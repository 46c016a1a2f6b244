// Package actlayer provides the activation layer of a feed-forward neural network trained by
// backpropagation. A Layer holds a fixed number of Neurons, each with its own bias, and one
// Activation that they all share.
//
// # Creating Layers
//
// Layers are made with New, given the Activation and the number of Neurons:
//
//	in, err := al.New(activations.Identity(), 2)
//	hl, err := al.New(activations.Logistic(), 3)
//
// For brevity, actlayer is abbreviated 'al'. The Activations can all be found in the subpackage
// "activations", and can also be retrieved by name with Lookup once that package is imported.
//
// Layers are joined with Connect, which connects every Neuron in one Layer to every Neuron in the
// next. Weights and biases are set by an Initializer (see the subpackage "initializers"):
//
//	if _, err = al.Connect(in, hl); err != nil {
//		return err
//	}
//	hl.SetInitializer(initializers.NguyenWidrow())
//	hl.Initialize()
//
// # Training
//
// A single training sample is run forward with SetInput and Run, layer by layer. Errors are then
// set on the output Layer with SetErrors, which returns the sum of the squared errors, and are
// propagated backwards through the hidden Layers with EvaluateErrors, starting from the one
// closest to the output.
//
// The Layer does not change any weights or biases itself. UseFixedBiasValues tells whatever is
// doing the training whether the biases of a Layer should be left alone. An example can be found
// in cmd/xor.
//
// # Saving and Loading
//
// The state of a Layer is its biases and whether or not they are fixed:
//
//	p := l.Capture()
//	l, err = al.Restore(activations.Logistic(), p)
//
// Save and Load do the same with a JSON file inside a directory. The Activation is not saved.
package actlayer
