// Package initializers provides the Initializers that set the biases of a Layer and the weights
// leading into it before training. Most draw from an RNG, which can be seeded to make the results
// repeatable:
//
//	u := initializers.Uniform().Bounds(-0.5, 0.5)
//	u.Seed(1)
//	l.SetInitializer(initializers.Random(u))
//
// Biases of Layers that use fixed bias values are left as they are. Default values can be changed
// with SetDefault.
package initializers
