// Package activations provides the Activations that a Layer can be made with. Each is registered
// with the main package under its TypeString when this package is imported, so that it can also
// be found with Lookup:
//
//	act, err := al.Lookup("logistic")
//
// Some have parameters, which default to values that can be changed with SetDefault.
package activations
