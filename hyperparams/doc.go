// Package hyperparams provides values that change (or don't) over the course of training, such as
// learning rates. Each has the method:
//
//	Value(iter int) float64
//
// which gives its value at the given iteration.
package hyperparams
