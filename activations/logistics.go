package activations

import (
	"math"
)

// ****************************************
// Logistic
// ****************************************

type logistic int8

// Logistic returns the logistic (or sigmoid) Activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Activate(in, prev float64) float64 {
	// the logistic function can be rephrased as:
	return 0.5 + 0.5*math.Tanh(0.5*in)
}

func (t logistic) Derivative(in, out float64) float64 {
	return out * (1 - out)
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns the hyperbolic tangent Activation.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Activate(in, prev float64) float64 {
	return math.Tanh(in)
}

func (t tanh) Derivative(in, out float64) float64 {
	// it's cheaper to multiply it by itself than to use math.Pow()
	return 1 - (out * out)
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign (not to be confused with softplus) returns the Softsign Activation. It is similar in
// shape to Tanh and Logistic.
func Softsign() softsign {
	return softsign(0)
}

func (t softsign) TypeString() string {
	return "softsign"
}

func (t softsign) Activate(in, prev float64) float64 {
	return in / (math.Abs(in) + 1)
}

func (t softsign) Derivative(in, out float64) float64 {
	// 1 / (|in| + 1)^2
	d := math.Abs(in) + 1
	return 1 / (d * d)
}
