// relus.go contains all Activations that are derivative of relu:
// * ReLU
// * Leaky ReLU
// * ELU
// * Softplus (because it's similar)

package activations

import (
	"math"
)

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the standard rectified linear unit.
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Activate(in, prev float64) float64 {
	return math.Max(in, 0)
}

func (t relu) Derivative(in, out float64) float64 {
	if in > 0 {
		return 1
	}
	return 0
}

// ****************************************
// Leaky ReLU
// ****************************************

type lrelu float64

// LeakyReLU returns a standard 'leaky ReLU', with the leaky factor given by the default
// "leaky-relu-alpha". It can be changed with Alpha.
func LeakyReLU() lrelu {
	return lrelu(defaultValue["leaky-relu-alpha"])
}

// Alpha returns a copy of the leaky ReLU with the given leaky factor
func (t lrelu) Alpha(alpha float64) lrelu {
	return lrelu(alpha)
}

func (t lrelu) TypeString() string {
	return "leaky-relu"
}

func (t lrelu) Activate(in, prev float64) float64 {
	if in < 0 {
		return float64(t) * in
	}
	return in
}

func (t lrelu) Derivative(in, out float64) float64 {
	if in < 0 {
		return float64(t)
	}
	return 1
}

// ****************************************
// ELU
// ****************************************

type elu float64

// ELU returns the exponential linear unit, with the factor given by the default "elu-alpha".
// It can be changed with Alpha.
func ELU() elu {
	return elu(defaultValue["elu-alpha"])
}

// Alpha returns a copy of the ELU with the given factor
func (t elu) Alpha(alpha float64) elu {
	return elu(alpha)
}

func (t elu) TypeString() string {
	return "elu"
}

func (t elu) Activate(in, prev float64) float64 {
	if in < 0 {
		return float64(t) * (math.Exp(in) - 1)
	}
	return in
}

func (t elu) Derivative(in, out float64) float64 {
	if in < 0 {
		// alpha * e^in, which is the same as:
		return out + float64(t)
	}
	return 1
}

// ****************************************
// Softplus
// ****************************************

type softplus int8

// Softplus returns the softplus Activation, a smooth approximation of ReLU.
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Activate(in, prev float64) float64 {
	return math.Log1p(math.Exp(in))
}

func (t softplus) Derivative(in, out float64) float64 {
	// the derivative of softplus is the logistic function
	return 0.5 + 0.5*math.Tanh(0.5*in)
}
