package initializers

import (
	"math"

	al "github.com/sharnoff/actlayer"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64

	gen *truncNormal
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling initializer, which has 3 modes and a user-defined
// scaling factor. The three modes can be set by In, Out, and Avg. It defaults to Avg.
//
// Weights are drawn from a normal distribution truncated at 2 standard deviations, with a
// variance of the factor divided by the scale given by the mode. Biases are set to 0.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{defaultVarianceMode, defaultValue["varscl-factor"], TruncNormal()}
}

// Factor sets the scaling factor to be used for the Initializer. The default factor can be set by
// SetDefault("varscl-factor")
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of inputs to each Neuron.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the size of the Layer being initialized, which is the
// number of outputs of the weights leading into it.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the number of inputs to each Neuron and the
// size of the Layer.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

// Seed makes the Initializer repeatable. See RNG seeding.
func (v *varianceScaling) Seed(seed int64) *varianceScaling {
	v.gen.Seed(seed)
	return v
}

// Initialize is the implementation of actlayer.Initializer
func (v *varianceScaling) Initialize(l *al.Layer) {
	fixed := l.UseFixedBiasValues()
	for _, n := range l.Neurons() {
		if !fixed {
			n.Bias = 0
		}

		ins := n.Inputs()
		if len(ins) == 0 {
			continue
		}

		// the weights leading into the Layer have len(ins) inputs and l.Size() outputs
		var scale float64
		if v.mode == "in" {
			scale = float64(len(ins))
		} else if v.mode == "out" {
			scale = float64(l.Size())
		} else { // must be "avg"
			scale = float64(len(ins)+l.Size()) / 2
		}

		v.gen.SD(math.Sqrt(v.factor / scale))
		for _, s := range ins {
			s.Weight = v.gen.Gen()
		}
	}
}

// LeCun returns variance scaling based on the number of inputs, with a factor of 1.
func LeCun() *varianceScaling {
	return VarianceScaling().In().Factor(1)
}

// He returns variance scaling based on the number of inputs, with a factor of 2.
func He() *varianceScaling {
	return VarianceScaling().In().Factor(2)
}

// Xavier returns variance scaling based on the average of the numbers of inputs and outputs, with
// a factor of 1.
func Xavier() *varianceScaling {
	return VarianceScaling().Avg().Factor(1)
}

// Glorot is a proxy for Xavier
func Glorot() *varianceScaling {
	return Xavier()
}
