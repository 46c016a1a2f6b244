package activations

type identity int8

// Identity returns the linear Activation, which passes its input through unchanged.
func Identity() identity {
	return identity(0)
}

func (t identity) TypeString() string {
	return "identity"
}

func (t identity) Activate(in, prev float64) float64 {
	return in
}

func (t identity) Derivative(in, out float64) float64 {
	return 1
}
