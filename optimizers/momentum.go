package optimizers

type momentum struct {
	decay float64

	// the last change made to each parameter
	velocity []float64
}

// Momentum returns gradient descent with momentum: each change is the gradient step plus decay
// times the previous change to the same parameter. A single Momentum should only be used for one
// set of parameters, because it keeps the previous changes by index.
func Momentum(decay float64) *momentum {
	return &momentum{decay: decay}
}

func (m *momentum) TypeString() string {
	return "momentum"
}

func (m *momentum) Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) {
	if len(m.velocity) != size {
		m.velocity = make([]float64, size)
	}

	for i := 0; i < size; i++ {
		m.velocity[i] = m.decay*m.velocity[i] - learningRate*grad(i)
		add(i, m.velocity[i])
	}
}
