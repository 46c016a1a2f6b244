package initializers

import (
	"math"

	al "github.com/sharnoff/actlayer"
	"gonum.org/v1/gonum/floats"
)

type nguyenWidrow struct {
	gen *uniform
}

// NguyenWidrow returns the Nguyen-Widrow Initializer. For a Layer of n Neurons that each have m
// inputs, weights are drawn uniformly from [-0.5, 0.5] and then scaled so that the weights into
// each Neuron have a norm of:
//
//	β = 0.7 * n^(1/m)
//
// Biases are drawn uniformly from [-β, β].
//
// Neurons without inputs are given biases in [-0.5, 0.5].
func NguyenWidrow() *nguyenWidrow {
	return &nguyenWidrow{Uniform()}
}

// Seed makes the Initializer repeatable. See RNG seeding.
func (nw *nguyenWidrow) Seed(seed int64) *nguyenWidrow {
	nw.gen.Seed(seed)
	return nw
}

// Initialize is the implementation of actlayer.Initializer
func (nw *nguyenWidrow) Initialize(l *al.Layer) {
	fixed := l.UseFixedBiasValues()
	for _, n := range l.Neurons() {
		ins := n.Inputs()
		if len(ins) == 0 {
			if !fixed {
				n.Bias = nw.gen.Bounds(-0.5, 0.5).Gen()
			}
			continue
		}

		beta := 0.7 * math.Pow(float64(l.Size()), 1/float64(len(ins)))

		ws := make([]float64, len(ins))
		nw.gen.Bounds(-0.5, 0.5)
		for i := range ws {
			ws[i] = nw.gen.Gen()
		}

		if norm := floats.Norm(ws, 2); norm != 0 {
			floats.Scale(beta/norm, ws)
		}

		for i, s := range ins {
			s.Weight = ws[i]
		}

		if !fixed {
			n.Bias = nw.gen.Bounds(-beta, beta).Gen()
		}
	}
}
