package initializers

import (
	"math"
	"testing"

	al "github.com/sharnoff/actlayer"
	"github.com/sharnoff/actlayer/activations"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// pair returns a 3 neuron Layer, fully connected to a 4 neuron Layer
func pair(t *testing.T) (*al.Layer, *al.Layer) {
	t.Helper()

	in, err := al.New(activations.Identity(), 3)
	if err != nil {
		t.Fatal(err)
	}

	hl, err := al.New(activations.Tanh(), 4)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = al.Connect(in, hl); err != nil {
		t.Fatal(err)
	}

	return in, hl
}

func inWeights(n *al.Neuron) []float64 {
	ins := n.Inputs()
	ws := make([]float64, len(ins))
	for i, s := range ins {
		ws[i] = s.Weight
	}
	return ws
}

func TestUniform(t *testing.T) {
	u := Uniform().Bounds(2, -3)
	u.Seed(7)

	for i := 0; i < 1000; i++ {
		if v := u.Gen(); v < -3 || v >= 2 {
			t.Fatalf("value %v outside of [-3, 2)", v)
		}
	}
}

func TestTruncNormal(t *testing.T) {
	g := TruncNormal().Trunc(1)
	g.Mean(5).SD(0.5)
	g.Seed(3)

	for i := 0; i < 1000; i++ {
		if v := g.Gen(); v < 4.5 || v > 5.5 {
			t.Fatalf("value %v outside of one standard deviation", v)
		}
	}
}

func TestSeedRepeatable(t *testing.T) {
	a, b := Normal(), Normal()
	a.Seed(11)
	b.Seed(11)

	for i := 0; i < 10; i++ {
		if x, y := a.Gen(), b.Gen(); x != y {
			t.Fatalf("generation %d: %v != %v", i, x, y)
		}
	}
}

func TestConstant(t *testing.T) {
	_, hl := pair(t)

	hl.SetInitializer(Constant(0.25))
	hl.Initialize()

	for _, n := range hl.Neurons() {
		if n.Bias != 0.25 {
			t.Errorf("neuron %d: bias %v", n.Index(), n.Bias)
		}

		for _, w := range inWeights(n) {
			if w != 0.25 {
				t.Errorf("neuron %d: weight %v", n.Index(), w)
			}
		}
	}

	hl.SetInitializer(Zero())
	hl.Initialize()

	for _, n := range hl.Neurons() {
		if n.Bias != 0 || floats.Sum(inWeights(n)) != 0 {
			t.Errorf("neuron %d not zeroed", n.Index())
		}
	}
}

func TestFixedBiasesUntouched(t *testing.T) {
	u := Uniform()
	u.Seed(1)

	inits := map[string]al.Initializer{
		"random":        Random(u),
		"constant":      Constant(3),
		"variance":      He().Seed(1),
		"nguyen-widrow": NguyenWidrow().Seed(1),
	}

	for name, init := range inits {
		_, hl := pair(t)
		hl.SetUseFixedBiasValues(true)
		for _, n := range hl.Neurons() {
			n.Bias = -7
		}

		hl.SetInitializer(init)
		hl.Initialize()

		for _, n := range hl.Neurons() {
			if n.Bias != -7 {
				t.Errorf("%s: neuron %d bias changed to %v", name, n.Index(), n.Bias)
			}

			if floats.Sum(inWeights(n)) == 0 && name != "constant" {
				t.Errorf("%s: neuron %d weights were not set", name, n.Index())
			}
		}
	}
}

func TestRandomReinitializes(t *testing.T) {
	_, hl := pair(t)

	u := Uniform()
	u.Seed(5)
	hl.SetInitializer(Random(u))

	hl.Initialize()
	first := hl.Capture().BiasValues

	hl.Initialize()
	second := hl.Capture().BiasValues

	if floats.Equal(first, second) {
		t.Errorf("second Initialize gave the same biases: %v", first)
	}
}

func TestNguyenWidrow(t *testing.T) {
	in, hl := pair(t)

	nw := NguyenWidrow().Seed(42)
	hl.SetInitializer(nw)
	hl.Initialize()

	// 4 neurons, 3 inputs each
	beta := 0.7 * math.Pow(4, 1.0/3)
	for _, n := range hl.Neurons() {
		if norm := floats.Norm(inWeights(n), 2); !scalar.EqualWithinAbs(norm, beta, 1e-9) {
			t.Errorf("neuron %d: weight norm %v, want %v", n.Index(), norm, beta)
		}

		if math.Abs(n.Bias) > beta {
			t.Errorf("neuron %d: bias %v outside of [-%v, %v]", n.Index(), n.Bias, beta, beta)
		}
	}

	// neurons without inputs only get biases
	in.SetInitializer(nw)
	in.Initialize()
	for _, n := range in.Neurons() {
		if math.Abs(n.Bias) > 0.5 {
			t.Errorf("input neuron %d: bias %v outside of [-0.5, 0.5]", n.Index(), n.Bias)
		}
	}
}

func TestVarianceScaling(t *testing.T) {
	_, hl := pair(t)
	for _, n := range hl.Neurons() {
		n.Bias = 1
	}

	hl.SetInitializer(LeCun().Seed(9))
	hl.Initialize()

	// truncated at 2 standard deviations of sqrt(1/3)
	limit := 2 * math.Sqrt(1.0/3)
	for _, n := range hl.Neurons() {
		if n.Bias != 0 {
			t.Errorf("neuron %d: bias %v, want 0", n.Index(), n.Bias)
		}

		for _, w := range inWeights(n) {
			if math.Abs(w) > limit {
				t.Errorf("neuron %d: weight %v beyond %v", n.Index(), w, limit)
			}
		}
	}
}

// weightSD returns the sample standard deviation of every weight leading into the 40 neuron Layer
// of a 10 -> 40 pair, after initializing it with init
func weightSD(t *testing.T, init al.Initializer) float64 {
	t.Helper()

	in, err := al.New(activations.Identity(), 10)
	if err != nil {
		t.Fatal(err)
	}

	out, err := al.New(activations.Tanh(), 40)
	if err != nil {
		t.Fatal(err)
	}

	c, err := al.Connect(in, out)
	if err != nil {
		t.Fatal(err)
	}

	out.SetInitializer(init)
	out.Initialize()

	syns := c.Synapses()
	ws := make([]float64, len(syns))
	for i, s := range syns {
		ws[i] = s.Weight
	}

	return stat.StdDev(ws, nil)
}

func TestVarianceScalingModes(t *testing.T) {
	// a normal distribution truncated at 2 standard deviations keeps ~0.88 of its spread
	const truncRatio = 0.8796

	tests := []struct {
		name  string
		init  al.Initializer
		scale float64
	}{
		{"in", VarianceScaling().In().Seed(1), 10},
		{"out", VarianceScaling().Out().Seed(2), 40},
		{"avg", VarianceScaling().Avg().Seed(3), 25},
		{"xavier", Xavier().Seed(4), 25},
		{"he", He().Seed(5), 10.0 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.Sqrt(1/tt.scale) * truncRatio
			got := weightSD(t, tt.init)

			if math.Abs(got-want) > 0.15*want {
				t.Errorf("weight standard deviation %v, want about %v", got, want)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	old := defaultValue["uniform-upper"]
	defer func() { defaultValue["uniform-upper"] = old }()

	if err := SetDefault("uniform-upper", 0.5); err != nil {
		t.Fatal(err)
	}

	if u := Uniform(); u.upper != 0.5 {
		t.Errorf("Uniform upper bound %v, want 0.5", u.upper)
	}

	if err := SetDefault("nope", 1); err == nil {
		t.Error("expected error for unknown name")
	}

	if err := SetDefault("normal-sd", math.Inf(1)); err == nil {
		t.Error("expected error for Inf")
	}
}
