package hyperparams

import (
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant(0.3)
	for _, iter := range []int{0, 1, 1000} {
		if v := c.Value(iter); v != 0.3 {
			t.Errorf("Value(%d) = %v, want 0.3", iter, v)
		}
	}
}

func TestStep(t *testing.T) {
	var s HyperParameter = Step(1).Add(100, 0.1).Add(10, 0.5)

	tests := []struct {
		iter int
		want float64
	}{
		{0, 1},
		{9, 1},
		{10, 0.5},
		{99, 0.5},
		{100, 0.1},
		{5000, 0.1},
	}

	for _, tt := range tests {
		if v := s.Value(tt.iter); v != tt.want {
			t.Errorf("Value(%d) = %v, want %v", tt.iter, v, tt.want)
		}
	}
}
