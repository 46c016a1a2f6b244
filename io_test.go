package actlayer

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureRestore(t *testing.T) {
	tests := []struct {
		name   string
		fixed  bool
		biases []float64
	}{
		{"single", false, []float64{0.5}},
		{"fixed", true, []float64{-1, 0, 1e-9, 42}},
		{"trainable", false, []float64{3, -0.25, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := New(linear(1), len(tt.biases))
			l.SetUseFixedBiasValues(tt.fixed)
			for i, n := range l.Neurons() {
				n.Bias = tt.biases[i]
				n.Output = 9
				n.Error = -9
			}

			p := l.Capture()
			if p.UseFixedBiasValues != tt.fixed {
				t.Errorf("captured flag %v, want %v", p.UseFixedBiasValues, tt.fixed)
			}

			r, err := Restore(linear(1), p)
			if err != nil {
				t.Fatalf("Restore returned error: %v", err)
			}

			if r.Size() != l.Size() || r.UseFixedBiasValues() != tt.fixed {
				t.Fatalf("restored %v (fixed: %v), want size %d (fixed: %v)", r, r.UseFixedBiasValues(), l.Size(), tt.fixed)
			}

			for i, n := range r.Neurons() {
				if n.Bias != tt.biases[i] {
					t.Errorf("neuron %d: got bias %v, want %v", i, n.Bias, tt.biases[i])
				}

				if n.Output != 0 || n.Error != 0 {
					t.Errorf("neuron %d: transient state was kept (output %v, error %v)", i, n.Output, n.Error)
				}

				if n.Layer() != r || n.Index() != i {
					t.Errorf("neuron %d: wrong owner", i)
				}
			}
		})
	}
}

func TestCaptureCopies(t *testing.T) {
	l, _ := New(linear(1), 2)
	l.Neuron(0).Bias = 1

	p := l.Capture()
	p.BiasValues[0] = 5

	if l.Neuron(0).Bias != 1 {
		t.Fatalf("changing captured biases changed the layer (bias %v)", l.Neuron(0).Bias)
	}

	r, _ := Restore(linear(1), p)
	p.BiasValues[1] = 5

	if r.Neuron(1).Bias != 0 {
		t.Fatalf("changing persisted biases changed the restored layer (bias %v)", r.Neuron(1).Bias)
	}
}

func TestRestoreInvalid(t *testing.T) {
	tests := []struct {
		name string
		act  Activation
		p    Persisted
	}{
		{"nil biases", linear(1), Persisted{UseFixedBiasValues: true}},
		{"empty biases", linear(1), Persisted{BiasValues: []float64{}}},
		{"nil activation", nil, Persisted{BiasValues: []float64{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Restore(tt.act, tt.p); !isInvalidArg(err) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "layer")

	l, _ := New(linear(1), 3)
	l.SetUseFixedBiasValues(true)
	for i, n := range l.Neurons() {
		n.Bias = float64(i) - 0.5
	}

	if err := l.Save(dir, false); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := l.Save(dir, false); err == nil {
		t.Fatal("expected error saving over existing file without overwrite")
	}

	l.Neuron(0).Bias = 10
	if err := l.Save(dir, true); err != nil {
		t.Fatalf("Save with overwrite returned error: %v", err)
	}

	r, err := Load(dir, linear(1))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := l.Capture()
	got := r.Capture()
	if got.UseFixedBiasValues != want.UseFixedBiasValues || len(got.BiasValues) != len(want.BiasValues) {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}

	for i := range want.BiasValues {
		if got.BiasValues[i] != want.BiasValues[i] {
			t.Errorf("bias %d: got %v, want %v", i, got.BiasValues[i], want.BiasValues[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir, linear(1)); err == nil {
		t.Error("expected error loading from empty directory")
	}

	if err := os.WriteFile(filepath.Join(dir, layerFile), []byte(`{"useFixedBiasValues":true}`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir, linear(1)); !isInvalidArg(err) {
		t.Errorf("expected ErrInvalidArgument for missing biases, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, layerFile), []byte(`{"biasValues": [1,`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir, linear(1)); err == nil {
		t.Error("expected error loading malformed JSON")
	}
}

func TestSaveUnencodableKeepsPrevious(t *testing.T) {
	dir := t.TempDir()

	l, _ := New(linear(1), 2)
	l.Neuron(0).Bias = 0.75
	if err := l.Save(dir, false); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		l.Neuron(1).Bias = bad
		if err := l.Save(dir, true); err == nil {
			t.Fatalf("expected error saving bias %v", bad)
		}

		r, err := Load(dir, linear(1))
		if err != nil {
			t.Fatalf("earlier save was lost after failing to save bias %v: %v", bad, err)
		}

		if got := r.Capture().BiasValues; got[0] != 0.75 || got[1] != 0 {
			t.Errorf("after failing to save bias %v, loaded %v, want [0.75 0]", bad, got)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, layerFile+".tmp")); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind (stat: %v)", err)
	}
}
