package actlayer

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// layerFile is the name of the file written by Save, inside the given directory
const layerFile string = "layer.json"

// Persisted is the saved state of a Layer: whether or not it uses fixed bias values, and the bias
// of each Neuron, in order. Nothing else about the Neurons is kept; their inputs, outputs and
// errors are recalculated on every pass.
//
// The number of Neurons is given by the length of BiasValues.
type Persisted struct {
	UseFixedBiasValues bool      `json:"useFixedBiasValues"`
	BiasValues         []float64 `json:"biasValues"`
}

// Capture returns the state of the Layer, to be given to Restore. The returned BiasValues is a
// new slice.
func (l *Layer) Capture() Persisted {
	p := Persisted{
		UseFixedBiasValues: l.useFixedBiasValues,
		BiasValues:         make([]float64, len(l.neurons)),
	}

	for i, n := range l.neurons {
		p.BiasValues[i] = n.Bias
	}

	return p
}

// Restore recreates a Layer from the state given by Capture, with one Neuron for each value in
// p.BiasValues. No Initializer is attached to the returned Layer.
//
// Restore returns an error wrapping ErrInvalidArgument if act is nil or p.BiasValues is nil or
// empty.
func Restore(act Activation, p Persisted) (*Layer, error) {
	if act == nil {
		return nil, invalidArg("Can't restore layer, Activation is nil")
	} else if p.BiasValues == nil {
		return nil, invalidArg("Can't restore layer, bias values are nil")
	} else if len(p.BiasValues) == 0 {
		return nil, invalidArg("Can't restore layer, no bias values given")
	}

	l := newLayer(act, len(p.BiasValues))
	l.useFixedBiasValues = p.UseFixedBiasValues
	for i, b := range p.BiasValues {
		l.neurons[i].Bias = b
	}

	return l, nil
}

// Save writes the state of the Layer (given by Capture) to a file inside dirPath, creating the
// directory (with permissions 0700) if it doesn't exist.
//
// If the file already exists and overwrite is false, Save will return error.
func (l *Layer) Save(dirPath string, overwrite bool) error {
	path := filepath.Join(dirPath, layerFile)

	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save layer, %q already exists, and overwrite is not enabled", path)
	}

	// an earlier save is only replaced once the new one is fully encoded and written
	b, err := json.Marshal(l.Capture())
	if err != nil {
		return errors.Wrapf(err, "Can't save layer, failed to encode JSON for %q", path)
	}

	if err = os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Can't save layer, couldn't make directory %q", dirPath)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, append(b, '\n'), 0600); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "Can't save layer, couldn't write file %q", tmp)
	}

	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "Can't save layer, couldn't move %q to %q", tmp, path)
	}

	return nil
}

// Load reads a Layer previously written by Save to dirPath, using the given Activation. The
// Activation isn't part of the saved state, so it must be the same one that was used before.
func Load(dirPath string, act Activation) (*Layer, error) {
	path := filepath.Join(dirPath, layerFile)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load layer, couldn't open file %q", path)
	}

	defer f.Close()

	var p Persisted
	dec := json.NewDecoder(f)
	if err = dec.Decode(&p); err != nil {
		return nil, errors.Wrapf(err, "Can't load layer, failed to decode JSON from file %q", path)
	}

	l, err := Restore(act, p)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load layer from %q", path)
	}

	return l, nil
}
