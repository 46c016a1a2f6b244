package actlayer

// Synapse is a weighted connection from a Neuron in one Layer to a Neuron in another.
type Synapse struct {
	Weight float64

	source, target *Neuron
}

// Source returns the Neuron whose output is passed through the Synapse.
func (s *Synapse) Source() *Neuron {
	return s.source
}

// Target returns the Neuron that receives the output of the Synapse.
func (s *Synapse) Target() *Neuron {
	return s.target
}

// Connector is the set of Synapses between two Layers.
type Connector struct {
	source, target *Layer

	// stored such that the Synapse from source neuron s to target neuron t is at index
	// t*source.Size() + s
	synapses []*Synapse
}

// Connect fully connects two Layers, so that every Neuron in source outputs to every Neuron in
// target. All weights start at 0; they are expected to be set by the Initializer of target.
//
// Connect returns an error wrapping ErrInvalidArgument if either Layer is nil, or if they are the
// same Layer.
func Connect(source, target *Layer) (*Connector, error) {
	if source == nil {
		return nil, invalidArg("Can't connect layers, source is nil")
	} else if target == nil {
		return nil, invalidArg("Can't connect layers, target is nil")
	} else if source == target {
		return nil, invalidArg("Can't connect layer %v to itself", source)
	}

	c := &Connector{
		source:   source,
		target:   target,
		synapses: make([]*Synapse, 0, source.Size()*target.Size()),
	}

	for _, t := range target.neurons {
		for _, s := range source.neurons {
			syn := &Synapse{source: s, target: t}
			s.outputs = append(s.outputs, syn)
			t.inputs = append(t.inputs, syn)
			c.synapses = append(c.synapses, syn)
		}
	}

	return c, nil
}

// Source returns the Layer that the Connector takes input from
func (c *Connector) Source() *Layer {
	return c.source
}

// Target returns the Layer that the Connector outputs to
func (c *Connector) Target() *Layer {
	return c.target
}

// Synapses returns a copy of the list of Synapses in the Connector, grouped by target Neuron.
func (c *Connector) Synapses() []*Synapse {
	ss := make([]*Synapse, len(c.synapses))
	copy(ss, c.synapses)
	return ss
}

// Synapse returns the Synapse from the source Neuron at index s to the target Neuron at index t.
// Index-out-of-bounds panics are allowed through.
func (c *Connector) Synapse(s, t int) *Synapse {
	return c.synapses[t*c.source.Size()+s]
}

// Weights returns a copy of the weights of the Connector, where Weights()[t][s] is the weight from
// source Neuron s to target Neuron t.
func (c *Connector) Weights() [][]float64 {
	n := c.source.Size()
	ws := make([][]float64, c.target.Size())
	for t := range ws {
		ws[t] = make([]float64, n)
		for s := range ws[t] {
			ws[t][s] = c.synapses[t*n+s].Weight
		}
	}

	return ws
}
