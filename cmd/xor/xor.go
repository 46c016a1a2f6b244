package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	al "github.com/sharnoff/actlayer"
	"github.com/sharnoff/actlayer/activations"
	"github.com/sharnoff/actlayer/hyperparams"
	"github.com/sharnoff/actlayer/initializers"
	"github.com/sharnoff/actlayer/optimizers"
)

var (
	maxEpochs  = flag.Int("epochs", 5000, "number of passes through the dataset")
	statusFreq = flag.Int("status", 500, "number of epochs between printing the cost")
	seed       = flag.Int64("seed", 1, "seed for the initializers")
	hiddenAct  = flag.String("activation", "logistic", "name of the activation for the hidden layer")
	hiddenSize = flag.Int("hidden", 3, "number of neurons in the hidden layer")
	path       = flag.String("save", "xor save", "directory to save the output layer to")
)

// checkFlags returns an error if any of the flags have values that training can't use
func checkFlags() error {
	if *maxEpochs < 1 {
		return errors.Errorf("-epochs must be >= 1 (%d)", *maxEpochs)
	} else if *statusFreq < 1 {
		return errors.Errorf("-status must be >= 1 (%d)", *statusFreq)
	} else if *hiddenSize < 1 {
		return errors.Errorf("-hidden must be >= 1 (%d)", *hiddenSize)
	}

	return nil
}

type network struct {
	in, hl, out *al.Layer
	conns       []*al.Connector
	opt         optimizers.Optimizer
}

func setup() (*network, error) {
	act, err := al.Lookup(*hiddenAct)
	if err != nil {
		return nil, err
	}

	net := &network{opt: optimizers.GradientDescent()}

	if net.in, err = al.New(activations.Identity(), 2); err != nil {
		return nil, err
	}
	// inputs are passed through as they are
	net.in.SetUseFixedBiasValues(true)

	if net.hl, err = al.New(act, *hiddenSize); err != nil {
		return nil, err
	}

	if net.out, err = al.New(activations.Logistic(), 1); err != nil {
		return nil, err
	}

	for _, pair := range [][2]*al.Layer{{net.in, net.hl}, {net.hl, net.out}} {
		c, err := al.Connect(pair[0], pair[1])
		if err != nil {
			return nil, err
		}

		net.conns = append(net.conns, c)
	}

	net.hl.SetInitializer(initializers.NguyenWidrow().Seed(*seed))
	net.out.SetInitializer(initializers.Xavier().Seed(*seed + 1))

	for _, l := range []*al.Layer{net.in, net.hl, net.out} {
		l.Initialize()
	}

	return net, nil
}

// run returns the summed squared error of the sample. If learningRate is 0, the network is left
// unchanged
func (net *network) run(inputs, targets []float64, learningRate float64) (float64, error) {
	if err := net.in.SetInput(inputs); err != nil {
		return 0, err
	}

	net.in.Run()
	net.hl.Run()
	net.out.Run()

	sse, err := net.out.SetErrors(targets)
	if err != nil || learningRate == 0 {
		return sse, err
	}

	// SetErrors only gives the raw difference; the output layer needs its own derivative
	// applied before it's passed back
	for _, n := range net.out.Neurons() {
		n.Error *= net.out.Derivative(n.Input, n.Output)
	}

	net.hl.EvaluateErrors()

	// errors are (target - output), so the gradient of the cost is their negative
	for _, c := range net.conns {
		syns := c.Synapses()
		grad := func(i int) float64 {
			return -syns[i].Target().Error * syns[i].Source().Output
		}
		add := func(i int, d float64) {
			syns[i].Weight += d
		}

		net.opt.Run(len(syns), grad, add, learningRate)
	}

	for _, l := range []*al.Layer{net.hl, net.out} {
		if l.UseFixedBiasValues() {
			continue
		}

		ns := l.Neurons()
		grad := func(i int) float64 {
			return -ns[i].Error
		}
		add := func(i int, d float64) {
			ns[i].Bias += d
		}

		net.opt.Run(len(ns), grad, add, learningRate)
	}

	return sse, nil
}

func train(net *network, dataset [][][]float64, rate hyperparams.HyperParameter) error {
	fmt.Println("Starting training...")
	fmt.Println("Epoch, Cost")

	for epoch := 0; epoch < *maxEpochs; epoch++ {
		var cost float64
		for _, d := range dataset {
			sse, err := net.run(d[0], d[1], rate.Value(epoch))
			if err != nil {
				return err
			}

			cost += sse
		}

		if epoch%*statusFreq == 0 {
			fmt.Printf("%d, %v\n", epoch, cost/float64(len(dataset)))
		}
	}

	fmt.Println("Done training!")
	return nil
}

func test(net *network, dataset [][][]float64) error {
	fmt.Println("Testing...")
	for _, d := range dataset {
		if _, err := net.run(d[0], d[1], 0); err != nil {
			return err
		}

		fmt.Println(d[0], d[1], net.out.Outputs())
	}

	return nil
}

func main() {
	flag.Parse()

	if err := checkFlags(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	dataset := [][][]float64{
		{{-1, -1}, {0}},
		{{-1, 1}, {1}},
		{{1, -1}, {1}},
		{{1, 1}, {0}},
	}

	fmt.Println("Setting up network...")
	net, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Done!")

	rate := hyperparams.Step(1).Add(*maxEpochs/2, 0.5)
	if err = train(net, dataset, rate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = test(net, dataset); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Saving...")
	if err = net.out.Save(*path, true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Loading...")
	loaded, err := al.Load(*path, net.out.Activation())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Biases before:", net.out.Capture().BiasValues, "after:", loaded.Capture().BiasValues)
}
