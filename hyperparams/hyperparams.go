package hyperparams

// HyperParameter is satisfied by everything in this package
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}
