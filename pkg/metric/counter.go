package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// ChoicesName is the name of the counter tracking menu choices.
	ChoicesName = "menunav_choices_total"

	// ActionLabel is the label carrying the dispatched action.
	ActionLabel = "action"
)

// IncrementalCounter counts events partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is an IncrementalCounter backed by a Prometheus counter vector.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series identified by val.
// The number of values must match the labels the counter was created with.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Vec exposes the underlying vector, mostly for testutil assertions.
func (c *Counter) Vec() *prometheus.CounterVec {
	return c.vec
}

// NewCounter creates a counter and registers it with reg.
// It panics if a collector with the same name is already registered.
func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

// NewChoiceCounter creates the counter of dispatched menu choices labeled by action.
func NewChoiceCounter(reg prometheus.Registerer) *Counter {
	return NewCounter(reg, ChoicesName, "Number of menu choices dispatched, by action.", ActionLabel)
}

// Nop returns a counter that discards every increment.
func Nop() IncrementalCounter {
	return nopCounter{}
}

type nopCounter struct{}

func (nopCounter) Increment(...string) {}

// HandlerFor returns an HTTP handler serving the metrics gathered by reg.
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
