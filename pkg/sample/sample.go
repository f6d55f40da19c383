// Package sample produces synthetic collar vitals for the dashboard. It is a
// stand-in for a real sensor feed: the chart renderer and the stats screen
// only see the Source interface, so a telemetry source can replace the
// generator without touching them.
package sample

import (
	"fmt"
	"math/rand/v2"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
)

// Reading is one labelled value, e.g. "Heart rate 92 bpm".
type Reading struct {
	Label string
	Value float64
	Unit  string
}

// String formats the reading for a readout line.
func (r Reading) String() string {
	if r.Unit == "" {
		return fmt.Sprintf("%s %s", r.Label, chart.FormatValue(r.Value))
	}
	return fmt.Sprintf("%s %s %s", r.Label, chart.FormatValue(r.Value), r.Unit)
}

// Source draws fresh values on every call.
type Source interface {
	NextReading(label, unit string) Reading
	NextSeries(count int) []float64
}

// Metric is the bounded range of one vital sign.
type Metric struct {
	Label string
	Unit  string
	Min   float64
	Max   float64
}

// Validate checks that the range is usable.
func (m Metric) Validate() error {
	if m.Label == "" {
		return fmt.Errorf("sample: metric label is empty")
	}
	if !(m.Min <= m.Max) {
		return fmt.Errorf("sample: metric %q: min %v greater than max %v", m.Label, m.Min, m.Max)
	}
	return nil
}

// Built-in metric profiles.
var (
	Temperature = Metric{Label: "Temperature", Unit: "°C", Min: 37.5, Max: 39.5}
	HeartRate   = Metric{Label: "Heart rate", Unit: "bpm", Min: 60, Max: 140}
	Oxygen      = Metric{Label: "SpO2", Unit: "%", Min: 93, Max: 100}
	Hemoglobin  = Metric{Label: "Hb", Unit: "g/L", Min: 150, Max: 250}
)

// DefaultMetrics returns the built-in profiles in display order.
func DefaultMetrics() []Metric {
	return []Metric{Temperature, HeartRate, Oxygen, Hemoglobin}
}

// Generator draws uniform values in its metric's range.
type Generator struct {
	metric Metric
	rng    *rand.Rand
}

// NewGenerator returns a generator for m. A zero seed picks a random one.
func NewGenerator(m Metric, seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		metric: m,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NextReading draws one value. Empty label or unit fall back to the
// metric's own.
func (g *Generator) NextReading(label, unit string) Reading {
	if label == "" {
		label = g.metric.Label
	}
	if unit == "" {
		unit = g.metric.Unit
	}
	return Reading{Label: label, Value: g.draw(), Unit: unit}
}

// NextSeries draws count values. Non-positive counts yield an empty slice.
func (g *Generator) NextSeries(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = g.draw()
	}
	return out
}

func (g *Generator) draw() float64 {
	return g.metric.Min + g.rng.Float64()*(g.metric.Max-g.metric.Min)
}
