package sample

import (
	"time"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/history"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/notify"
)

// Snapshot is the state of one metric after a refresh.
type Snapshot struct {
	Metric  Metric
	Reading Reading
	Series  []float64
}

// Feed groups one source per metric and holds the latest draw. It is the
// stats screen's view model: Refresh replaces every snapshot and notifies
// subscribers.
type Feed struct {
	metrics   []Metric
	sources   []Source
	snapshots []Snapshot
	observers notify.Observers[[]Snapshot]

	history *history.Store
	now     func() time.Time
}

// NewFeed builds a generator-backed feed. Each metric gets its own
// generator; a non-zero seed makes the whole feed reproducible.
func NewFeed(metrics []Metric, seed uint64) *Feed {
	sources := make([]Source, len(metrics))
	for i, m := range metrics {
		s := seed
		if s != 0 {
			s += uint64(i)
		}
		sources[i] = NewGenerator(m, s)
	}
	return NewFeedFromSources(metrics, sources)
}

// NewFeedFromSources pairs metrics with caller-supplied sources, e.g. a
// real sensor adapter. metrics and sources must have equal length.
func NewFeedFromSources(metrics []Metric, sources []Source) *Feed {
	if len(sources) < len(metrics) {
		metrics = metrics[:len(sources)]
	}
	return &Feed{
		metrics: append([]Metric(nil), metrics...),
		sources: sources[:len(metrics)],
	}
}

// Refresh redraws a reading and a series of length n for every metric.
func (f *Feed) Refresh(n int) []Snapshot {
	snaps := make([]Snapshot, len(f.metrics))
	for i, m := range f.metrics {
		snaps[i] = Snapshot{
			Metric:  m,
			Reading: f.sources[i].NextReading(m.Label, m.Unit),
			Series:  f.sources[i].NextSeries(n),
		}
	}
	f.snapshots = snaps
	if f.history != nil {
		at := f.now()
		for _, sn := range snaps {
			f.history.Add(sn.Metric.Label, at, sn.Reading.Value)
		}
		f.history.Prune(at)
	}
	f.observers.Notify(f.Snapshots())
	return f.Snapshots()
}

// Snapshots returns a copy of the latest draw; nil before the first Refresh.
func (f *Feed) Snapshots() []Snapshot {
	if f.snapshots == nil {
		return nil
	}
	out := make([]Snapshot, len(f.snapshots))
	copy(out, f.snapshots)
	return out
}

// Metrics returns the feed's metric profiles.
func (f *Feed) Metrics() []Metric {
	return append([]Metric(nil), f.metrics...)
}

// RecordTo makes every Refresh append its readings to h, stamped by now.
// A nil now means time.Now.
func (f *Feed) RecordTo(h *history.Store, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.history, f.now = h, now
}

// History returns the store set by RecordTo, or nil.
func (f *Feed) History() *history.Store { return f.history }

// Subscribe registers fn to run after every Refresh.
func (f *Feed) Subscribe(fn func([]Snapshot)) (unsubscribe func()) {
	return f.observers.Subscribe(fn)
}
