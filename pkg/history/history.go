// Package history keeps recent readings per metric in parallel time and
// value slices, so the stats screen can summarize a metric over the last
// few minutes without retaining every refresh.
package history

import (
	"math"
	"sort"
	"sync"
	"time"
)

// Config bounds what the store keeps.
type Config struct {
	// Retention is how long a reading is kept. Zero means 10 minutes.
	Retention time.Duration

	// MaxPoints caps each series. Zero means 600.
	MaxPoints int
}

func (c Config) defaults() Config {
	if c.Retention <= 0 {
		c.Retention = 10 * time.Minute
	}
	if c.MaxPoints <= 0 {
		c.MaxPoints = 600
	}
	return c
}

type series struct {
	times  []time.Time
	values []float64
}

// Window is a copy of one series, safe to read without the store's lock.
type Window struct {
	Name   string
	Times  []time.Time
	Values []float64
}

// Len returns the number of readings.
func (w Window) Len() int { return len(w.Values) }

// Last returns the newest value, or 0 for an empty window.
func (w Window) Last() float64 {
	if len(w.Values) == 0 {
		return 0
	}
	return w.Values[len(w.Values)-1]
}

// Min returns the smallest value, or 0 for an empty window.
func (w Window) Min() float64 {
	if len(w.Values) == 0 {
		return 0
	}
	m := w.Values[0]
	for _, v := range w.Values[1:] {
		m = math.Min(m, v)
	}
	return m
}

// Max returns the largest value, or 0 for an empty window.
func (w Window) Max() float64 {
	if len(w.Values) == 0 {
		return 0
	}
	m := w.Values[0]
	for _, v := range w.Values[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Avg returns the arithmetic mean, or 0 for an empty window.
func (w Window) Avg() float64 {
	if len(w.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w.Values {
		sum += v
	}
	return sum / float64(len(w.Values))
}

// Store holds one series per metric label. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	cfg    Config
	series map[string]*series
}

// New returns an empty store.
func New(cfg Config) *Store {
	return &Store{cfg: cfg.defaults(), series: make(map[string]*series)}
}

// Add appends a reading. Non-finite values are dropped, and so are
// readings older than the series' newest one, which keeps each time axis
// sorted.
func (s *Store) Add(name string, t time.Time, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ser, ok := s.series[name]
	if !ok {
		ser = &series{}
		s.series[name] = ser
	}
	if n := len(ser.times); n > 0 && t.Before(ser.times[n-1]) {
		return
	}
	ser.times = append(ser.times, t)
	ser.values = append(ser.values, v)
	if over := len(ser.values) - s.cfg.MaxPoints; over > 0 {
		ser.times = ser.times[over:]
		ser.values = ser.values[over:]
	}
}

// Window returns a copy of the named series.
func (s *Store) Window(name string) (Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ser, ok := s.series[name]
	if !ok {
		return Window{}, false
	}
	return window(name, ser, 0), true
}

// Since returns the readings at or after t.
func (s *Store) Since(name string, t time.Time) (Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ser, ok := s.series[name]
	if !ok {
		return Window{}, false
	}
	idx := sort.Search(len(ser.times), func(i int) bool {
		return !ser.times[i].Before(t)
	})
	return window(name, ser, idx), true
}

// Names returns the stored series names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.series))
	for n := range s.series {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Prune drops readings older than the retention relative to now and
// returns how many were removed. Emptied series are deleted.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.cfg.Retention)
	removed := 0
	for name, ser := range s.series {
		idx := sort.Search(len(ser.times), func(i int) bool {
			return ser.times[i].After(cutoff)
		})
		if idx == 0 {
			continue
		}
		removed += idx
		if idx == len(ser.times) {
			delete(s.series, name)
			continue
		}
		// Compact so the dropped prefix can be collected.
		ser.times = append([]time.Time(nil), ser.times[idx:]...)
		ser.values = append([]float64(nil), ser.values[idx:]...)
	}
	return removed
}

func window(name string, ser *series, from int) Window {
	return Window{
		Name:   name,
		Times:  append([]time.Time(nil), ser.times[from:]...),
		Values: append([]float64(nil), ser.values[from:]...),
	}
}
