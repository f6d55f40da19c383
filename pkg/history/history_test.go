package history

import (
	"math"
	"sync"
	"testing"
	"time"
)

func baseTime() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func addN(s *Store, name string, n int, interval time.Duration) {
	t := baseTime()
	for i := 0; i < n; i++ {
		s.Add(name, t.Add(time.Duration(i)*interval), float64(i))
	}
}

func TestAddCreatesSeries(t *testing.T) {
	s := New(Config{})
	s.Add("HR", baseTime(), 92)

	w, ok := s.Window("HR")
	if !ok {
		t.Fatal("expected series to exist")
	}
	if w.Len() != 1 || w.Last() != 92 || w.Name != "HR" {
		t.Errorf("Window = %+v, want one reading of 92", w)
	}
	if _, ok := s.Window("SpO2"); ok {
		t.Error("unknown series reported as present")
	}
}

func TestAddDropsNonFiniteAndOutOfOrder(t *testing.T) {
	s := New(Config{})
	t0 := baseTime()
	s.Add("HR", t0.Add(time.Second), 90)
	s.Add("HR", t0, 80)
	s.Add("HR", t0.Add(2*time.Second), math.NaN())
	s.Add("HR", t0.Add(3*time.Second), math.Inf(1))
	s.Add("HR", t0.Add(4*time.Second), 100)

	w, _ := s.Window("HR")
	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2: %v", w.Len(), w.Values)
	}
	if w.Values[0] != 90 || w.Values[1] != 100 {
		t.Errorf("Values = %v, want [90 100]", w.Values)
	}
}

func TestMaxPointsKeepsNewest(t *testing.T) {
	s := New(Config{MaxPoints: 5})
	addN(s, "HR", 12, time.Second)

	w, _ := s.Window("HR")
	if w.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", w.Len())
	}
	if w.Values[0] != 7 || w.Last() != 11 {
		t.Errorf("Values = %v, want 7..11", w.Values)
	}
}

func TestWindowStats(t *testing.T) {
	tests := []struct {
		name                string
		values              []float64
		min, max, avg, last float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{5}, 5, 5, 5, 5},
		{"mixed", []float64{3, -1, 10, 4}, -1, 10, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window{Values: tt.values}
			if w.Min() != tt.min || w.Max() != tt.max || w.Avg() != tt.avg || w.Last() != tt.last {
				t.Errorf("min/max/avg/last = %v/%v/%v/%v, want %v/%v/%v/%v",
					w.Min(), w.Max(), w.Avg(), w.Last(), tt.min, tt.max, tt.avg, tt.last)
			}
		})
	}
}

func TestWindowIsACopy(t *testing.T) {
	s := New(Config{})
	addN(s, "HR", 3, time.Second)

	w, _ := s.Window("HR")
	w.Values[0] = 999
	again, _ := s.Window("HR")
	if again.Values[0] != 0 {
		t.Errorf("store mutated through window: %v", again.Values)
	}
}

func TestSince(t *testing.T) {
	s := New(Config{})
	addN(s, "HR", 10, time.Second)

	w, ok := s.Since("HR", baseTime().Add(7*time.Second))
	if !ok {
		t.Fatal("Since on existing series reported missing")
	}
	if w.Len() != 3 || w.Values[0] != 7 {
		t.Errorf("Since = %v, want [7 8 9]", w.Values)
	}
	if w, _ := s.Since("HR", baseTime().Add(time.Hour)); w.Len() != 0 {
		t.Errorf("Since future = %v, want empty", w.Values)
	}
}

func TestPrune(t *testing.T) {
	s := New(Config{Retention: 5 * time.Second})
	addN(s, "HR", 10, time.Second)
	addN(s, "Temp", 2, time.Second)

	now := baseTime().Add(9 * time.Second)
	removed := s.Prune(now)
	// Cutoff is t+4s; HR keeps 5..9, Temp (0,1) is emptied.
	if removed != 7 {
		t.Errorf("Prune() removed %d, want 7", removed)
	}
	w, _ := s.Window("HR")
	if w.Len() != 5 || w.Values[0] != 5 {
		t.Errorf("HR after prune = %v, want 5..9", w.Values)
	}
	if names := s.Names(); len(names) != 1 || names[0] != "HR" {
		t.Errorf("Names() = %v, want [HR]", names)
	}
	if removed := s.Prune(now); removed != 0 {
		t.Errorf("second Prune() removed %d, want 0", removed)
	}
}

func TestConcurrentAdd(t *testing.T) {
	s := New(Config{MaxPoints: 10000})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Add("HR", baseTime(), float64(i))
				_, _ = s.Window("HR")
			}
		}()
	}
	wg.Wait()

	w, _ := s.Window("HR")
	if w.Len() != 800 {
		t.Errorf("Len() = %d, want 800", w.Len())
	}
}
