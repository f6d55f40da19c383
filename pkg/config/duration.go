package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a config interval such as refresh_interval = "2s". A bare
// number is read as seconds, so refresh_interval = "5" means five seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := parseInterval(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// parseInterval accepts "" (zero), Go duration syntax or whole seconds.
// Negative intervals are rejected.
func parseInterval(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	var v time.Duration
	if secs, err := strconv.ParseUint(s, 10, 32); err == nil {
		v = time.Duration(secs) * time.Second
	} else if v, err = time.ParseDuration(s); err != nil {
		return 0, fmt.Errorf("config: interval %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("config: interval %q is negative", s)
	}
	return v, nil
}
