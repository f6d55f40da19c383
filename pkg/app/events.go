// Package app is the root bubbletea model of collar-pulse. It owns the
// navigation controller, the screen views and the chrome around them (top
// bar, breadcrumb, key help) and routes every message to the current view.
package app

import "time"

// TickEvent is sent periodically to refresh the current view.
type TickEvent struct {
	Time time.Time
}
