// Package nav owns the navigation stack of the collar dashboard. The
// controller is synchronous: each transition is applied and announced to
// observers before the call returns, so transitions are processed strictly
// in the order they were requested.
package nav

import (
	"fmt"
	"log/slog"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/notify"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// EventKind distinguishes pushes from pops.
type EventKind int

const (
	// Push means a screen was added on top of the stack.
	Push EventKind = iota
	// Pop means the top screen was removed.
	Pop
)

func (k EventKind) String() string {
	if k == Pop {
		return "pop"
	}
	return "push"
}

// Event describes one applied transition.
type Event struct {
	Kind  EventKind
	From  screen.ID
	To    screen.ID
	Depth int // stack depth after the transition
}

// Controller maintains the back-stack of screens. The bottom entry is always
// the start screen and the stack is never empty.
type Controller struct {
	stack     []screen.ID
	observers notify.Observers[Event]
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger logs every transition at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a controller whose stack is [start].
func New(start screen.ID, opts ...Option) (*Controller, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("nav: start screen: %w", err)
	}
	c := &Controller{
		stack:  []screen.ID{start},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NavigateTo pushes id onto the stack. Re-navigating to the current screen
// is allowed and adds a duplicate entry. Ids outside the closed set are
// rejected and leave the stack untouched.
func (c *Controller) NavigateTo(id screen.ID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("nav: navigate to: %w", err)
	}
	from := c.Current()
	c.stack = append(c.stack, id)
	c.announce(Event{Kind: Push, From: from, To: id, Depth: len(c.stack)})
	return nil
}

// NavigateBack pops the top screen when more than one entry remains and
// reports whether it did. On a singleton stack it does nothing and no
// observer is notified.
func (c *Controller) NavigateBack() bool {
	if len(c.stack) <= 1 {
		return false
	}
	from := c.Current()
	c.stack = c.stack[:len(c.stack)-1]
	c.announce(Event{Kind: Pop, From: from, To: c.Current(), Depth: len(c.stack)})
	return true
}

// Current returns the visible screen.
func (c *Controller) Current() screen.ID {
	return c.stack[len(c.stack)-1]
}

// Start returns the bottom of the stack.
func (c *Controller) Start() screen.ID {
	return c.stack[0]
}

// Depth returns the number of stack entries.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// CanGoBack reports whether NavigateBack would pop.
func (c *Controller) CanGoBack() bool {
	return len(c.stack) > 1
}

// Stack returns a copy of the stack, bottom first.
func (c *Controller) Stack() []screen.ID {
	out := make([]screen.ID, len(c.stack))
	copy(out, c.stack)
	return out
}

// Subscribe registers fn to be called after every push and every effective
// pop. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	return c.observers.Subscribe(fn)
}

func (c *Controller) announce(ev Event) {
	c.logger.Debug("navigation",
		"kind", ev.Kind.String(),
		"from", ev.From.String(),
		"to", ev.To.String(),
		"depth", ev.Depth,
	)
	c.observers.Notify(ev)
}
