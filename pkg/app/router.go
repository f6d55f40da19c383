package app

import (
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// router records the screens the controller moved to. Model values are
// copied on every Update, so the subscription writes here and Update
// drains it once the message is handled.
type router struct {
	entered []screen.ID
}

func newRouter(c *nav.Controller) *router {
	r := &router{}
	c.Subscribe(r.observe)
	return r
}

func (r *router) observe(ev nav.Event) {
	r.entered = append(r.entered, ev.To)
}

// drain returns and clears the pending screens.
func (r *router) drain() []screen.ID {
	out := r.entered
	r.entered = nil
	return out
}
