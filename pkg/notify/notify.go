// Package notify provides the state-changed subscription list shared by the
// navigation controller and the stateful view models. Delivery is
// synchronous: Notify returns only after every observer has run, in the
// order they subscribed.
package notify

// Observers is an ordered list of callbacks. The zero value is ready to use.
// It is not safe for concurrent use; all calls happen on the update loop.
type Observers[T any] struct {
	next  int
	order []int
	fns   map[int]func(T)
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (o *Observers[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	if o.fns == nil {
		o.fns = make(map[int]func(T))
	}
	id := o.next
	o.next++
	o.fns[id] = fn
	o.order = append(o.order, id)

	return func() {
		if _, ok := o.fns[id]; !ok {
			return
		}
		delete(o.fns, id)
		for i, v := range o.order {
			if v == id {
				o.order = append(o.order[:i], o.order[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every observer with ev. Observers added during delivery are
// not called for this event.
func (o *Observers[T]) Notify(ev T) {
	ids := make([]int, len(o.order))
	copy(ids, o.order)
	for _, id := range ids {
		if fn, ok := o.fns[id]; ok {
			fn(ev)
		}
	}
}

// Len returns the number of active observers.
func (o *Observers[T]) Len() int {
	return len(o.order)
}
