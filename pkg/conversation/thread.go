package conversation

import (
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/notify"
)

// ThreadState is sent to subscribers after every change.
type ThreadState struct {
	Selected int
	Expanded map[int]bool
}

// Thread is the view model behind the message list: a selection cursor and
// per-message expansion. A card may only be expanded when its body does not
// fit on one line at the current width.
type Thread struct {
	messages  Conversation
	selected  int
	expanded  map[int]bool
	width     int
	observers notify.Observers[ThreadState]
}

// NewThread returns a thread over c with the first message selected.
func NewThread(c Conversation) *Thread {
	return &Thread{messages: c, expanded: make(map[int]bool)}
}

// Messages returns the thread's conversation.
func (t *Thread) Messages() Conversation {
	return t.messages
}

// Selected returns the selected index, or -1 for an empty thread.
func (t *Thread) Selected() int {
	if len(t.messages) == 0 {
		return -1
	}
	return t.selected
}

// SetWidth records the body width used to decide whether a card overflows.
// Cards that now fit on one line collapse.
func (t *Thread) SetWidth(w int) {
	if w == t.width {
		return
	}
	t.width = w
	changed := false
	for i := range t.expanded {
		if !t.NeedsExpansion(i) {
			delete(t.expanded, i)
			changed = true
		}
	}
	if changed {
		t.announce()
	}
}

// NeedsExpansion reports whether message i is wider than one line.
func (t *Thread) NeedsExpansion(i int) bool {
	if i < 0 || i >= len(t.messages) || t.width <= 0 {
		return false
	}
	return ansi.StringWidth(Quote(t.messages[i].Body)) > t.width
}

// Expanded reports whether message i is shown in full.
func (t *Thread) Expanded(i int) bool {
	return t.expanded[i]
}

// Toggle flips message i. Expanding is refused for messages that already fit;
// collapsing always succeeds. It reports whether anything changed.
func (t *Thread) Toggle(i int) bool {
	if i < 0 || i >= len(t.messages) {
		return false
	}
	if t.expanded[i] {
		delete(t.expanded, i)
		t.announce()
		return true
	}
	if !t.NeedsExpansion(i) {
		return false
	}
	t.expanded[i] = true
	t.announce()
	return true
}

// Select moves the cursor by delta, stopping at either end.
func (t *Thread) Select(delta int) {
	if len(t.messages) == 0 {
		return
	}
	next := t.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(t.messages) {
		next = len(t.messages) - 1
	}
	if next != t.selected {
		t.selected = next
		t.announce()
	}
}

// Subscribe registers fn to run after every state change.
func (t *Thread) Subscribe(fn func(ThreadState)) (unsubscribe func()) {
	return t.observers.Subscribe(fn)
}

func (t *Thread) announce() {
	exp := make(map[int]bool, len(t.expanded))
	for k, v := range t.expanded {
		exp[k] = v
	}
	t.observers.Notify(ThreadState{Selected: t.selected, Expanded: exp})
}

// Quote wraps a message body in quotes the way cards display it.
func Quote(body string) string {
	return "\"" + body + "\""
}
