package tui

import (
	"time"

	"github.com/coder/quartz"
)

// notifyFor is how long a notification stays visible
const notifyFor = 3 * time.Second

// Notifier is the transient, auto-dismissing message surface. A single
// cancellable timer backs the auto-hide: showing a new message stops any
// pending hide first, so every message gets its full display window and a
// superseded hide can never dismiss a newer message.
//
// Show, Expire and Clear must all be called from the same goroutine (the
// bubbletea update loop); the timer callback only invokes onHide with the
// generation captured at schedule time.
type Notifier struct {
	clock  quartz.Clock
	onHide func(gen int)

	message string
	gen     int
	timer   *quartz.Timer
}

// NewNotifier creates a notifier. onHide is called from a timer goroutine
// when a message's display window elapses; the receiver routes it back to
// the update loop and calls Expire with the same generation.
func NewNotifier(clock quartz.Clock, onHide func(gen int)) *Notifier {
	return &Notifier{clock: clock, onHide: onHide}
}

// Show displays a message and (re)schedules the hide timer
func (n *Notifier) Show(message string) {
	if n.timer != nil {
		n.timer.Stop()
	}

	n.gen++
	n.message = message

	gen := n.gen
	n.timer = n.clock.AfterFunc(notifyFor, func() {
		n.onHide(gen)
	})
}

// Expire hides the message if gen still identifies the visible one.
// A stale generation (the message was replaced or cleared after that hide
// was scheduled) is ignored.
func (n *Notifier) Expire(gen int) {
	if gen == n.gen {
		n.message = ""
	}
}

// Clear hides any visible message and cancels the pending hide
func (n *Notifier) Clear() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.message = ""
}

// Message returns the currently visible message, or "" when hidden
func (n *Notifier) Message() string {
	return n.message
}
