// Package notify holds a single transient, auto-hiding user notification.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3 * time.Second

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Notification is one message with its visibility window.
type Notification struct {
	Message   string
	Severity  Severity
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Timer is the part of *time.Timer the Notifier needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// WithAfterFunc overrides time.AfterFunc.
func WithAfterFunc(af AfterFunc) Option {
	return func(n *Notifier) { n.afterFunc = af }
}

// WithOnHide registers a callback run when a notification auto-hides.
// It runs on the timer goroutine, without the Notifier's lock held.
func WithOnHide(f func(Notification)) Option {
	return func(n *Notifier) { n.onHide = f }
}

// Notifier shows at most one notification at a time. Each Show replaces the
// current message and restarts the hide timer; older timers never hide newer messages.
type Notifier struct {
	mu        sync.Mutex
	duration  time.Duration
	now       func() time.Time
	afterFunc AfterFunc
	onHide    func(Notification)

	current *Notification
	timer   Timer
	seq     uint64
	closed  bool
}

// New creates a Notifier. A non-positive duration means DefaultDuration.
func New(duration time.Duration, opts ...Option) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	n := &Notifier{
		duration: duration,
		now:      time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces any visible notification and schedules its hide.
func (n *Notifier) Show(message string, severity Severity) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	shownAt := n.now()
	notif := Notification{
		Message:   message,
		Severity:  severity,
		ShownAt:   shownAt,
		ExpiresAt: shownAt.Add(n.duration),
	}
	n.current = &notif
	n.seq++

	if !n.closed {
		seq := n.seq
		n.timer = n.afterFunc(n.duration, func() { n.expire(seq) })
	}
	return notif
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil || !n.now().Before(n.current.ExpiresAt) {
		return Notification{}, false
	}
	return *n.current, true
}

// Hide removes the visible notification immediately.
func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	n.seq++
}

// Close stops the pending timer. Show still works afterwards but never schedules a hide.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	if seq != n.seq || n.current == nil {
		n.mu.Unlock()
		return
	}
	hidden := *n.current
	n.current = nil
	n.timer = nil
	onHide := n.onHide
	n.mu.Unlock()

	if onHide != nil {
		onHide(hidden)
	}
}
