// Package store provides a small reactive value container.
//
// A Writable holds one value and a list of subscribers. Subscribing hands
// the subscriber the current value straight away; every later Set hands it
// the new value. The student list shown by the rendering layer is just a
// Writable[[]types.Student], built once at startup and passed to whoever
// needs it.
//
// HOW DELIVERY IS ORDERED:
// ────────────────────────
// Every notification, including the first "here is the current value"
// call a new subscriber gets, goes through one FIFO queue. Each queued
// item carries the value AND the exact subscribers it is meant for,
// captured at the moment it was queued:
//
//	Set(v)        → item{v, every subscriber registered right now}
//	Subscribe(fn) → item{current value, just fn}
//
// Only one goroutine drains the queue at a time. So a subscriber is never
// called twice at once, never sees an older value after a newer one, and
// never receives the same replacement twice.
package store

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/aanand-mishra/students-board/internal/types"
)

// Readable is the subscription half of a store. Rendering code should
// depend on this rather than on *Writable so it cannot replace the value.
type Readable[T any] interface {
	// Subscribe registers fn, calls it with the current value and again on
	// every replacement. The returned function cancels the subscription.
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscriber[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// delivery is one queued notification: value, for exactly these targets.
type delivery[T any] struct {
	value   T
	targets []*subscriber[T]
}

// Writable is a value that notifies subscribers whenever it is replaced.
//
// Notifications are delivered synchronously on the goroutine that started
// the current delivery round, in registration order. A Set or Subscribe
// made while a round is in flight (from inside a subscriber, or from
// another goroutine) is queued and delivered by that round before it
// returns.
//
// The zero value is not usable; construct one with New.
type Writable[T any] struct {
	mu        sync.Mutex
	value     T
	subs      []*subscriber[T]
	queue     []delivery[T]
	notifying bool
}

// New returns a Writable holding initial.
func New[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Subscribe implements Readable.
//
// When no delivery round is running, fn is called with the current value
// before Subscribe returns. When one is running, that first call is queued
// behind the deliveries already pending and made by the goroutine running
// the round.
//
// Calling the returned function more than once is a no-op.
func (w *Writable[T]) Subscribe(fn func(T)) func() {
	s := &subscriber[T]{fn: fn}
	s.active.Store(true)

	w.mu.Lock()
	w.subs = append(w.subs, s)
	drain := w.enqueueLocked(delivery[T]{value: w.value, targets: []*subscriber[T]{s}})
	w.mu.Unlock()

	if drain {
		w.drain()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.active.Store(false)

			w.mu.Lock()
			defer w.mu.Unlock()
			w.subs = slices.DeleteFunc(w.subs, func(other *subscriber[T]) bool {
				return other == s
			})
		})
	}
}

// Set replaces the held value and notifies every subscriber.
//
// No comparison with the previous value is made: setting an equal value
// is still a replacement and still notifies.
func (w *Writable[T]) Set(v T) {
	w.mu.Lock()
	w.value = v
	drain := w.enqueueLocked(delivery[T]{value: v, targets: slices.Clone(w.subs)})
	w.mu.Unlock()

	if drain {
		w.drain()
	}
}

// Update replaces the value with fn applied to the current one. fn runs
// with the store locked and must not call back into the store.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	drain := w.enqueueLocked(delivery[T]{value: w.value, targets: slices.Clone(w.subs)})
	w.mu.Unlock()

	if drain {
		w.drain()
	}
}

// Subscribers reports how many subscriptions are currently registered.
func (w *Writable[T]) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// enqueueLocked queues d and reports whether the caller has to run the
// delivery loop (true when no other goroutine is already running it).
func (w *Writable[T]) enqueueLocked(d delivery[T]) bool {
	w.queue = append(w.queue, d)
	if w.notifying {
		return false
	}
	w.notifying = true
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// drain delivers queued items until the queue is empty.
//
// The lock is released around every callback so subscribers may call Set,
// Subscribe or unsubscribe; whatever they queue is picked up by the next
// loop iteration. A target that unsubscribed after its item was queued is
// skipped.
// ─────────────────────────────────────────────────────────────────────────────
func (w *Writable[T]) drain() {
	finished := false
	defer func() {
		// a subscriber panicked; reset so the store stays usable
		if !finished {
			w.mu.Lock()
			w.notifying = false
			w.queue = nil
			w.mu.Unlock()
		}
	}()

	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.notifying = false
			w.mu.Unlock()
			finished = true
			return
		}
		next := w.queue[0]
		w.queue[0] = delivery[T]{}
		w.queue = w.queue[1:]
		w.mu.Unlock()

		for _, s := range next.targets {
			if s.active.Load() {
				s.fn(next.value)
			}
		}
	}
}

// StudentList is the store holding the students shown by the UI.
type StudentList = Writable[[]types.Student]

// NewStudentList returns an empty student list store.
func NewStudentList() *StudentList {
	return New([]types.Student{})
}
