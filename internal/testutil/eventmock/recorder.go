package eventmock

import (
	"context"
	"sync"

	"creditledger/internal/domain/event"
)

// Recorder keeps published events in memory. Err, when set, is returned
// from Publish after the event is recorded.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
	Err    error
}

var _ event.Publisher = (*Recorder)(nil)

func (r *Recorder) Publish(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.Err
}

func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Types lists the recorded event types in publish order.
func (r *Recorder) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
