package observability

import (
	"sync"

	"github.com/openburn/motordoc/pkg/domain"
)

// Snapshot is a point-in-time view of recorded activity.
type Snapshot struct {
	// Changes counts every document change event seen.
	Changes uint64 `json:"changes"`

	// Saves counts the events that left the document clean.
	Saves uint64 `json:"saves"`

	// LastPath is the document path of the most recent event.
	LastPath string `json:"lastPath"`
}

// Recorder counts workspace change events and fans them out to
// subscribed channels. Record is safe to install directly as a
// workspace change listener; it never blocks.
type Recorder struct {
	mu       sync.Mutex
	snapshot Snapshot
	watchers []chan domain.ChangeEvent
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record consumes one change event. Watchers that are not keeping up
// miss events rather than stalling the workspace.
func (r *Recorder) Record(ev domain.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot.Changes++
	if ev.Saved {
		r.snapshot.Saves++
	}
	r.snapshot.LastPath = ev.Path

	for _, ch := range r.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Watch returns a buffered channel receiving future change events.
func (r *Recorder) Watch() <-chan domain.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan domain.ChangeEvent, 64)
	r.watchers = append(r.watchers, ch)
	return ch
}

// Snapshot returns the current counters.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}
