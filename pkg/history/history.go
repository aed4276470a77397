package history

import (
	"github.com/openburn/motordoc/pkg/domain"
)

// History is a linear sequence of design snapshots plus a cursor into
// it. It always holds at least one entry. Divergent edits truncate the
// redo tail, so the state space stays a flat list and one index rather
// than an edit tree.
//
// History is not safe for concurrent use; the workspace manager is its
// single owner and serializes access.
type History struct {
	versions []*domain.Design
	cursor   int
}

// New creates a history seeded with the given design as its only entry.
// The design is cloned, so the caller keeps ownership of its copy.
func New(initial *domain.Design) *History {
	return &History{versions: []*domain.Design{initial.Clone()}}
}

// AddVersion commits a new snapshot after a user-visible edit. If the
// snapshot equals the current one it is elided (debounced edit events
// routinely re-submit the same state). Otherwise any redo tail beyond
// the cursor is dropped, the snapshot is appended and the cursor moves
// to it. Returns true when the history actually changed.
func (h *History) AddVersion(d *domain.Design) bool {
	if d.Equal(h.versions[h.cursor]) {
		return false
	}
	if h.CanRedo() {
		// An edit branching from a rolled-back state invalidates the
		// abandoned future.
		h.versions = h.versions[:h.cursor+1]
	}
	h.versions = append(h.versions, d.Clone())
	h.cursor = len(h.versions) - 1
	return true
}

// OverrideCurrent replaces the snapshot at the cursor in place without
// growing the history or moving the cursor. Only valid for amending an
// in-progress edit that has not been committed as user-visible history;
// after a commit it would silently rewrite the past.
func (h *History) OverrideCurrent(d *domain.Design) {
	h.versions[h.cursor] = d.Clone()
}

// Undo moves the cursor one entry back.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return domain.ErrCannotUndo
	}
	h.cursor--
	return nil
}

// Redo moves the cursor one entry forward.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return domain.ErrCannotRedo
	}
	h.cursor++
	return nil
}

// CanUndo reports whether there is history before the cursor.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether there is history after the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.versions)-1
}

// Current returns a copy of the snapshot at the cursor.
func (h *History) Current() *domain.Design {
	return h.versions[h.cursor].Clone()
}

// Cursor returns the index of the current snapshot.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.versions)
}

// Reset discards all history and starts over from the given design.
func (h *History) Reset(d *domain.Design) {
	h.versions = []*domain.Design{d.Clone()}
	h.cursor = 0
}
