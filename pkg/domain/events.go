package domain

// ChangeEvent describes a change to the open document's identity or
// save state. It is emitted after every operation that can move the
// cursor, grow the history or change the saved marker.
type ChangeEvent struct {
	// Path is the file path of the open document, or empty for an
	// untitled design.
	Path string `json:"path"`

	// Saved indicates whether the current version matches the last
	// persisted one.
	Saved bool `json:"saved"`
}

// ChangeListener receives change events. Listeners are invoked
// synchronously on the calling goroutine, while the workspace lock is
// held; they must not call back into the workspace.
type ChangeListener func(ChangeEvent)
