package domain

import "errors"

// ErrCancelled is returned when the user cancels a destructive operation
// at the unsaved-changes gate. No state was changed.
var ErrCancelled = errors.New("operation cancelled")

// ErrGuardAborted is returned when the user chose to save before a
// destructive operation and that save failed. The operation did not
// proceed and nothing was discarded.
var ErrGuardAborted = errors.New("aborted: save before proceeding failed")

// ErrCannotUndo is returned when there is no history before the cursor.
var ErrCannotUndo = errors.New("nothing to undo")

// ErrCannotRedo is returned when there is no history after the cursor.
var ErrCannotRedo = errors.New("nothing to redo")

// ErrNoPath is returned when saving an untitled design without a target path.
var ErrNoPath = errors.New("design has no file path")

// ErrDesignNotFound is returned when a design file does not exist in the store.
var ErrDesignNotFound = errors.New("design not found")

// ErrVersionMismatch is returned when a design file was written by an
// incompatible file format version.
var ErrVersionMismatch = errors.New("unsupported design file version")
