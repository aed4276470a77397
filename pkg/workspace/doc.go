/*
Package workspace implements the lifecycle manager for the open motor
design document.

The Manager is the exclusive owner of the document's version history,
cursor, saved marker and file path. Edits are committed with AddVersion
(duplicates elided, redo tail truncated on divergence), navigated with
Undo/Redo, and persisted through a ports.DesignStore. Destructive
operations (New, Open) pass through the unsaved-changes gate, and every
state-affecting operation emits a change event to subscribed listeners.

All operations are synchronous and serialized by one mutex; persistence
failures are surfaced once and never leave partial state behind.
*/
package workspace
