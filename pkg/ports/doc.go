/*
Package ports defines the driven ports (interfaces) for the motordoc
workspace.

These interfaces decouple the document lifecycle from external
implementations, allowing the workspace to work with various storage
backends and user interaction surfaces.

# Key Interfaces

  - DesignStore: persisting and loading design snapshots by path.
  - LibraryStore: persisting and loading the shared propellant library.
  - Prompter: the three-way Save/Discard/Cancel decision gate consulted
    before destructive operations on a dirty document.
*/
package ports
