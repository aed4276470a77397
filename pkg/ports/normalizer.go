package ports

// PathNormalizer is an optional interface for DesignStore
// implementations with a path convention, such as a mandatory file
// extension. The workspace normalizes user-supplied paths through it
// before recording them, so the recorded path always matches the real
// save target.
type PathNormalizer interface {
	NormalizePath(path string) string
}
