package ports

// ArtifactWriter defines the interface for the generated artifact on disk.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// Exists reports whether a regular file is present at path.
	Exists(path string) bool
	// Write replaces the file at path with data, never leaving a partial file behind.
	Write(path string, data []byte) error
	// Remove deletes the file at path. A missing file is not an error.
	Remove(path string) error
}
