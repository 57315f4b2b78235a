package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRootNotFound is returned when the web source directory does not exist.
	ErrSourceRootNotFound = zerr.New("source directory not found")

	// ErrSourceReadFailed is returned when an existing source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrConstantNameCollision is returned when two asset paths derive the same constant name.
	ErrConstantNameCollision = zerr.New("constant name collision")

	// ErrBuildFailed is returned when the pipeline aborts after the source root was validated.
	ErrBuildFailed = zerr.New("asset build failed")

	// ErrCompressFailed is returned when an asset cannot be gzip-compressed.
	ErrCompressFailed = zerr.New("failed to compress asset")

	// ErrArtifactWriteFailed is returned when the generated header cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write generated artifact")

	// ErrArtifactRemoveFailed is returned when the generated header cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove generated artifact")

	// ErrStoreCreateFailed is returned when the cache record directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache record directory")

	// ErrStoreReadFailed is returned when the cache record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache record")

	// ErrStoreUnmarshalFailed is returned when the cache record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache record")

	// ErrStoreMarshalFailed is returned when the cache record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrStoreWriteFailed is returned when the cache record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but describes an unusable layout.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrWatcherStartFailed is returned when the source watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start source watcher")
)
