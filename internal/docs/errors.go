package docs

import "errors"

var (
	// ErrVersionRequired is returned when no version argument was given.
	ErrVersionRequired = errors.New("version argument required")

	// ErrInvalidVersion is returned for anything that is not vX.Y.Z.
	ErrInvalidVersion = errors.New("version must be in format vX.Y.Z (e.g., v1.2.0)")

	// ErrDuplicateVersion is returned when the registry already lists the version.
	ErrDuplicateVersion = errors.New("version already exists")

	// ErrTargetExists is returned when the archive directory is already present.
	ErrTargetExists = errors.New("archive directory already exists")

	// ErrMalformedRegistry is returned when versions.json cannot be trusted.
	ErrMalformedRegistry = errors.New("malformed version registry")
)
