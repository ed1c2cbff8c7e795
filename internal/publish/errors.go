package publish

import "errors"

var (
	// ErrBuildMissing is returned when the build output directory does not exist.
	ErrBuildMissing = errors.New("build directory not found, run the build first")

	// ErrNoBundles is returned when none of the expected bundle files were produced.
	ErrNoBundles = errors.New("no bundle files found")

	// ErrMalformedManifest is returned when package.json is not a JSON object.
	ErrMalformedManifest = errors.New("malformed package manifest")
)
