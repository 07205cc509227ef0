package reportpdf

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Exporter].
	ErrClosed = errors.New("reportpdf: exporter is closed")

	// ErrTargetNotFound is returned when the element to capture does not
	// exist. Nothing on the page has been modified when it is returned.
	ErrTargetNotFound = errors.New("reportpdf: target element not found")

	// ErrInvalidOptions is returned by [NewExporter] for unusable capture
	// settings.
	ErrInvalidOptions = errors.New("reportpdf: invalid options")
)
