package rubikscube

import "errors"

// Sentinel errors for the rubikscube package.
var (
	// Move errors
	ErrUnrecognizedMove = errors.New("rubikscube: unrecognized move")

	// Construction errors
	ErrMissingFace = errors.New("rubikscube: missing face")
	ErrUnknownFace = errors.New("rubikscube: unknown face")

	// Owner errors
	ErrOwnerStopped = errors.New("rubikscube: owner stopped")
)
