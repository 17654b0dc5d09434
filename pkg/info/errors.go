package info

import "errors"

var (
	// ErrInvalidManifest is returned when the component manifest is not valid YAML
	ErrInvalidManifest = errors.New("invalid component manifest")

	// ErrInvalidName is returned when the manifest name is not a string
	ErrInvalidName = errors.New("component name is invalid (not string)")

	// ErrInvalidVersion is returned when the manifest version is neither a string nor a number
	ErrInvalidVersion = errors.New("component version is invalid (not string or number)")

	// ErrInvalidID is returned when the configured component id is not a number
	ErrInvalidID = errors.New("component id is invalid (not number)")
)
