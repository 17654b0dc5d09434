package logger

import "errors"

var (
	// ErrInvalidOptions is returned when New receives options that fail validation.
	ErrInvalidOptions = errors.New("invalid logger options")

	// ErrOpeningFile is returned when the file transport cannot open its file.
	ErrOpeningFile = errors.New("failed to open log file")
)
