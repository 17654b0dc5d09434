// Package scanner controls the browser that performs website scans.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wnr/beholder/pkg/validator"
)

// ErrInvalidOptions is returned when New receives options that fail validation.
var ErrInvalidOptions = errors.New("invalid scanner options")

// Logger is the logging surface a Scanner writes to. *slog.Logger and
// *logger.Logger satisfy it.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// Options configures a Scanner. Every field is optional.
type Options struct {
	// Logger is an object with a log function, or false (default) to
	// disable logging.
	Logger validator.Optional
}

// Scanner is a website scan instance.
type Scanner struct {
	logger Logger
}

var loggerShape = validator.FalseOrObject(validator.Schema{"log": validator.TagFunction})

// New validates opts and creates a Scanner.
func New(opts *Options) (*Scanner, error) {
	o, err := validator.ResolveAs[Options](validator.FromPtr(opts), validator.Some(Options{}), validator.Type(validator.TagObject))
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	var l any
	if err := validator.Apply(validator.Bind("logger", &l, o.Logger, validator.Some(false), loggerShape)); err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	s := &Scanner{}
	if l == false {
		return s, nil
	}
	typed, ok := l.(Logger)
	if !ok {
		return nil, errors.Join(ErrInvalidOptions, validator.ValidationErrors{{
			Field:   "logger",
			Value:   l,
			Message: fmt.Sprintf("%T has no Log(ctx, level, msg, args...) method", l),
		}})
	}
	s.logger = typed
	return s, nil
}

// Logger returns the configured logger, or nil when logging is disabled.
func (s *Scanner) Logger() Logger {
	return s.logger
}
