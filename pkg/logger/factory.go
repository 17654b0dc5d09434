package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/wnr/beholder/pkg/validator"
)

// Transport names.
const (
	TransportConsole = "console"
	TransportFile    = "file"
)

// Config keys read by FromStore.
const (
	KeyColorize  = "log:colorize"
	KeyTimestamp = "log:timestamp"
	KeyConsole   = "log:console"
	KeyFile      = "log:file"
)

// Options selects the log transports. Every field is optional.
type Options struct {
	// Colorize colors console level labels. Boolean, default true.
	Colorize validator.Optional
	// Timestamp prefixes records with their time. Boolean, default true.
	Timestamp validator.Optional
	// Console enables the console transport. Boolean, default true.
	Console validator.Optional
	// File is a path for the JSON file transport, or false (default).
	File validator.Optional
}

// Transport describes one configured log sink.
type Transport struct {
	Name      string
	Colorize  bool
	Timestamp bool
	Filename  string
}

// Logger is a slog.Logger bound to its transports.
type Logger struct {
	*slog.Logger

	transports []Transport
	closeOnce  sync.Once
	closers    []io.Closer
	closeErr   error
}

// Transports returns the configured sinks in creation order.
func (l *Logger) Transports() []Transport {
	out := make([]Transport, len(l.transports))
	copy(out, l.transports)
	return out
}

// Transport returns the named sink, if configured.
func (l *Logger) Transport(name string) (Transport, bool) {
	for _, t := range l.transports {
		if t.Name == name {
			return t, true
		}
	}
	return Transport{}, false
}

// Close releases file transports. It is safe to call more than once.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		var errs []error
		for _, c := range l.closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		l.closeErr = errors.Join(errs...)
	})
	return l.closeErr
}

// Option configures logger creation beyond the transport options.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithConsoleOutput sets the console destination, ignoring nil writers.
func WithConsoleOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.console = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is present.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level      slog.Level
	console    io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func defaultConfig() *config {
	return &config{
		level:   slog.LevelInfo,
		console: os.Stdout,
	}
}

// New validates opts and builds a Logger with a text console transport
// and/or a JSON file transport. Validation failures return an error and no
// logger. With both transports disabled the logger discards every record.
func New(opts *Options, extra ...Option) (*Logger, error) {
	o, err := validator.ResolveAs[Options](validator.FromPtr(opts), validator.Some(Options{}), validator.Type(validator.TagObject))
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	var (
		colorize, timestamp, console bool
		file                         any
	)
	boolean := validator.Type(validator.TagBoolean)
	err = validator.Apply(
		validator.Bind("colorize", &colorize, o.Colorize, validator.Some(true), boolean),
		validator.Bind("timestamp", &timestamp, o.Timestamp, validator.Some(true), boolean),
		validator.Bind("console", &console, o.Console, validator.Some(true), boolean),
		validator.Bind("file", &file, o.File, validator.Some(false), validator.TypeOrFalse(validator.TagString)),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	cfg := defaultConfig()
	for _, opt := range extra {
		opt(cfg)
	}

	l := &Logger{}
	var handlers []slog.Handler

	if console {
		handlers = append(handlers, newConsoleHandler(cfg.console, cfg.level, colorize, timestamp))
		l.transports = append(l.transports, Transport{
			Name:      TransportConsole,
			Colorize:  colorize,
			Timestamp: timestamp,
		})
	}

	if path, ok := file.(string); ok {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Join(ErrOpeningFile, fmt.Errorf("%s: %w", path, err))
		}
		handlerOpts := &slog.HandlerOptions{Level: cfg.level}
		if !timestamp {
			handlerOpts.ReplaceAttr = dropTime
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		l.closers = append(l.closers, f)
		l.transports = append(l.transports, Transport{
			Name:      TransportFile,
			Timestamp: timestamp,
			Filename:  path,
		})
	}

	handler := newFanoutHandler(handlers...)
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	l.Logger = slog.New(withContext(handler, cfg.extractors))
	return l, nil
}

// Source is a read-only key lookup, satisfied by *config.Store.
type Source interface {
	Lookup(key string) validator.Optional
}

// FromStore builds a Logger from the log:* keys of src. Missing keys take
// the New defaults.
func FromStore(src Source, extra ...Option) (*Logger, error) {
	if src == nil {
		return New(nil, extra...)
	}
	return New(&Options{
		Colorize:  src.Lookup(KeyColorize),
		Timestamp: src.Lookup(KeyTimestamp),
		Console:   src.Lookup(KeyConsole),
		File:      src.Lookup(KeyFile),
	}, extra...)
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
