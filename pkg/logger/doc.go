// Package logger builds slog loggers from validated transport options.
//
// New takes an Options value whose fields are validator.Optional, resolves
// each against its default and refuses to build anything when one is
// malformed. The resulting Logger embeds *slog.Logger and fans records out to
// the enabled transports:
//
//   - console: one human-readable line per record, level label colorized
//     with github.com/fatih/color when Colorize is true, timestamp prefix
//     when Timestamp is true. Written to stdout unless WithConsoleOutput is
//     given.
//   - file: JSON lines appended to Options.File; the time field is dropped
//     when Timestamp is false. Never colorized.
//
// # Usage
//
//	import "github.com/wnr/beholder/pkg/logger"
//
//	func main() {
//	    log, err := logger.New(&logger.Options{
//	        File: validator.Some("/var/log/beholder.log"),
//	    }, logger.WithLevel(slog.LevelDebug))
//	    if err != nil {
//	        fmt.Fprintln(os.Stderr, err)
//	        os.Exit(1)
//	    }
//	    defer log.Close()
//	    logger.SetAsDefault(log.Logger)
//
//	    log.Info("started", logger.Component("beholder"), logger.ComponentID(7))
//	}
//
// FromStore reads the same options from a config store under log:colorize,
// log:timestamp, log:console and log:file.
//
// # Configuration
//
// Functional options adjust everything that is not a transport switch:
//
//   - WithLevel: minimum level for every transport.
//   - WithConsoleOutput: console destination.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: inject attributes from context.
//
// # Error Handling
//
// New returns ErrInvalidOptions joined with the validator error when an
// option has the wrong type, and ErrOpeningFile when the file transport
// cannot be opened. The Error helper produces an attribute
// only when the supplied error is non-nil, allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
