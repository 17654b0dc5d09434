// Package beholder is the support library of the beholder website-scanning
// component.
//
// The functionality lives in the sub-packages:
//
//   - pkg/validator: resolve optional values against defaults and check them
//     with type-tag or shape predicates.
//   - pkg/config: layered, read-only key/value store over command-line
//     arguments, environment, a config file and a defaults file.
//   - pkg/logger: slog loggers with console and JSON file transports built
//     from validated options.
//   - pkg/info: name and version from the embedded component manifest and
//     the component id from config.
//   - pkg/scanner: scan instance holding an optional logger.
//
// Every constructor takes an options struct whose fields are
// validator.Optional, so "not given" and "given as false" stay distinct:
//
//	store, err := config.Init(&config.Options{
//		File:     validator.Some("./config.json"),
//		Defaults: validator.Some(false),
//	})
//	if err != nil {
//		return err
//	}
//	log, err := logger.FromStore(store)
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//
// The cmd/beholder program wires these together and reports the component
// start and termination.
package beholder
