// Package config builds a layered, read-only configuration store from
// command-line arguments, environment variables, a config file and a
// defaults file.
//
// It wraps `github.com/spf13/viper` for layering and file formats (JSON,
// YAML, TOML by extension; JSON when the file has no extension) and
// `github.com/spf13/pflag` for argument parsing. Options are checked with
// the validator package, so a bad option fails Init instead of producing a
// half-configured store.
//
// # Layers
//
// Keys are looked up in priority order:
//
//   - argv: long options such as --id=7, --log:file app.log, --verbose or
//     --no-colorize. Enabled by default.
//   - env: PREFIX_KEY variables when Options.EnvPrefix is set, with ":"
//     mapped to "_" (log:file -> BEHOLDER_LOG_FILE). Disabled by default.
//   - config: Options.File, default "./config.json".
//   - defaults: Options.Defaults, default "./config_defaults.json".
//
// Any layer can be switched off with the literal false. A file layer whose
// file does not exist stays in the list but contributes no keys.
//
// # Usage
//
//	store, err := config.Init(&config.Options{
//	    File:     validator.Some("/etc/beholder/config.json"),
//	    Defaults: validator.Some(false),
//	})
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
//	id := store.Lookup("id")
//
//	var logCfg struct {
//	    File string `mapstructure:"file" validate:"omitempty,filepath"`
//	}
//	if err := store.DecodeKey("log", &logCfg); err != nil {
//	    log.Fatalf("decoding log config: %v", err)
//	}
//
// Decode and DecodeKey check `validate` struct tags with
// `github.com/go-playground/validator/v10` after unmarshalling.
//
// # Process environment
//
// LoadEnv (via `github.com/joho/godotenv`) and ParseEnv (via
// `github.com/caarlos0/env/v11`) read bootstrap settings that must be known
// before a Store exists, such as which config file to open.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrInvalidOptions` – Init options failed validation.
//   - `ErrReadingFile`    – a config or defaults file exists but could not be read.
//   - `ErrParsingArgs`    – command-line arguments could not be parsed.
//   - `ErrDecodingConfig` – the store could not be unmarshalled into a struct.
//   - `ErrInvalidConfig`  – a decoded struct failed its validate tags.
//   - `ErrParsingEnv`     – environment variables could not be parsed into a struct.
//   - `ErrLoadingEnvFile` – a dotenv file could not be loaded.
//   - `ErrNilPointer`     – nil destination passed to a decoder.
package config
