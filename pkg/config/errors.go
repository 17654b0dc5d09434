package config

import "errors"

// Package-specific errors
var (
	// ErrInvalidOptions is returned when Init receives options that fail validation
	ErrInvalidOptions = errors.New("invalid config options")

	// ErrReadingFile is returned when a config or defaults file exists but cannot be read or parsed
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingArgs is returned when command-line arguments cannot be parsed
	ErrParsingArgs = errors.New("failed to parse command-line arguments")

	// ErrDecodingConfig is returned when the store cannot be decoded into a struct
	ErrDecodingConfig = errors.New("failed to decode config")

	// ErrInvalidConfig is returned when a decoded struct fails its validate tags
	ErrInvalidConfig = errors.New("config validation failed")

	// ErrParsingEnv is returned when environment variables cannot be parsed into the config struct
	ErrParsingEnv = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a dotenv file cannot be loaded
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer is returned when a nil pointer is provided to a decoder
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
