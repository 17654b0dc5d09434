package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads one or more dotenv files into the process environment.
// Variables that are already set are not overridden. With no arguments the
// .env file in the working directory is loaded.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ParseEnv populates v from environment variables using `env` and
// `envDefault` struct tags.
//
// Example:
//
//	type Bootstrap struct {
//		ConfigFile string `env:"BEHOLDER_CONFIG_FILE" envDefault:"./config.json"`
//	}
//
//	var b Bootstrap
//	if err := config.ParseEnv(&b); err != nil {
//		// Handle error
//	}
func ParseEnv[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingEnv, err)
	}
	return nil
}
