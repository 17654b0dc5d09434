// Package main is the entry point of the beholder component. It reads
// bootstrap settings from the environment, loads the layered config store,
// builds the logger from it and reports the component lifecycle.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/wnr/beholder/pkg/config"
	"github.com/wnr/beholder/pkg/info"
	"github.com/wnr/beholder/pkg/logger"
	"github.com/wnr/beholder/pkg/scanner"
	"github.com/wnr/beholder/pkg/validator"
)

// bootstrap locates the config layers. "false" or an empty value disables a
// layer.
type bootstrap struct {
	ConfigFile   string `env:"BEHOLDER_CONFIG_FILE" envDefault:"./config.json"`
	DefaultsFile string `env:"BEHOLDER_DEFAULTS_FILE" envDefault:"./config_defaults.json"`
	EnvPrefix    string `env:"BEHOLDER_ENV_PREFIX" envDefault:"BEHOLDER"`
	DotEnv       string `env:"BEHOLDER_DOTENV"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "beholder: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var b bootstrap
	if err := config.ParseEnv(&b); err != nil {
		return fmt.Errorf("failed to read bootstrap environment: %w", err)
	}

	store, err := config.Init(&config.Options{
		Args:      args,
		File:      layerOption(b.ConfigFile),
		Defaults:  layerOption(b.DefaultsFile),
		EnvPrefix: layerOption(b.EnvPrefix),
		DotEnv:    layerOption(b.DotEnv),
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.FromStore(store,
		logger.WithConsoleOutput(out),
		logger.WithAttr(logger.RunID(uuid.NewString())),
	)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer log.Close()
	logger.SetAsDefault(log.Logger)

	if err := announce(log, store); err != nil {
		log.Error("Failed to start component", logger.Error(err))
		return err
	}
	return nil
}

func announce(log *logger.Logger, store *config.Store) error {
	name, err := info.Name()
	if err != nil {
		return err
	}
	version, err := info.Version(true)
	if err != nil {
		return err
	}
	id, err := info.ID(store)
	if err != nil {
		return err
	}

	if _, err := scanner.New(&scanner.Options{Logger: validator.Some(log)}); err != nil {
		return fmt.Errorf("failed to create scanner: %w", err)
	}

	log.Info(fmt.Sprintf("Starting %s component", name),
		logger.Component(name),
		logger.ComponentID(id),
		logger.Version(version),
		logger.Transports(log),
	)
	log.Info(fmt.Sprintf("Terminated %s component", name), logger.Component(name), logger.ComponentID(id))
	return nil
}

func layerOption(v string) validator.Optional {
	if v == "" || v == "false" {
		return validator.Some(false)
	}
	return validator.Some(v)
}
