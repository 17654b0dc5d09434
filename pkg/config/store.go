package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wnr/beholder/pkg/validator"
)

// Layer names, in priority order.
const (
	LayerArgv     = "argv"
	LayerEnv      = "env"
	LayerConfig   = "config"
	LayerDefaults = "defaults"
)

// Default option values.
const (
	DefaultConfigFile   = "./config.json"
	DefaultDefaultsFile = "./config_defaults.json"
)

// KeyDelimiter separates nested keys, as in "log:colorize".
const KeyDelimiter = ":"

// Options controls which layers Init reads. Every field is optional.
type Options struct {
	// Argv enables the command-line layer. Boolean, default true.
	Argv validator.Optional
	// Args are the command-line tokens to parse. Defaults to os.Args[1:].
	Args []string
	// File is the config file path, or false to disable it.
	File validator.Optional
	// Defaults is the defaults file path, or false to disable it.
	Defaults validator.Optional
	// EnvPrefix enables the environment layer for PREFIX_KEY variables, or
	// false (default) to disable it.
	EnvPrefix validator.Optional
	// DotEnv is a dotenv file loaded into the process environment before
	// the environment layer is consulted, or false (default).
	DotEnv validator.Optional
}

// Layer describes one source of a Store.
type Layer struct {
	Name string
	// File is the backing file for file layers, or the variable prefix for
	// the environment layer.
	File string
}

// Store is a read-only layered view over argv, environment, config file
// and defaults file.
type Store struct {
	v          *viper.Viper
	layers     []Layer
	positional []string
	argvKeys   map[string]struct{}
	envPrefix  string
}

var envKeyReplacer = strings.NewReplacer(KeyDelimiter, "_", ".", "_", "-", "_")

var structValidator = playground.New(playground.WithRequiredStructEnabled())

// Init builds a Store. Layers are consulted in the order argv, env, config,
// defaults; the first layer that holds a key wins. A file layer whose file
// does not exist is kept but empty.
func Init(opts *Options) (*Store, error) {
	o, err := validator.ResolveAs[Options](validator.FromPtr(opts), validator.Some(Options{}), validator.Type(validator.TagObject))
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	var (
		argv                 bool
		file, defaults       any
		envPrefix, dotEnvArg any
	)
	fileOption := validator.TypeOrFalse(validator.TagString)
	err = validator.Apply(
		validator.Bind("argv", &argv, o.Argv, validator.Some(true), validator.Type(validator.TagBoolean)),
		validator.Bind("config", &file, o.File, validator.Some(DefaultConfigFile), fileOption),
		validator.Bind("defaults", &defaults, o.Defaults, validator.Some(DefaultDefaultsFile), fileOption),
		validator.Bind("env_prefix", &envPrefix, o.EnvPrefix, validator.Some(false), fileOption),
		validator.Bind("dotenv", &dotEnvArg, o.DotEnv, validator.Some(false), fileOption),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	s := &Store{v: viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))}

	if argv {
		args := o.Args
		if args == nil {
			args = os.Args[1:]
		}
		if err := s.bindArgs(args); err != nil {
			return nil, err
		}
		s.layers = append(s.layers, Layer{Name: LayerArgv})
	}

	if path, ok := dotEnvArg.(string); ok {
		if err := loadDotEnv(path); err != nil {
			return nil, err
		}
	}
	if prefix, ok := envPrefix.(string); ok {
		s.v.SetEnvPrefix(prefix)
		s.v.SetEnvKeyReplacer(envKeyReplacer)
		s.envPrefix = prefix
		s.v.AutomaticEnv()
		s.layers = append(s.layers, Layer{Name: LayerEnv, File: prefix})
	}

	if path, ok := file.(string); ok {
		if err := s.readConfig(path); err != nil {
			return nil, err
		}
		s.layers = append(s.layers, Layer{Name: LayerConfig, File: path})
	}

	if path, ok := defaults.(string); ok {
		if err := s.readDefaults(path); err != nil {
			return nil, err
		}
		s.layers = append(s.layers, Layer{Name: LayerDefaults, File: path})
	}

	return s, nil
}

func (s *Store) bindArgs(args []string) error {
	flags, positional, err := parseArgs(args)
	if err != nil {
		return errors.Join(ErrParsingArgs, err)
	}
	var bindErr error
	s.argvKeys = make(map[string]struct{})
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, ".", KeyDelimiter)
		s.argvKeys[strings.ToLower(key)] = struct{}{}
		if err := s.v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return errors.Join(ErrParsingArgs, bindErr)
	}
	s.positional = positional
	return nil
}

func (s *Store) readConfig(path string) error {
	exists, err := fileExists(path)
	if err != nil || !exists {
		return err
	}
	s.v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		s.v.SetConfigType("json")
	}
	if err := s.v.ReadInConfig(); err != nil {
		return errors.Join(ErrReadingFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// readDefaults loads path into the defaults level of the store.
func (s *Store) readDefaults(path string) error {
	exists, err := fileExists(path)
	if err != nil || !exists {
		return err
	}
	dv := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	dv.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		dv.SetConfigType("json")
	}
	if err := dv.ReadInConfig(); err != nil {
		return errors.Join(ErrReadingFile, fmt.Errorf("%s: %w", path, err))
	}
	for _, key := range dv.AllKeys() {
		s.v.SetDefault(key, dv.Get(key))
	}
	return nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrReadingFile, err)
	}
	if info.IsDir() {
		return false, errors.Join(ErrReadingFile, fmt.Errorf("%s is a directory", path))
	}
	return true, nil
}

func loadDotEnv(path string) error {
	exists, err := fileExists(path)
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	if !exists {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Stores returns the enabled layers in priority order.
func (s *Store) Stores() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer returns the named layer, if enabled.
func (s *Store) Layer(name string) (Layer, bool) {
	for _, l := range s.layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Args returns the positional command-line arguments.
func (s *Store) Args() []string {
	return s.positional
}

// Lookup returns the value for key, or an absent Optional when no layer
// holds it. Values taken from the environment layer are typed the same way
// as argv values: "true"/"false" become bool and integers become int.
func (s *Store) Lookup(key string) validator.Optional {
	if !s.v.IsSet(key) {
		return validator.None()
	}
	v := s.v.Get(key)
	if str, ok := v.(string); ok && s.fromEnv(key, str) {
		v = typedValue(str)
	}
	return validator.Some(v)
}

// fromEnv reports whether value for key was read from the environment
// layer rather than a higher or lower one.
func (s *Store) fromEnv(key, value string) bool {
	if s.envPrefix == "" {
		return false
	}
	if _, ok := s.argvKeys[strings.ToLower(key)]; ok {
		return false
	}
	env, ok := os.LookupEnv(envKeyReplacer.Replace(strings.ToUpper(s.envPrefix + "_" + key)))
	return ok && env == value
}

func (s *Store) Get(key string) any {
	return s.v.Get(key)
}

func (s *Store) GetString(key string) string {
	return s.v.GetString(key)
}

func (s *Store) GetInt(key string) int {
	return s.v.GetInt(key)
}

func (s *Store) GetBool(key string) bool {
	return s.v.GetBool(key)
}

func (s *Store) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// AllSettings merges every layer into a nested map. Environment values are
// only included for keys some other layer also defines.
func (s *Store) AllSettings() map[string]any {
	return s.v.AllSettings()
}

// Decode unmarshals the store into dst using `mapstructure` tags and then
// checks its `validate` tags.
func (s *Store) Decode(dst any) error {
	if dst == nil {
		return ErrNilPointer
	}
	if err := s.v.Unmarshal(dst); err != nil {
		return errors.Join(ErrDecodingConfig, err)
	}
	return validateStruct(dst)
}

// DecodeKey is Decode restricted to the subtree under key.
func (s *Store) DecodeKey(key string, dst any) error {
	if dst == nil {
		return ErrNilPointer
	}
	if err := s.v.UnmarshalKey(key, dst); err != nil {
		return errors.Join(ErrDecodingConfig, err)
	}
	return validateStruct(dst)
}

func validateStruct(dst any) error {
	if reflect.Indirect(reflect.ValueOf(dst)).Kind() != reflect.Struct {
		return nil
	}
	if err := structValidator.Struct(dst); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
