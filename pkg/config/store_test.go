package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnr/beholder/pkg/config"
	"github.com/wnr/beholder/pkg/validator"
)

func layerNames(s *config.Store) []string {
	var names []string
	for _, l := range s.Stores() {
		names = append(names, l.Name)
	}
	return names
}

func TestInit_Defaults(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{Args: []string{}})
	require.NoError(t, err)

	assert.Equal(t, []string{config.LayerArgv, config.LayerConfig, config.LayerDefaults}, layerNames(store))

	cfgLayer, ok := store.Layer(config.LayerConfig)
	require.True(t, ok)
	assert.Equal(t, "./config.json", cfgLayer.File)

	defLayer, ok := store.Layer(config.LayerDefaults)
	require.True(t, ok)
	assert.Equal(t, "./config_defaults.json", defLayer.File)

	_, ok = store.Layer(config.LayerEnv)
	assert.False(t, ok)
}

func TestInit_NilOptions(t *testing.T) {
	store, err := config.Init(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{config.LayerArgv, config.LayerConfig, config.LayerDefaults}, layerNames(store))
}

func TestInit_ArgvOption(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{Argv: validator.Some(false)})
	require.NoError(t, err)
	assert.NotContains(t, layerNames(store), config.LayerArgv)

	store, err = config.Init(&config.Options{Argv: validator.Some(true), Args: []string{}})
	require.NoError(t, err)
	assert.Equal(t, config.LayerArgv, layerNames(store)[0])
}

func TestInit_ConfigOption(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{File: validator.Some(false), Args: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, layerNames(store), config.LayerConfig)

	store, err = config.Init(&config.Options{File: validator.Some("/tmp/test.txt"), Args: []string{}})
	require.NoError(t, err)
	layers := store.Stores()
	require.Len(t, layers, 3)
	assert.Equal(t, config.LayerConfig, layers[1].Name)
	assert.Equal(t, "/tmp/test.txt", layers[1].File)
}

func TestInit_DefaultsOption(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{Defaults: validator.Some(false), Args: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, layerNames(store), config.LayerDefaults)

	store, err = config.Init(&config.Options{Defaults: validator.Some("/tmp/test.txt"), Args: []string{}})
	require.NoError(t, err)
	layers := store.Stores()
	require.Len(t, layers, 3)
	assert.Equal(t, config.LayerDefaults, layers[2].Name)
	assert.Equal(t, "/tmp/test.txt", layers[2].File)
}

func TestInit_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  config.Options
		field string
	}{
		{"argv not boolean", config.Options{Argv: validator.Some("not boolean")}, "argv"},
		{"config not string", config.Options{File: validator.Some(1337)}, "config"},
		{"defaults true", config.Options{Defaults: validator.Some(true)}, "defaults"},
		{"env prefix number", config.Options{EnvPrefix: validator.Some(1)}, "env_prefix"},
		{"dotenv true", config.Options{DotEnv: validator.Some(true)}, "dotenv"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store, err := config.Init(&tt.opts)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, config.ErrInvalidOptions)
			assert.True(t, validator.IsValidationError(err))
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
		})
	}
}

func TestInit_LayerPriority(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{
		Args:     []string{"--name", "from-argv"},
		File:     validator.Some("testdata/config.json"),
		Defaults: validator.Some("testdata/defaults.json"),
	})
	require.NoError(t, err)

	assert.Equal(t, "from-argv", store.GetString("name"))
	assert.Equal(t, 3, store.GetInt("id"))
	assert.Equal(t, "eu", store.GetString("region"))
	assert.True(t, store.GetBool("log:timestamp"))

	colorize := store.Lookup("log:colorize")
	require.True(t, colorize.IsSet())
	v, _ := colorize.Get()
	assert.Equal(t, false, v)

	file := store.Lookup("log:file")
	require.True(t, file.IsSet())
	v, _ = file.Get()
	assert.Equal(t, false, v)

	assert.False(t, store.Lookup("missing").IsSet())
	assert.False(t, store.IsSet("log:console"))
	assert.Nil(t, store.Get("missing"))

	all := store.AllSettings()
	assert.Equal(t, "from-argv", all["name"])
	assert.Contains(t, all, "log")
}

func TestInit_YAMLFile(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{
		Args:     []string{},
		File:     validator.Some("testdata/config.yaml"),
		Defaults: validator.Some(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, store.GetInt("id"))
	assert.Equal(t, "/var/log/beholder.log", store.GetString("log:file"))
	assert.False(t, store.GetBool("log:console"))
	assert.True(t, store.IsSet("log:console"))
}

func TestInit_MissingFilesAreEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := config.Init(&config.Options{
		Args:     []string{},
		File:     validator.Some(filepath.Join(dir, "missing.json")),
		Defaults: validator.Some(filepath.Join(dir, "also-missing.json")),
	})
	require.NoError(t, err)
	assert.Len(t, store.Stores(), 3)
	assert.Empty(t, store.AllSettings())
}

func TestInit_UnreadableFiles(t *testing.T) {
	t.Parallel()

	t.Run("malformed config", func(t *testing.T) {
		_, err := config.Init(&config.Options{Args: []string{}, File: validator.Some("testdata/broken.json")})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("malformed defaults", func(t *testing.T) {
		_, err := config.Init(&config.Options{Args: []string{}, File: validator.Some(false), Defaults: validator.Some("testdata/broken.json")})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := config.Init(&config.Options{Args: []string{}, File: validator.Some(t.TempDir())})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("file without extension is json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config")
		require.NoError(t, os.WriteFile(path, []byte(`{"id": 5}`), 0o600))
		store, err := config.Init(&config.Options{Args: []string{}, File: validator.Some(path), Defaults: validator.Some(false)})
		require.NoError(t, err)
		assert.Equal(t, 5, store.GetInt("id"))
	})
}

func TestInit_EnvLayer(t *testing.T) {
	t.Setenv("BEHOLDERTEST_NAME", "from-env")
	t.Setenv("BEHOLDERTEST_LOG_CONSOLE", "false")

	store, err := config.Init(&config.Options{
		Args:      []string{},
		EnvPrefix: validator.Some("BEHOLDERTEST"),
		File:      validator.Some("testdata/config.json"),
		Defaults:  validator.Some(false),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{config.LayerArgv, config.LayerEnv, config.LayerConfig}, layerNames(store))
	env, _ := store.Layer(config.LayerEnv)
	assert.Equal(t, "BEHOLDERTEST", env.File)

	assert.Equal(t, "from-env", store.GetString("name"), "env beats config file")
	assert.False(t, store.GetBool("log:console"))

	store, err = config.Init(&config.Options{
		Args:      []string{"--name=from-argv"},
		EnvPrefix: validator.Some("BEHOLDERTEST"),
	})
	require.NoError(t, err)
	assert.Equal(t, "from-argv", store.GetString("name"), "argv beats env")
}

func TestInit_DotEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("BEHOLDERDOT_REGION")
		os.Unsetenv("BEHOLDERDOT_NAME")
	})

	store, err := config.Init(&config.Options{
		Args:      []string{},
		EnvPrefix: validator.Some("BEHOLDERDOT"),
		DotEnv:    validator.Some("testdata/test.env"),
		File:      validator.Some(false),
		Defaults:  validator.Some("testdata/defaults.json"),
	})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", store.GetString("region"))
	assert.Equal(t, "quoted name", store.GetString("name"))

	_, err = config.Init(&config.Options{
		Args:   []string{},
		DotEnv: validator.Some(filepath.Join(t.TempDir(), "missing.env")),
	})
	assert.NoError(t, err, "missing dotenv file is ignored")
}

type appConfig struct {
	ID   int    `mapstructure:"id" validate:"gte=0"`
	Name string `mapstructure:"name" validate:"required"`
	Log  struct {
		Timestamp bool `mapstructure:"timestamp"`
	} `mapstructure:"log"`
}

type logConfig struct {
	Console bool   `mapstructure:"console"`
	File    string `mapstructure:"file" validate:"required"`
}

func TestStore_Decode(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{
		Args:     []string{"--id", "9"},
		File:     validator.Some("testdata/config.json"),
		Defaults: validator.Some("testdata/defaults.json"),
	})
	require.NoError(t, err)

	var cfg appConfig
	require.NoError(t, store.Decode(&cfg))
	assert.Equal(t, 9, cfg.ID)
	assert.Equal(t, "from-config", cfg.Name)
	assert.True(t, cfg.Log.Timestamp)

	settings := map[string]any{}
	require.NoError(t, store.Decode(&settings))
	assert.Contains(t, settings, "region")

	assert.ErrorIs(t, store.Decode(nil), config.ErrNilPointer)
	assert.ErrorIs(t, store.DecodeKey("log", nil), config.ErrNilPointer)
}

func TestStore_DecodeValidation(t *testing.T) {
	t.Parallel()

	store, err := config.Init(&config.Options{
		Args:     []string{"--id=-1"},
		File:     validator.Some(false),
		Defaults: validator.Some(false),
	})
	require.NoError(t, err)

	var cfg appConfig
	err = store.Decode(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	yamlStore, err := config.Init(&config.Options{
		Args:     []string{},
		File:     validator.Some("testdata/config.yaml"),
		Defaults: validator.Some(false),
	})
	require.NoError(t, err)

	var lc logConfig
	require.NoError(t, yamlStore.DecodeKey("log", &lc))
	assert.Equal(t, "/var/log/beholder.log", lc.File)
	assert.False(t, lc.Console)

	jsonStore, err := config.Init(&config.Options{
		Args:     []string{},
		File:     validator.Some("testdata/config.json"),
		Defaults: validator.Some(false),
	})
	require.NoError(t, err)
	err = jsonStore.DecodeKey("log", &logConfig{})
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestStore_LookupTypesEnvValues(t *testing.T) {
	t.Setenv("BEHOLDERTYPED_ID", "7")
	t.Setenv("BEHOLDERTYPED_LOG_CONSOLE", "false")
	t.Setenv("BEHOLDERTYPED_LOG_COLORIZE", "true")
	t.Setenv("BEHOLDERTYPED_NAME", "from-env")
	t.Setenv("BEHOLDERTYPED_REGION", "-1.5")

	store, err := config.Init(&config.Options{
		Args:      []string{"--log.colorize=off"},
		EnvPrefix: validator.Some("BEHOLDERTYPED"),
		File:      validator.Some("testdata/config.json"),
		Defaults:  validator.Some("testdata/defaults.json"),
	})
	require.NoError(t, err)

	tests := []struct {
		key  string
		want any
	}{
		{"id", 7},
		{"log:console", false},
		{"name", "from-env"},
		{"region", "-1.5"},
		{"log:colorize", "off"},
		{"log:timestamp", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := store.Lookup(tt.key).Get()
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	assert.Equal(t, "7", store.Get("id"), "Get returns the raw layer value")
}

func TestStore_LookupWithoutEnvLayerKeepsStrings(t *testing.T) {
	t.Setenv("BEHOLDERRAW_ID", "7")

	store, err := config.Init(&config.Options{
		Args:     []string{"--name", "true-ish"},
		File:     validator.Some("testdata/config.yaml"),
		Defaults: validator.Some(false),
	})
	require.NoError(t, err)

	v, _ := store.Lookup("id").Get()
	assert.Equal(t, 12, v)
	v, _ = store.Lookup("name").Get()
	assert.Equal(t, "true-ish", v)
}
