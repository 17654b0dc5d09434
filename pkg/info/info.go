package info

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wnr/beholder/pkg/validator"
)

//go:embed component.yaml
var manifest []byte

// KeyID is the config key holding the component identifier.
const KeyID = "id"

// DefaultID is used when the config does not set KeyID.
const DefaultID = 0

// Metadata is a parsed component manifest.
type Metadata struct {
	name    any
	version any
}

type rawManifest struct {
	Name    any `yaml:"name"`
	Version any `yaml:"version"`
}

// Load parses a component manifest. Fields are type-checked lazily by Name
// and Version.
func Load(data []byte) (Metadata, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Metadata{}, errors.Join(ErrInvalidManifest, err)
	}
	return Metadata{name: raw.Name, version: raw.Version}, nil
}

var embedded = sync.OnceValues(func() (Metadata, error) {
	return Load(manifest)
})

// Name returns the manifest name.
func (m Metadata) Name() (string, error) {
	name, err := validator.ResolveAs[string](validator.Some(m.name), validator.None(), validator.Type(validator.TagString))
	if err != nil {
		return "", errors.Join(ErrInvalidName, err)
	}
	return name, nil
}

var stringOrNumber = validator.Func(func(v any) bool {
	t := validator.TypeOf(v)
	return t == validator.TagString || t == validator.TagNumber
})

// Version returns the manifest version. With numerical set a leading "v" is
// stripped. Numeric versions are formatted as written.
func (m Metadata) Version(numerical bool) (string, error) {
	v, err := validator.Resolve(validator.Some(m.version), validator.None(), stringOrNumber)
	if err != nil {
		return "", errors.Join(ErrInvalidVersion, err)
	}
	version, ok := v.(string)
	if !ok {
		return fmt.Sprint(v), nil
	}
	if numerical {
		version = strings.TrimPrefix(version, "v")
	}
	return version, nil
}

// Name returns the name of the running component.
func Name() (string, error) {
	m, err := embedded()
	if err != nil {
		return "", err
	}
	return m.Name()
}

// Version returns the version of the running component.
func Version(numerical bool) (string, error) {
	m, err := embedded()
	if err != nil {
		return "", err
	}
	return m.Version(numerical)
}

// Source is a read-only key lookup, satisfied by *config.Store.
type Source interface {
	Lookup(key string) validator.Optional
}

// ID returns the component identifier configured under KeyID, or DefaultID
// when it is unset. The value must be a number.
func ID(src Source) (any, error) {
	value := validator.None()
	if src != nil {
		value = src.Lookup(KeyID)
	}
	id, err := validator.Resolve(value, validator.Some(DefaultID), validator.Type(validator.TagNumber))
	if err != nil {
		return nil, errors.Join(ErrInvalidID, err)
	}
	return id, nil
}
