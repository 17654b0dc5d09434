package validator

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// property looks up name on v. Methods are tried first, then map keys and
// struct fields after dereferencing pointers and interfaces. Each lookup
// tries name as given and with its first letter upper-cased, so a schema
// entry "log" matches a Log method or field.
func property(v any, name string) (any, bool) {
	if v == nil || name == "" {
		return nil, false
	}
	spellings := []string{name}
	if exported := exportedName(name); exported != name {
		spellings = append(spellings, exported)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	for _, n := range spellings {
		if m := rv.MethodByName(n); m.IsValid() {
			return m.Interface(), true
		}
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		for _, n := range spellings {
			val := rv.MapIndex(reflect.ValueOf(n).Convert(keyType))
			if val.IsValid() {
				return val.Interface(), true
			}
		}
	case reflect.Struct:
		for _, n := range spellings {
			f := rv.FieldByName(n)
			if f.IsValid() && f.CanInterface() {
				return f.Interface(), true
			}
		}
	}
	return nil, false
}

func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
