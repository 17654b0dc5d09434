package validator

import (
	"fmt"
	"sort"
	"strings"
)

type predicateKind uint8

const (
	kindNone predicateKind = iota
	kindFunc
	kindTag
)

// Predicate decides whether a present value is acceptable.
// The zero value requests no validation.
type Predicate struct {
	kind predicateKind
	fn   func(any) bool
	tag  string
	desc string
}

// Func wraps a boolean check. A nil fn yields a malformed predicate that
// Resolve rejects with a ContractError.
func Func(fn func(any) bool) Predicate {
	return Predicate{kind: kindFunc, fn: fn, desc: "predicate"}
}

// Type returns a predicate that holds when TypeOf(v) equals tag exactly.
// Unknown tags are accepted and match nothing.
func Type(tag string) Predicate {
	return Predicate{kind: kindTag, tag: tag, desc: "type " + tag}
}

// TypeOrFalse holds when v is the literal false or has the given type.
func TypeOrFalse(tag string) Predicate {
	return Predicate{
		kind: kindFunc,
		fn: func(v any) bool {
			return isFalse(v) || TypeOf(v) == tag
		},
		desc: "false or type " + tag,
	}
}

// From converts a loosely typed predicate description into a Predicate.
// It accepts nil (no validation), a Predicate, a func(any) bool or a type
// tag string. Anything else is a ContractError.
func From(p any) (Predicate, error) {
	switch v := p.(type) {
	case nil:
		return Predicate{}, nil
	case Predicate:
		return v, nil
	case func(any) bool:
		if v == nil {
			return Predicate{}, newContractError("", "predicate function is nil")
		}
		return Func(v), nil
	case string:
		return Type(v), nil
	default:
		return Predicate{}, newContractError("", fmt.Sprintf("predicate has invalid shape: %T", p))
	}
}

// MustFrom is like From but panics on a malformed description.
func MustFrom(p any) Predicate {
	pred, err := From(p)
	if err != nil {
		panic(err)
	}
	return pred
}

// IsSet reports whether the predicate requests any validation.
func (p Predicate) IsSet() bool {
	return p.kind != kindNone
}

// Check applies the predicate to v.
func (p Predicate) Check(v any) (bool, error) {
	switch p.kind {
	case kindNone:
		return true, nil
	case kindTag:
		return TypeOf(v) == p.tag, nil
	case kindFunc:
		if p.fn == nil {
			return false, newContractError("", "predicate function is nil")
		}
		return p.fn(v), nil
	default:
		return false, newContractError("", "predicate has invalid shape")
	}
}

func (p Predicate) String() string {
	if p.kind == kindNone {
		return "none"
	}
	return p.desc
}

// Schema maps property names to the type tag each property must have.
type Schema map[string]string

func (s Schema) names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Schema) String() string {
	names := s.names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+s[name])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FalseOrObject holds when v is the literal false, or when v is an object
// that carries every property of schema with the declared type. An empty
// schema accepts any object.
func FalseOrObject(schema Schema) Predicate {
	fields := make(Schema, len(schema))
	for name, tag := range schema {
		fields[name] = tag
	}
	names := fields.names()

	return Predicate{
		kind: kindFunc,
		fn: func(v any) bool {
			if isFalse(v) {
				return true
			}
			if TypeOf(v) != TagObject {
				return false
			}
			for _, name := range names {
				prop, ok := property(v, name)
				if !ok {
					if fields[name] != TagUndefined {
						return false
					}
					continue
				}
				if TypeOf(prop) != fields[name] {
					return false
				}
			}
			return true
		},
		desc: "false or object " + fields.String(),
	}
}
