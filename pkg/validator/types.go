package validator

import "reflect"

// Type tags understood by Type, TypeOrFalse and FalseOrObject.
const (
	TagBoolean   = "boolean"
	TagString    = "string"
	TagNumber    = "number"
	TagObject    = "object"
	TagFunction  = "function"
	TagUndefined = "undefined"
)

// TypeOf returns the type tag of v.
//
// Every integer, unsigned and float kind is "number". Maps, structs, slices,
// arrays, pointers, channels and nil are all "object". An absent Optional is
// "undefined"; a present one reports the tag of its value.
func TypeOf(v any) string {
	if v == nil {
		return TagObject
	}
	if o, ok := v.(Optional); ok {
		if !o.set {
			return TagUndefined
		}
		return TypeOf(o.value)
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return TagBoolean
	case reflect.String:
		return TagString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Func:
		return TagFunction
	default:
		return TagObject
	}
}

// isFalse reports whether v is the literal boolean false.
func isFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}
