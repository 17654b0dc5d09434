package validator

import (
	"fmt"
	"reflect"
)

// Resolve returns value when it is present and accepted by pred, or def when
// value is absent. The default is trusted and never checked against pred.
//
// Both value and def absent, or a malformed pred, yield a *ContractError.
// A present value rejected by pred yields a *ValidationError carrying it.
func Resolve(value, def Optional, pred Predicate) (any, error) {
	v, ok := value.Get()
	if !ok {
		d, ok := def.Get()
		if !ok {
			return nil, newContractError("", "both value and default missing")
		}
		return d, nil
	}

	if !pred.IsSet() {
		return v, nil
	}

	valid, err := pred.Check(v)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, &ValidationError{
			Value:   v,
			Message: "value rejected by " + pred.String(),
		}
	}
	return v, nil
}

// ResolveAs is Resolve with the result asserted to T. A resolved value that
// is not a T is a *ValidationError.
func ResolveAs[T any](value, def Optional, pred Predicate) (T, error) {
	var zero T
	v, err := Resolve(value, def, pred)
	if err != nil {
		return zero, err
	}

	if v == nil && nillable(reflect.TypeOf((*T)(nil)).Elem()) {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ValidationError{
			Value:   v,
			Message: fmt.Sprintf("value of type %T is not %s", v, reflect.TypeOf((*T)(nil)).Elem()),
		}
	}
	return t, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
