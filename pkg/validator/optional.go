package validator

import "fmt"

// Optional holds a value that may not have been supplied.
// The zero value is absent. A present false, 0, "" or nil is still present.
type Optional struct {
	value any
	set   bool
}

// Some wraps v as a present value.
func Some(v any) Optional {
	return Optional{value: v, set: true}
}

// None returns an absent value.
func None() Optional {
	return Optional{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Optional {
	if p == nil {
		return Optional{}
	}
	return Some(*p)
}

// IsSet reports whether the value was supplied.
func (o Optional) IsSet() bool {
	return o.set
}

// Get returns the wrapped value and whether it was supplied.
func (o Optional) Get() (any, bool) {
	return o.value, o.set
}

func (o Optional) String() string {
	if !o.set {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.value)
}
