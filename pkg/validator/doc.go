// Package validator resolves caller-supplied options against defaults and
// checks them with small composable predicates.
//
// The central operation is Resolve: given an Optional value, an Optional
// default and a Predicate, it returns the value when it is present and
// accepted, or the default when the value was never supplied. Defaults are
// trusted and bypass the predicate.
//
// # Predicates
//
// A Predicate is one of:
//
//   - the zero value, which performs no validation,
//   - Func(fn), an arbitrary boolean check,
//   - Type(tag), an exact type-tag comparison.
//
// TypeOrFalse and FalseOrObject build predicates for options that may be
// switched off with the literal false. From accepts a loosely typed
// description (a func, a tag string or a Predicate) and rejects anything
// else, for code that receives predicates from configuration.
//
// # Type tags
//
// TypeOf maps Go values onto a small vocabulary: "boolean", "string",
// "number" (every integer and float kind), "function", "object" (nil, maps,
// structs, slices, arrays, pointers, channels) and "undefined" (an absent
// Optional or a missing property). Slices and maps are both "object".
//
// # Batch resolution
//
// Collaborators typically resolve a whole options struct at once:
//
//	var colorize bool
//	var file any
//	err := validator.Apply(
//	    validator.Bind("colorize", &colorize, opts.Colorize, validator.Some(true), validator.Type(validator.TagBoolean)),
//	    validator.Bind("file", &file, opts.File, validator.Some(false), validator.TypeOrFalse(validator.TagString)),
//	)
//
// # Error Handling
//
// Two failure kinds are kept apart. *ContractError (errors.Is ErrContract)
// means the call site is wrong: both value and default absent, or a
// malformed predicate. *ValidationError and ValidationErrors (errors.Is
// ErrValidation) mean a supplied value was rejected; they carry the value.
//
// Every function in the package is pure and safe for concurrent use.
package validator
