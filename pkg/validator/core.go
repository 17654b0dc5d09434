package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrors collects the validation failures of one Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule resolves a single named option.
type Rule struct {
	Field string
	run   func() error
}

// Bind resolves value against def and pred and stores the result in dst.
// dst is left untouched when resolution fails.
func Bind[T any](field string, dst *T, value, def Optional, pred Predicate) Rule {
	return Rule{
		Field: field,
		run: func() error {
			if dst == nil {
				return newContractError(field, "nil destination")
			}
			v, err := ResolveAs[T](value, def, pred)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
	}
}

// Apply runs every rule. Validation failures are collected into
// ValidationErrors; the first ContractError stops evaluation and is returned
// as is.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.run == nil {
			return newContractError(rule.Field, "rule has no resolver")
		}
		err := rule.run()
		if err == nil {
			continue
		}

		var cerr *ContractError
		if errors.As(err, &cerr) {
			if cerr.Field == "" {
				return newContractError(rule.Field, cerr.Message)
			}
			return cerr
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			failure := *verr
			if failure.Field == "" {
				failure.Field = rule.Field
			}
			errs.Add(failure)
			continue
		}
		return fmt.Errorf("%s: %w", rule.Field, err)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the validation failures carried by err,
// or nil when err is not a validation error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{*single}
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrValidation)
}
