package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrContract is matched by every ContractError: the caller misused the API.
	ErrContract = errors.New("validator contract violated")

	// ErrValidation is matched by ValidationError and ValidationErrors: a
	// supplied value failed a well-formed predicate.
	ErrValidation = errors.New("validation failed")
)

// ContractError reports a programming mistake at the call site, such as
// resolving with neither value nor default, or passing a malformed predicate.
type ContractError struct {
	Field   string
	Message string
}

func newContractError(field, msg string) *ContractError {
	return &ContractError{Field: field, Message: msg}
}

func (e *ContractError) Error() string {
	if e.Field == "" {
		return "validator: " + e.Message
	}
	return fmt.Sprintf("validator: %s: %s", e.Field, e.Message)
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// ValidationError reports a present value rejected by its predicate.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s (value: %v)", e.Message, e.Value)
	}
	return fmt.Sprintf("validation failed: %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsContractError reports whether err stems from API misuse.
func IsContractError(err error) bool {
	return errors.Is(err, ErrContract)
}
