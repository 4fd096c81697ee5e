package codec

import (
	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// Validate checks v against its `validate` struct tags. The returned
// error is the validator's own, so callers keep field-level detail.
// Non-struct values and structs without tags pass.
func Validate(v any) error {
	err := structValidator.Struct(v)
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return nil
	}
	return err
}
