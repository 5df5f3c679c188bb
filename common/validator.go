package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the validation tags declared on payload and returns
// the validator's error describing every failed field, or nil.
func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return err.(validator.ValidationErrors)
	}
	return nil
}
