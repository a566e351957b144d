package credential

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"gopkg.in/go-playground/validator.v9"
)

const emailTag = "signin_email"

// local part of letters, digits, '.', '_', '-'; dotted domain labels; TLD of at least 2 chars
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	ret := validator.New()
	ret.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.ToLower(field.Name)
	})
	if err := ret.RegisterValidation(emailTag, isEmail); err != nil {
		panic(err)
	}
	return ret
}

func isEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// Validate returns a *ValidationError for the first field that is not
// acceptable. Only the email format is checked.
func (c *Credentials) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	field := fieldErrors[0].Field()
	if field == "email" {
		return &ValidationError{Field: field, Err: ErrInvalidEmail}
	}
	return &ValidationError{Field: field, Err: fmt.Errorf("failed %q check", fieldErrors[0].Tag())}
}

// ValidateEmail returns a *ValidationError when email is not acceptable.
func ValidateEmail(email string) error {
	return (&Credentials{Email: email}).Validate()
}
