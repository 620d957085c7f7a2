package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// E.164-ish: optional +, no leading zero, 7 to 15 digits.
const phoneRegex = `^\+?[1-9]\d{6,14}$`

const (
	PhoneTag = "phone"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	PhoneTag: ValidatePhone,
}

func ValidatePhone(fl validator.FieldLevel) bool {
	return regexp.MustCompile(phoneRegex).MatchString(fl.Field().String())
}
