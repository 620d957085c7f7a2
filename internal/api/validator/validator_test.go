package validator_test

import (
	"testing"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/api/validator"
)

type phoneOnly struct {
	Phone string `validate:"required,phone"`
}

func TestXValidator_PhoneTag(t *testing.T) {
	xv := validator.NewXValidator(gpvalidator.New())

	t.Run("accepts E.164 style numbers", func(t *testing.T) {
		for _, phone := range []string{"+1234567890", "1234567890", "+491711234567"} {
			errs := xv.Validate(phoneOnly{Phone: phone})
			assert.Empty(t, errs, "expected %q to validate", phone)
		}
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, phone := range []string{"", "abc", "+0123", "12345", "+1 (555) 000"} {
			errs := xv.Validate(phoneOnly{Phone: phone})
			assert.NotEmpty(t, errs, "expected %q to fail", phone)
		}
	})
}
