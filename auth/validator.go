package auth

import (
	"hr-chat/errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "numeric" accepts signs and decimals, an OTP is exactly six ASCII digits
	_ = v.RegisterValidation("otp", func(fl validator.FieldLevel) bool {
		return otpPattern.MatchString(fl.Field().String())
	})
	return v
}

type MessageRequest struct {
	Text string `validate:"required"`
}

type OtpRequest struct {
	Code string `validate:"required,otp"`
}

// ValidateMessage rejects input that is blank once trimmed.
func ValidateMessage(text string) error {
	if err := validate.Struct(MessageRequest{Text: strings.TrimSpace(text)}); err != nil {
		return errors.ErrEmptyMessage
	}
	return nil
}

// ValidateOtpCode trims the code and checks it is six decimal digits.
// The trimmed code is returned so callers send exactly what was validated.
func ValidateOtpCode(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if err := validate.Struct(OtpRequest{Code: trimmed}); err != nil {
		return "", errors.ErrInvalidOtpFormat
	}
	return trimmed, nil
}
