package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyMessage      = fmt.Errorf("message is empty")
	ErrInvalidOtpFormat  = fmt.Errorf("otp must be exactly 6 digits")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected http status")
	ErrInvalidPayload    = fmt.Errorf("invalid payload")
	ErrNoPendingAuth     = fmt.Errorf("no pending authentication found")
	ErrOtpMismatch       = fmt.Errorf("invalid OTP")
	ErrOtpExpired        = fmt.Errorf("OTP has expired")
	ErrUnknownExample    = fmt.Errorf("unknown example")
	ErrDispatcherStopped = fmt.Errorf("dispatcher stopped")
)

// MapToHTTPStatus converts a domain error into the status code the dev backend answers with.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrInvalidPayload), stderrors.Is(err, ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
