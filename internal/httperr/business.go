package httperr

import "errors"

// Error codes shared across the use-case layer. Handlers translate them to
// HTTP responses; everything else compares with IsBusiness.
const (
	CodeBarberNotFound       = "barber_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeReviewNotFound       = "review_not_found"
	CodeServiceNotFound      = "service_not_found"
	CodeInvalidDateOrTime    = "invalid_date_or_time"
	CodePastDate             = "past_date"
	CodeSlotConflict         = "slot_conflict"
	CodeInvalidTransition    = "invalid_transition"
	CodeForbidden            = "forbidden"
	CodeDuplicateReview      = "duplicate_review"
	CodeAlreadyPaid          = "already_paid"
	CodeVerificationFailed   = "verification_failed"
	CodeProfileAlreadyExists = "profile_already_exists"
	CodeNotRateable          = "not_rateable"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
