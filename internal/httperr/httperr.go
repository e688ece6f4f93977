package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// statusByCode maps business error codes to their HTTP status. Codes not
// listed here fall back to 400.
var statusByCode = map[string]int{
	CodeBarberNotFound:      http.StatusNotFound,
	CodeAppointmentNotFound: http.StatusNotFound,
	CodeReviewNotFound:      http.StatusNotFound,
	CodeForbidden:           http.StatusForbidden,
	CodeSlotConflict:        http.StatusConflict,
}

var messageByCode = map[string]string{
	CodeBarberNotFound:       "Barber not found",
	CodeAppointmentNotFound:  "Appointment not found",
	CodeReviewNotFound:       "Review not found",
	CodeServiceNotFound:      "Requested service not found for this barber",
	CodeInvalidDateOrTime:    "Invalid appointment date or time",
	CodePastDate:             "Appointment date must be in the future",
	CodeSlotConflict:         "This time slot is already booked",
	CodeInvalidTransition:    "Status change not allowed from the current status",
	CodeForbidden:            "Not authorized to perform this action",
	CodeDuplicateReview:      "This appointment has already been reviewed",
	CodeAlreadyPaid:          "Payment already processed for this appointment",
	CodeVerificationFailed:   "Invalid payment verification",
	CodeProfileAlreadyExists: "Barber profile already exists",
	CodeNotRateable:          "Only completed appointments can be reviewed",
}

// WriteBusiness maps a use-case error to an HTTP response. Non-business
// errors become a generic 500 so store failures never leak details.
func WriteBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "server_error", "Server error")
		return
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg := be.Message
	if msg == "" {
		msg = messageByCode[be.Code]
	}

	Write(c, status, be.Code, msg)
}
