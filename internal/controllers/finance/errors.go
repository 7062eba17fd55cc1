package finance

import (
	"errors"
	"net/http"

	"github.com/campusfin/backend/internal/models"
)

var (
	errAmountRequired = errors.New("the amount field must be set")
	errDateRequired   = errors.New("the date field must be set")
	errDateInvalid    = errors.New("the date must be a YYYY-MM-DD date or an RFC3339 timestamp")
	errMonthInvalid   = errors.New("the month must be in YYYY-MM format")
)

// status returns the appropriate HTTP status for a storage error.
//
// Validation failures respond with 400 directly in the handlers, so an
// error that reaches this point without a known sentinel is a
// server-side failure. This covers errors that bypass the gorm
// callbacks, e.g. a failing transaction begin.
func status(err error) int {
	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
