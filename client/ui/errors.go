package ui

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/oblique/pkg/query"
)

// ActionableError carries a message the user can act on from the input form.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}

// Actionable maps a failed launch or query to a message for the form.
// Errors it does not recognize are returned unchanged.
func Actionable(field string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, query.ErrInvalidNumber):
		return &ActionableError{Message: fmt.Sprintf("%s must be a number.", field)}
	case errors.Is(err, query.ErrDegenerateLaunch):
		return &ActionableError{Message: "Angle must be between 0 and 180 degrees and speed above zero."}
	case errors.Is(err, query.ErrOutOfRange):
		return &ActionableError{Message: "Launch is too large to compute. Try a smaller speed."}
	case errors.Is(err, query.ErrInvalidTime):
		return &ActionableError{Message: "Time must be zero or more seconds."}
	}
	return err
}
