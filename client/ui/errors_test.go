package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cbodonnell/oblique/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionable(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		err     error
		message string
	}{
		{"invalid number", "Speed", fmt.Errorf("%w: %q", query.ErrInvalidNumber, "abc"), "Speed must be a number."},
		{"degenerate launch", "Launch", fmt.Errorf("angle 0: %w", query.ErrDegenerateLaunch), "Angle must be between 0 and 180 degrees and speed above zero."},
		{"invalid time", "Time", query.ErrInvalidTime, "Time must be zero or more seconds."},
		{"out of range", "Launch", fmt.Errorf("%w: speed +Inf", query.ErrOutOfRange), "Launch is too large to compute. Try a smaller speed."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Actionable(tt.field, tt.err)
			var actionable *ActionableError
			require.True(t, errors.As(err, &actionable))
			assert.Equal(t, tt.message, actionable.Message)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestActionable_Passthrough(t *testing.T) {
	assert.NoError(t, Actionable("Angle", nil))

	other := errors.New("boom")
	assert.Same(t, other, Actionable("Angle", other))
}
