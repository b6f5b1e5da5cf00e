package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when user supplied text is not a number.
var ErrInvalidNumber = errors.New("invalid number")

// ParseNumber parses free form numeric text such as a prompt answer or a
// query parameter.
func ParseNumber(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, trimmed)
	}
	return v, nil
}
