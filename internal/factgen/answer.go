package factgen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when learner input is not a base-10 integer.
var ErrNotANumber = errors.New("answer is not a whole number")

// ParseAnswer normalizes learner input into an integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored ("007" is 7)
// - A leading sign is accepted
func ParseAnswer(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNotANumber
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}
