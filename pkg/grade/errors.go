package grade

import "errors"

var (
	// ErrInvalidGrade is returned when a string is not a letter grade such as "A", "B+" or "C-".
	ErrInvalidGrade = errors.New("grade: invalid letter grade")

	// ErrUnknownClass is returned when a valid grade has no rating class.
	ErrUnknownClass = errors.New("grade: no rating class for grade")
)
