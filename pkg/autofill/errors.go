package autofill

import "errors"

var (
	// ErrInvalidCommitteeID is returned when a committee id is not of the form "ocd-organization/<uuid>".
	ErrInvalidCommitteeID = errors.New("autofill: invalid committee id")

	// ErrEmptyLabel is returned when a label produces no slug characters.
	ErrEmptyLabel = errors.New("autofill: label has no slug characters")
)
