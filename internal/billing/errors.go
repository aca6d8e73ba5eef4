package billing

import "errors"

var (
	// ErrPINotFound means the requested surname matched no PI row.
	ErrPINotFound = errors.New("pi not found")

	// ErrDuplicatePI means more than one PI row shares a surname. The
	// forms join users to PIs by surname alone, so this is a
	// configuration error in the form data.
	ErrDuplicatePI = errors.New("duplicate pi surname")

	// ErrUnknownPI means a user row references a surname with no PI row.
	ErrUnknownPI = errors.New("user references unknown pi")

	// ErrNegativeSeatIndex means the pricing rules were asked about a
	// negative power user seat. Seat numbering starts at zero.
	ErrNegativeSeatIndex = errors.New("negative power user seat index")
)
