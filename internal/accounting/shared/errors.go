package shared

import "errors"

var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.New("accounting: account not found")
	// ErrInvalidAccountID indicates a malformed or non-positive account id.
	ErrInvalidAccountID = errors.New("accounting: invalid account id")
	// ErrInvalidDate indicates a supplied date parameter that could not be parsed.
	ErrInvalidDate = errors.New("accounting: invalid date")
)
