package accounts

import "errors"

var (
	// ErrDuplicateAccount is returned by Add when the id is already registered.
	ErrDuplicateAccount = errors.New("duplicate account")

	// ErrIndexOutOfRange is returned by SetCurrent for an index outside [0, len).
	ErrIndexOutOfRange = errors.New("account index out of range")

	// ErrAccountNotFound is returned when no account matches the given id.
	ErrAccountNotFound = errors.New("account not found")
)
