package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks transport failures where no response was received.
	ErrNetwork = errors.New("network unavailable")

	// ErrUnauthorized marks 401/403 responses: the credential is invalid
	// or has been revoked.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDecode marks responses that arrived but could not be decoded.
	ErrDecode = errors.New("malformed response")
)

// RemoteError is a non-2xx response other than 401/403. The raw body is kept
// for diagnostics.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: status %d", e.Status)
}
