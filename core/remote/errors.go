package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotActivated is returned when no license key is configured.
	ErrNotActivated = errors.New("license is not activated")
	// ErrTimeout is returned when the backend does not answer in time.
	ErrTimeout = errors.New("request timed out, please retry")
	// ErrUnreachable is returned for connection level failures.
	ErrUnreachable = errors.New("network connection failed, check your network")
)

// DefaultNotFoundMessage is used when the backend rejects a search without a message.
const DefaultNotFoundMessage = "no code found"

// RemoteError is a request the backend answered with success=false or an
// unexpected status.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status != 0 && e.Status != http.StatusOK {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return e.Message
}

// HTTPStatus maps a client error onto the status the API answers with.
func HTTPStatus(err error) int {
	var remoteErr *RemoteError
	switch {
	case errors.Is(err, ErrNotActivated):
		return http.StatusForbidden
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUnreachable):
		return http.StatusBadGateway
	case errors.As(err, &remoteErr):
		switch {
		case remoteErr.Status == http.StatusUnauthorized, remoteErr.Status == http.StatusForbidden:
			return http.StatusForbidden
		case remoteErr.Status >= 500, remoteErr.Status == http.StatusTooManyRequests:
			return http.StatusBadGateway
		}
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
