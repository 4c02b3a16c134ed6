package error

import (
	"errors"
	"net"
	"strings"
)

// ApiError propagates the HTTP status returned by a remote customization source.
type ApiError struct {
	Source     string
	StatusCode int
	Msg        string
}

func (e *ApiError) Error() string {
	if e.Source == "" {
		return e.Msg
	}

	return e.Msg + " (" + e.Source + ")"
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"eof",
		"connection reset by peer",
		"dial tcp",
		"tls handshake",
		"context deadline exceeded",
		"operation canceled",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsConnectionError(unwrapped)
	}

	return false
}

// IsServerError checks if an error is related to a server error (5xx)
func IsServerError(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}

	return false
}

// IsTransient reports whether a failed fetch should keep the previous customization
// instead of surfacing the error.
func IsTransient(err error) bool {
	return IsConnectionError(err) || IsServerError(err)
}
