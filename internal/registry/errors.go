package registry

import (
	"errors"
	"net/http"
)

// Registry errors.
var (
	ErrNotFound       = errors.New("route not found")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrInvalidRoute   = errors.New("invalid route")
	ErrUnknownSet     = errors.New("unknown route set")
	ErrUnknownSection = errors.New("unknown section")
)

// MapHTTPStatus maps registry errors to HTTP status codes.
// Anything that is not a lookup miss is a server fault.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
