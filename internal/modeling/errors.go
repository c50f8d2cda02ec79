package modeling

import "errors"

var (
	// ErrInvalidBounds indicates a resize to a negative width or height.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrNoConnection indicates a connection command without a connection.
	ErrNoConnection = errors.New("no connection given")
)
