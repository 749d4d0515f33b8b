package matching

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("radius must be a positive number")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 20")
	ErrMissingSource      = errors.New("source location is required")
)
