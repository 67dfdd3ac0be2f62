package episode

import "errors"

var (
	// ErrUnrecognized indicates no heuristic combination produced a complete identity.
	ErrUnrecognized = errors.New("unrecognized filename format")

	// ErrIncomplete indicates a destination was requested for a partial identity.
	ErrIncomplete = errors.New("incomplete episode identity")

	// ErrInvalidSeason indicates the captured season is not a usable integer.
	ErrInvalidSeason = errors.New("invalid season number")
)
