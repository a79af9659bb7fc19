package track

import "errors"

var (
	ErrTooFewPoints  = errors.New("waypoint loop needs at least 2 points")
	ErrInvalidFactor = errors.New("upsample factor must be positive")
	ErrUnknownMode   = errors.New("unknown selection mode")
	ErrNoTrack       = errors.New("no drivable surface found in track image")
)
