package park

import "errors"

// Sentinel errors for registry operations. Their texts are protocol
// output, printed verbatim on stdout including the final period, so they
// deliberately break the usual lowercase-no-punctuation convention.
// Callers wrap them with the offending name or value:
//
//	lisboa: parking already exists.
//	-5: invalid capacity.
var (
	ErrParkExists      = errors.New("parking already exists.")
	ErrInvalidCapacity = errors.New("invalid capacity.")
	ErrInvalidTariff   = errors.New("invalid cost.")
	ErrTooManyParks    = errors.New("too many parks.")
	ErrNoSuchPark      = errors.New("no such parking.")
)
