package report

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks caller errors: a bad N, an unknown age bucket,
	// an unknown mode or report. Never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataUnavailable marks a store that could not be reached or did not
	// answer in time. Callers render it as an empty result.
	ErrDataUnavailable = errors.New("data unavailable")
)

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
