package settings

import "errors"

// StatusCode is the numeric result code shared with the rest of the
// application's error table.
type StatusCode uint32

const (
	// StatusSuccess is returned by operations that completed normally.
	StatusSuccess StatusCode = 0
	// StatusUnknownError is returned for failures outside the registry's
	// own error taxonomy.
	StatusUnknownError StatusCode = 1001
	// StatusInvalidConfiguration is returned for every registry failure:
	// missing or malformed settings files, invalid values and failed lookups.
	StatusInvalidConfiguration StatusCode = 1004
)

// CodeOf maps an error returned by the registry to its [StatusCode].
func CodeOf(err error) StatusCode {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrConfigurationFileNotFound),
		errors.Is(err, ErrConfigurationParseFailure),
		errors.Is(err, ErrInvalidConfigurationValue),
		errors.Is(err, ErrInvalidConfiguration):
		return StatusInvalidConfiguration
	default:
		return StatusUnknownError
	}
}
