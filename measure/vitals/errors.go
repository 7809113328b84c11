package vitals

import "errors"

var (
	// ErrInvalidCount is returned for a non-positive sample count.
	ErrInvalidCount = errors.New("vitals: sample count must be > 0")
	// ErrShortInput is returned when a channel holds fewer samples than count.
	ErrShortInput = errors.New("vitals: channel shorter than sample count")
	// ErrInvalidConfig is returned by NewEstimator for unusable settings.
	ErrInvalidConfig = errors.New("vitals: invalid config")
)
