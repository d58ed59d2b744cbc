package engine

import "errors"

// Domain errors for simulation runs.
var (
	// ErrInvalidDuration indicates a non-positive headless run duration.
	ErrInvalidDuration = errors.New("engine: duration must be positive")

	// ErrUnstable indicates the integration diverged (NaN or Inf position).
	ErrUnstable = errors.New("engine: simulation unstable (state diverged)")
)
