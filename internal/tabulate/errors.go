package tabulate

import "errors"

var (
	// ErrUnsupportedInput is returned when the input is neither a result
	// collection nor a flat list of records.
	ErrUnsupportedInput = errors.New("unsupported input type")

	// ErrUnsupportedMode is returned for a mode that is not one of the
	// known variants.
	ErrUnsupportedMode = errors.New("unsupported tabulate mode")

	// ErrBackendUnavailable is returned when no rendering backend is set.
	ErrBackendUnavailable = errors.New("table rendering backend unavailable")

	// ErrRenderFailed wraps errors returned by the rendering backend.
	ErrRenderFailed = errors.New("table rendering failed")
)
