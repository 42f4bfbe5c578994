package level

import "errors"

var (
	ErrPointNotFound     = errors.New("saved point not found")
	ErrDimensionMismatch = errors.New("vector length does not match level dimension")
	ErrInvalidDimension  = errors.New("dimension must be at least 1")
	ErrInvalidRange      = errors.New("sampling range must satisfy min < max")
	ErrInvalidTrials     = errors.New("trial count must be at least 1")
	ErrNilModel          = errors.New("model is nil")
)
