package geometry

import "errors"

var (
	ErrZeroVector     = errors.New("vector has zero length")
	ErrLengthMismatch = errors.New("vectors have different lengths")
)
