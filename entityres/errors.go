package entityres

import "errors"

// ErrInvalidShape indicates columns was an empty list.
var ErrInvalidShape = errors.New("entityres: columns must be a non-empty list")

// ErrColumnLengthMismatch indicates not every column has the same
// row count.
var ErrColumnLengthMismatch = errors.New("entityres: all columns must have the same length")

// ErrInvalidMinGroupSize indicates MinGroupSize was set below 1.
var ErrInvalidMinGroupSize = errors.New("entityres: min group size must be >= 1")
