package matrix

import "errors"

// Sentinel errors for package matrix.
var (
	// ErrInvalidDimensions indicates a requested shape has a negative dimension.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the matrix shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two operands have incompatible shapes for
	// the requested operation (Or requires identical shapes; Mul requires
	// a.Cols == b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil receiver or nil operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
