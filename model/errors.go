package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a board is requested with rows or cols <= 0
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrShapeViolation is returned when ragged rows are handed to FromRows
	ErrShapeViolation = errors.New("board rows have unequal length")
	// ErrShapeMismatch is returned when two boards that must share a shape do not
	ErrShapeMismatch = errors.New("board shapes do not match")
	// ErrAliasedBoards is returned when a transition is asked to write into its own input
	ErrAliasedBoards = errors.New("source and destination are the same board")
)
