package dclgen

import "errors"

var (
	// ErrMissingDeclaration is returned when the input contains no
	// DECLARE ... TABLE statement.
	ErrMissingDeclaration = errors.New("no table declaration found")

	// ErrMissingDeclarationBlock is returned when a declare statement
	// exists but no matching ( ... ) END-EXEC region does.
	ErrMissingDeclarationBlock = errors.New("no SQL declaration block found")

	// ErrInvalidDecimalFormat is returned for a DEC/DECIMAL column
	// without a parenthesized precision.
	ErrInvalidDecimalFormat = errors.New("invalid decimal format")
)
