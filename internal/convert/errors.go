package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned when a positional base is below 2
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidDigit is returned when a digit is negative or not below the base
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrOutOfRange is returned when a decimal value is outside the supported domain
	ErrOutOfRange = errors.New("value out of range")
)

// DigitError describes the offending digit of a row
type DigitError struct {
	Row   int
	Col   int
	Digit int
	Base  int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%v: digit %d at row %d, column %d is not valid in base %d",
		ErrInvalidDigit, e.Digit, e.Row, e.Col, e.Base)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}

// RangeError describes a decimal value outside [Min, Max]
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d is outside the range %d-%d", ErrOutOfRange, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
