package types

import (
	"errors"
	"fmt"
)

// UnauthorizedError is returned when the message sender does not match the
// principal configured for the operation.
type UnauthorizedError struct {
	Sender string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized sender %s", e.Sender)
}

func IsUnauthorizedError(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}

// UninitializedError is returned when the config or state record is read
// before the contract has been initialized.
type UninitializedError struct {
	Record string
}

func (e *UninitializedError) Error() string {
	return fmt.Sprintf("%s record is not initialized", e.Record)
}

func IsUninitializedError(err error) bool {
	var target *UninitializedError
	return errors.As(err, &target)
}

// InvalidStateError is returned when an operation precondition on the state
// record does not hold.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

func IsInvalidStateError(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

// ArithmeticUnderflowError is returned by checked subtractions when the
// result would be negative. It signals a balance accounting inconsistency
// and is never clamped away.
type ArithmeticUnderflowError struct {
	Minuend    string
	Subtrahend string
}

func (e *ArithmeticUnderflowError) Error() string {
	return fmt.Sprintf("arithmetic underflow: %s - %s", e.Minuend, e.Subtrahend)
}

func IsArithmeticUnderflowError(err error) bool {
	var target *ArithmeticUnderflowError
	return errors.As(err, &target)
}

// InvalidAmountError is returned for a non-positive transfer request.
type InvalidAmountError struct {
	Amount string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s", e.Amount)
}

func IsInvalidAmountError(err error) bool {
	var target *InvalidAmountError
	return errors.As(err, &target)
}
