package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as unwrap targets for errors.Is checks.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrPaymentDeclined    = errors.New("payment declined")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that an object could not be located in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates an illegal order status transition attempt.
// Callers receiving this error must re-fetch the current state before retrying.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given states.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError with an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PersistenceError indicates that the order store was unreachable or timed out.
// The outcome of the attempted write is unknown; it must never be treated as
// success or failure without re-reading the stored state.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError creates a PersistenceError for the given operation and cause.
func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s, outcome unknown (cause: %s)", ErrPersistenceFailure, e.Operation, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s, outcome unknown", ErrPersistenceFailure, e.Operation)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailure
}

// PaymentDeclinedError indicates that the payment provider rejected a charge.
// The order stays pending so the customer can retry payment.
type PaymentDeclinedError struct {
	Reference string
	Cause     error
}

// NewPaymentDeclinedError creates a PaymentDeclinedError with the provider reference, if any.
func NewPaymentDeclinedError(reference string) *PaymentDeclinedError {
	return &PaymentDeclinedError{Reference: reference}
}

// NewPaymentDeclinedErrorWithCause creates a PaymentDeclinedError with an underlying cause.
func NewPaymentDeclinedErrorWithCause(reference string, cause error) *PaymentDeclinedError {
	return &PaymentDeclinedError{Reference: reference, Cause: cause}
}

func (e *PaymentDeclinedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: reference is: %s (cause: %s)", ErrPaymentDeclined, e.Reference, sanitize(e.Cause))
	}
	if e.Reference == "" {
		return ErrPaymentDeclined.Error()
	}
	return fmt.Sprintf("%s: reference is: %s", ErrPaymentDeclined, e.Reference)
}

func (e *PaymentDeclinedError) Unwrap() error {
	return ErrPaymentDeclined
}
