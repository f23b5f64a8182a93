package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each category. Use errors.Is against these to classify
// a failure without depending on the concrete error struct.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrGatewayFailure     = errors.New("gateway failure")
	ErrInvariantViolation = errors.New("invariant violation")
)

// sanitize strips newlines from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required field is missing.
// ParamName identifies the missing field so callers can correct and resubmit.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value is present but does not satisfy
// validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotAuthorizedError indicates the acting party is not allowed to perform the
// operation, for example a broker approving a submission that belongs to a
// different broker. No state mutation happens when this error is returned.
type NotAuthorizedError struct {
	Operation string
	ActorID   string
	Cause     error
}

func NewNotAuthorizedError(operation, actorID string) *NotAuthorizedError {
	return &NotAuthorizedError{Operation: operation, ActorID: actorID}
}

func NewNotAuthorizedErrorWithCause(operation, actorID string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Operation: operation, ActorID: actorID, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("not authorized: %s by %s (cause: %s)",
			e.Operation, sanitize(e.ActorID), sanitize(e.Cause))
	}
	return fmt.Sprintf("not authorized: %s by %s", e.Operation, sanitize(e.ActorID))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// GatewayError indicates the outbound messaging gateway failed to deliver.
// Delivery failures are recorded on the notification and never reverse
// committed workflow state.
type GatewayError struct {
	Gateway string
	Cause   error
}

func NewGatewayError(gateway string) *GatewayError {
	return &GatewayError{Gateway: gateway}
}

func NewGatewayErrorWithCause(gateway string, cause error) *GatewayError {
	return &GatewayError{Gateway: gateway, Cause: cause}
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway failure: %s (cause: %s)", e.Gateway, sanitize(e.Cause))
	}
	return fmt.Sprintf("gateway failure: %s", e.Gateway)
}

func (e *GatewayError) Unwrap() error {
	return ErrGatewayFailure
}

// InvariantViolationError indicates an operation would break a workflow
// invariant. It is returned before any mutation takes place.
type InvariantViolationError struct {
	Invariant string
	Cause     error
}

func NewInvariantViolationError(invariant string) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant}
}

func NewInvariantViolationErrorWithCause(invariant string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invariant violation: %s (cause: %s)", e.Invariant, sanitize(e.Cause))
	}
	return fmt.Sprintf("invariant violation: %s", e.Invariant)
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
