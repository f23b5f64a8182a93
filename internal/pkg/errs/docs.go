// Package errs provides standardized error types for the freightflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error categories of the BOL workflow:
//   - ValueIsRequiredError: a required submission or approval field is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a submission or notification cannot be found
//   - NotAuthorizedError: the acting broker does not own the submission
//   - GatewayError: the outbound messaging gateway rejected or failed a delivery
//   - InvariantViolationError: an operation would break a workflow invariant,
//     such as generating a second invoice for the same submission
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// transport-level mapping (HTTP status codes, logging) out of the domain layer.
package errs
