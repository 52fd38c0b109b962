// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For operations that contradict an object's current state
//   - AccessDeniedError: For authenticated actors the access policy rejects
//
// Each error type unwraps to a sentinel (ErrObjectNotFound, ErrForbidden, ...).
// The sentinels double as the failure taxonomy of the service: the HTTP
// transport maps them to status codes, so new failure kinds must wrap one
// of them rather than introduce ad-hoc strings.
package errs
