// Package errs provides standardized error types for the brokerage backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found (or is hidden
//     from the caller by ownership scoping)
//   - InvalidTransitionError: for status changes not allowed by the entity's
//     state machine
//   - ForbiddenError: for operations the acting party lacks the capability for
//   - AlreadyTerminalError: for transitions attempted on terminal entities
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter maps these sentinels onto response status codes, so
// handlers and use cases never deal with HTTP semantics directly.
package errs
