// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy covers the failure modes of the order subsystem:
//   - ObjectNotFoundError: unknown order or menu item (HTTP 404)
//   - ValueIsInvalidError / ValueIsRequiredError: single malformed values (HTTP 400)
//   - ValidationError: accumulated cart/delivery violations (HTTP 400)
//   - InvalidTransitionError: status skip or regression (HTTP 400)
//   - StorageError: backend I/O failure (HTTP 500)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() so errors.Is works against the sentinel
package errs
