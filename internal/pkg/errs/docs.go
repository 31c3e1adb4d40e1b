// Package errs provides standardized error types for the fleet management application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: for when an object cannot be found by its identifier
//   - ValueIsInvalidError: for when a value is malformed
//   - ValueIsOutOfRangeError: for when a value falls outside its allowed bounds
//   - ValueIsRequiredError: for when a required value is missing
//   - InvalidTransitionError: for when a status state machine rule is violated
//   - InvalidStateError: for when a resource is in a state incompatible with a request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach lets the request layer map internal failures to
// distinguishable client responses without inspecting error strings.
package errs
