// Package errs provides standardized error types for the gestion service.
// Every error type follows the same shape so handlers can classify failures
// with errors.Is / errors.As without string matching:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Available types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a business rule
//   - ValueIsOutOfRangeError: a value is outside [min, max]
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - AccessDeniedError: the principal lacks a capability
package errs
