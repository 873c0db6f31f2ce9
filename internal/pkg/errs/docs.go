// Package errs holds the error vocabulary shared by the load planner layers.
//
// Every kind comes as a sentinel plus a struct carrying the details:
//   - ValueIsRequiredError wraps ErrValueIsRequired
//   - ValueIsInvalidError wraps ErrValueIsInvalid
//   - ValueIsOutOfRangeError wraps ErrValueIsOutOfRange
//   - ObjectNotFoundError wraps ErrObjectNotFound
//   - VersionIsInvalidError wraps ErrVersionIsInvalid
//
// Callers classify with errors.Is against the sentinel; the HTTP adapter maps
// not-found to 404 and the value errors to 400.
package errs
