// Package errs provides the typed errors shared by the shop floor application.
//
// Three error kinds reach callers:
//   - input errors (ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError),
//     recognised together by IsInvalidInput
//   - ObjectNotFoundError for unknown products or orders
//   - TransitionIsInvalidError for order lifecycle transitions the state machine refuses
//
// Every type carries an optional Cause and unwraps to its sentinel, so callers
// classify errors with errors.Is against ErrValueIsInvalid, ErrObjectNotFound and the like.
package errs
