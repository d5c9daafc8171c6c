// Package errs provides standardized error types shared across the marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error chain support
//
// Domain-specific error kinds (insufficient stock, illegal transitions, and so on)
// are defined in their owning domain packages using the same idiom.
package errs
