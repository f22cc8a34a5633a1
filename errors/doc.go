// Package errors provides structured error types for the membox library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the slot layout (size, alignment), the operation name,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAlloc, errors.KindExhausted).
//		Op("Alloc").
//		Layout(64, 8).
//		Detail("budget of %d bytes spent", budget).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Exhausted(64, 8, cause)
//	err := errors.UseAfterConsume("Into")
//
// All errors implement the standard error interface and support errors.Is/As.
// Contract violations (double free, use after consume) are raised as panics
// carrying an *Error value, since they signal bugs in the caller rather than
// recoverable runtime conditions.
package errors
