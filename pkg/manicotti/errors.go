package manicotti

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a screen or widget.
	// This is normal flow control, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized indicates a surface or widget was used before
	// Init brought up the SDL backend.
	ErrNotInitialized = errors.New("manicotti: Init has not been called")
)

// InfrastructureError represents a framework-level failure: SDL could not
// initialize, a font or theme failed to load, rendering broke. Consuming
// applications generally cannot recover from these at the flow level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "run", "load_theme")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manicotti: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("manicotti: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
