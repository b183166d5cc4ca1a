package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lifecycle errors
	ErrMsgAlreadyInitialized = "contract already initialized"
	ErrMsgNotInitialized     = "contract not initialized"

	// Auth errors
	ErrMsgUnauthorized = "caller is not the admin"

	// Ledger errors
	ErrMsgDuplicateToken    = "duplicate token id"
	ErrMsgCharacterNotFound = "character not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lifecycle errors
	ErrAlreadyInitialized = errors.New(ErrMsgAlreadyInitialized)
	ErrNotInitialized     = errors.New(ErrMsgNotInitialized)

	// Auth errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Ledger errors
	// ErrDuplicateToken indicates a write-once violation in the character
	// table. It is unreachable under correct counter usage and is treated as
	// an internal-consistency defect, not a user-facing condition.
	ErrDuplicateToken    = errors.New(ErrMsgDuplicateToken)
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
