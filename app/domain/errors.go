package domain

import "errors"

// Provisioning errors
var (
	// ErrDuplicateAccount means the admin email is already bound to an
	// identity. Surfaced to the caller, never retried.
	ErrDuplicateAccount = errors.New("account already exists for this email")

	// Per-step saga failures. The saga attempts compensation before
	// surfacing these.
	ErrIdentityCreationFailed    = errors.New("identity creation failed")
	ErrInstitutionCreationFailed = errors.New("institution creation failed")
	ErrProfileCreationFailed     = errors.New("profile creation failed")

	ErrWeakCredential = errors.New("credential does not meet strength requirements")
)

// Subscription errors
var (
	// ErrIllegalTransition marks a subscription status transition outside
	// the legal table. Programming or data error; fatal, not retried.
	ErrIllegalTransition = errors.New("illegal subscription transition")

	// ErrActivationFailed means both the remote confirmation path and the
	// direct-write fallback failed. Status is left unchanged; the caller
	// owns the retry policy.
	ErrActivationFailed = errors.New("subscription activation failed")
)

// Store errors
var (
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// Validation errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
)
