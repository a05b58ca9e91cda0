package domain

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"
)

// Identity is a reference to a login credential owned by the external
// identity provider. The credential secret itself is write-only: it is
// handed to the provider at creation time and never stored, logged, or
// returned by this service.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// IdentityInput carries the fields needed to create an identity.
type IdentityInput struct {
	Email      string
	Credential string
	FullName   string
}

// Validate checks the input shape. Credential strength is enforced by the
// request validator at the service boundary; this is a last-line check.
func (in IdentityInput) Validate() error {
	if in.Email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	if in.Credential == "" {
		return fmt.Errorf("credential is required")
	}
	return nil
}
