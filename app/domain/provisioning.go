package domain

import (
	"github.com/google/uuid"
)

// ProvisionAccountRequest is the input for institution account provisioning
type ProvisionAccountRequest struct {
	InstitutionName string `json:"institution_name" validate:"required,min=2,max=200"`
	AdminEmail      string `json:"admin_email" validate:"required,email"`
	AdminFullName   string `json:"admin_full_name" validate:"required,min=2,max=100"`
	AdminCredential string `json:"admin_credential" validate:"required,password"`
}

// ProvisioningResult is returned to the caller after a successful
// provisioning run. It carries opaque identifiers only; the admin email
// is never echoed back.
type ProvisioningResult struct {
	InstitutionID      uuid.UUID          `json:"institution_id"`
	AdminIdentityID    uuid.UUID          `json:"admin_identity_id"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
}

// ActivationRequest drives the subscription activator after a payment
// confirmation. Idempotency is keyed on the order ID: repeated delivery of
// the same confirmation must not double-apply.
type ActivationRequest struct {
	OrderID       string    `json:"order_id" validate:"required,min=1,max=100"`
	InstitutionID uuid.UUID `json:"institution_id" validate:"required"`
}

// ActivationPath records which execution path committed the status write
type ActivationPath string

const (
	// ActivationPathNone means no write happened (idempotent no-op)
	ActivationPathNone ActivationPath = "none"
	// ActivationPathRemote means the remote confirmation endpoint applied it
	ActivationPathRemote ActivationPath = "remote"
	// ActivationPathDirect means the fallback conditional write applied it
	ActivationPathDirect ActivationPath = "direct"
)

// ActivationOutcome reports the result of one activation attempt
type ActivationOutcome struct {
	OrderID       string         `json:"order_id"`
	InstitutionID uuid.UUID      `json:"institution_id"`
	Path          ActivationPath `json:"path"`
}
