package port

//go:generate mockgen -source=billing_port.go -destination=../mocks/mock_billing_port.go -package=mocks

import (
	"context"
)

// ActivationResult is the remote confirmation endpoint's verdict for an
// order. When Activated is true the billing provider has already applied
// the status write on its side.
type ActivationResult struct {
	Activated bool
	Reason    string
}

// BillingClient defines the primary activation path: the billing
// provider's order confirmation endpoint.
type BillingClient interface {
	ConfirmOrder(ctx context.Context, orderID string) (*ActivationResult, error)
}
