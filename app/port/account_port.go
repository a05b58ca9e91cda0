package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go -package=mocks

import (
	"context"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// AccountUsecase defines the public provisioning entry point
type AccountUsecase interface {
	ProvisionAccount(ctx context.Context, req *domain.ProvisionAccountRequest) (*domain.ProvisioningResult, error)
	GetInstitution(ctx context.Context, institutionID uuid.UUID) (*domain.Institution, error)
}

// SubscriptionUsecase defines the subscription lifecycle entry points
type SubscriptionUsecase interface {
	Activate(ctx context.Context, req *domain.ActivationRequest) (*domain.ActivationOutcome, error)
	Cancel(ctx context.Context, institutionID uuid.UUID) error
	Expire(ctx context.Context, institutionID uuid.UUID) error
	ExpireLapsed(ctx context.Context, limit int) (int, error)
}
