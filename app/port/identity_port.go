package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// IdentityStore defines access to the external identity provider. Email
// uniqueness is enforced by the store of record; a duplicate create
// surfaces as domain.ErrDuplicateAccount.
type IdentityStore interface {
	CreateIdentity(ctx context.Context, input domain.IdentityInput) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
