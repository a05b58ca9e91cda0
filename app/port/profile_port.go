package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// ProfileStore defines profile data access. Upsert is keyed on the user ID
// so that a saga retry over a half-created profile converges instead of
// conflicting.
type ProfileStore interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
