package port

//go:generate mockgen -source=institution_port.go -destination=../mocks/mock_institution_port.go -package=mocks

import (
	"context"
	"time"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// InstitutionStore defines institution data access
type InstitutionStore interface {
	Create(ctx context.Context, institution *domain.Institution) error
	GetByID(ctx context.Context, institutionID uuid.UUID) (*domain.Institution, error)
	Update(ctx context.Context, institution *domain.Institution) error
	Delete(ctx context.Context, institutionID uuid.UUID) error
	// ActivateIfInactive conditionally flips the subscription to active and
	// stamps the subscription window, only when the current status is not
	// already active. Returns false when the row was already active, so a
	// duplicate webhook delivery observes a no-op instead of a second
	// write.
	ActivateIfInactive(ctx context.Context, institutionID uuid.UUID, start, end time.Time) (bool, error)
	// ListLapsed returns active institutions whose subscription end has
	// passed, for the expiry sweep.
	ListLapsed(ctx context.Context, now time.Time, limit int) ([]*domain.Institution, error)
}
