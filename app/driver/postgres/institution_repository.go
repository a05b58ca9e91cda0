package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InstitutionRepository handles institution operations in PostgreSQL
type InstitutionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewInstitutionRepository creates a new PostgreSQL institution repository
func NewInstitutionRepository(db DatabaseIface, logger *slog.Logger) port.InstitutionStore {
	return &InstitutionRepository{
		db:     db,
		logger: logger.With("component", "institution_repository"),
	}
}

// Create inserts a new institution row
func (r *InstitutionRepository) Create(ctx context.Context, institution *domain.Institution) error {
	query := `
		INSERT INTO institutions (
			id, name, contact_email, subscription_status,
			subscription_start, subscription_end, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.Exec(ctx, query,
		institution.ID,
		institution.Name,
		institution.ContactEmail,
		institution.SubscriptionStatus,
		institution.SubscriptionStart,
		institution.SubscriptionEnd,
		institution.CreatedAt,
		institution.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create institution", "institution_id", institution.ID, "error", err)
		return fmt.Errorf("failed to create institution: %w", err)
	}

	r.logger.Info("institution created", "institution_id", institution.ID)
	return nil
}

// GetByID retrieves an institution by ID
func (r *InstitutionRepository) GetByID(ctx context.Context, institutionID uuid.UUID) (*domain.Institution, error) {
	query := `
		SELECT id, name, contact_email, subscription_status,
		       subscription_start, subscription_end, created_at, updated_at
		FROM institutions WHERE id = $1`

	var institution domain.Institution
	err := r.db.QueryRow(ctx, query, institutionID).Scan(
		&institution.ID,
		&institution.Name,
		&institution.ContactEmail,
		&institution.SubscriptionStatus,
		&institution.SubscriptionStart,
		&institution.SubscriptionEnd,
		&institution.CreatedAt,
		&institution.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInstitutionNotFound
		}
		r.logger.Error("failed to get institution", "institution_id", institutionID, "error", err)
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}

	return &institution, nil
}

// Update persists the institution's mutable fields
func (r *InstitutionRepository) Update(ctx context.Context, institution *domain.Institution) error {
	query := `
		UPDATE institutions SET
			name = $2,
			contact_email = $3,
			subscription_status = $4,
			subscription_start = $5,
			subscription_end = $6,
			updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		institution.ID,
		institution.Name,
		institution.ContactEmail,
		institution.SubscriptionStatus,
		institution.SubscriptionStart,
		institution.SubscriptionEnd,
		time.Now(),
	)

	if err != nil {
		r.logger.Error("failed to update institution", "institution_id", institution.ID, "error", err)
		return fmt.Errorf("failed to update institution: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInstitutionNotFound
	}

	return nil
}

// Delete removes an institution row. Used by saga compensation, so a
// missing row counts as success.
func (r *InstitutionRepository) Delete(ctx context.Context, institutionID uuid.UUID) error {
	query := `DELETE FROM institutions WHERE id = $1`

	_, err := r.db.Exec(ctx, query, institutionID)
	if err != nil {
		r.logger.Error("failed to delete institution", "institution_id", institutionID, "error", err)
		return fmt.Errorf("failed to delete institution: %w", err)
	}

	r.logger.Info("institution deleted", "institution_id", institutionID)
	return nil
}

// ActivateIfInactive flips the subscription to active with a single
// conditional UPDATE. The status filter makes concurrent duplicate
// deliveries race safely: exactly one of them changes the row. Cancelled
// rows are excluded so a late webhook cannot revive a cancelled
// subscription.
func (r *InstitutionRepository) ActivateIfInactive(ctx context.Context, institutionID uuid.UUID, start, end time.Time) (bool, error) {
	query := `
		UPDATE institutions SET
			subscription_status = $2,
			subscription_start = $3,
			subscription_end = $4,
			updated_at = $5
		WHERE id = $1 AND subscription_status IN ($6, $7)`

	tag, err := r.db.Exec(ctx, query,
		institutionID,
		domain.SubscriptionActive,
		start,
		end,
		time.Now(),
		domain.SubscriptionPending,
		domain.SubscriptionExpired,
	)

	if err != nil {
		r.logger.Error("conditional activation failed", "institution_id", institutionID, "error", err)
		return false, fmt.Errorf("failed to activate institution: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListLapsed returns active institutions whose subscription window has
// ended, oldest lapse first.
func (r *InstitutionRepository) ListLapsed(ctx context.Context, now time.Time, limit int) ([]*domain.Institution, error) {
	query := `
		SELECT id, name, contact_email, subscription_status,
		       subscription_start, subscription_end, created_at, updated_at
		FROM institutions
		WHERE subscription_status = $1 AND subscription_end IS NOT NULL AND subscription_end < $2
		ORDER BY subscription_end
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, domain.SubscriptionActive, now, limit)
	if err != nil {
		r.logger.Error("failed to list lapsed institutions", "error", err)
		return nil, fmt.Errorf("failed to list lapsed institutions: %w", err)
	}
	defer rows.Close()

	var lapsed []*domain.Institution
	for rows.Next() {
		var institution domain.Institution
		if err := rows.Scan(
			&institution.ID,
			&institution.Name,
			&institution.ContactEmail,
			&institution.SubscriptionStatus,
			&institution.SubscriptionStart,
			&institution.SubscriptionEnd,
			&institution.CreatedAt,
			&institution.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan institution: %w", err)
		}
		lapsed = append(lapsed, &institution)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lapsed institutions: %w", err)
	}

	return lapsed, nil
}
