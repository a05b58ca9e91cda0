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

// ProfileRepository handles profile operations in PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileStore {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Upsert inserts the profile, converging on the existing row when the
// user ID is already present. A saga retry over a half-created profile
// lands here instead of hitting a unique violation.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, email, full_name, role, institution_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			institution_id = EXCLUDED.institution_id,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Email,
		profile.FullName,
		profile.Role,
		profile.InstitutionID,
		profile.CreatedAt,
		time.Now(),
	)

	if err != nil {
		r.logger.Error("failed to upsert profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	r.logger.Info("profile upserted", "user_id", profile.UserID, "role", profile.Role)
	return nil
}

// GetByUserID retrieves a profile by its identity ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT user_id, email, full_name, role, institution_id, created_at, updated_at
		FROM profiles WHERE user_id = $1`

	var profile domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.FullName,
		&profile.Role,
		&profile.InstitutionID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// Delete removes a profile row. Missing rows count as success for the
// same reason as institution deletes: compensation must be retryable.
func (r *ProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to delete profile", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	r.logger.Info("profile deleted", "user_id", userID)
	return nil
}
