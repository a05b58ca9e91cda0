package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
)

// IdentityGateway implements port.IdentityStore over the identity provider
// adapter. It acts as an anti-corruption layer between the domain and the
// external identity provider: inputs are validated before they leave the
// service, and log lines carry identity IDs, never credentials.
type IdentityGateway struct {
	identities port.IdentityStore
	logger     *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(identities port.IdentityStore, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		identities: identities,
		logger:     logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity creates an identity with the external provider
func (g *IdentityGateway) CreateIdentity(ctx context.Context, input domain.IdentityInput) (*domain.Identity, error) {
	if err := input.Validate(); err != nil {
		g.logger.Error("identity input validation failed", "error", err)
		return nil, fmt.Errorf("identity input validation failed: %w", err)
	}

	identity, err := g.identities.CreateIdentity(ctx, input)
	if err != nil {
		g.logger.Error("failed to create identity", "error", err)
		return nil, err
	}

	g.logger.Info("identity created", "identity_id", identity.ID)
	return identity, nil
}

// DeleteIdentity removes an identity from the external provider
func (g *IdentityGateway) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	if identityID == uuid.Nil {
		return fmt.Errorf("identity ID is required")
	}

	if err := g.identities.DeleteIdentity(ctx, identityID); err != nil {
		g.logger.Error("failed to delete identity", "identity_id", identityID, "error", err)
		return err
	}

	g.logger.Info("identity deleted", "identity_id", identityID)
	return nil
}

// GetIdentityByEmail looks up an identity by email
func (g *IdentityGateway) GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return g.identities.GetIdentityByEmail(ctx, email)
}
