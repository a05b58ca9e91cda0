package kratos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	kratosclient "github.com/ory/kratos-client-go"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
)

// identitySchemaID is the identity schema used for provisioned accounts.
const identitySchemaID = "default"

// IdentityAdapter implements port.IdentityStore against the Kratos admin
// API. Credentials pass through to Kratos and are never stored or logged
// on this side.
type IdentityAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityAdapter creates a new IdentityAdapter
func NewIdentityAdapter(client *Client, logger *slog.Logger) port.IdentityStore {
	return &IdentityAdapter{
		client: client,
		logger: logger.With("component", "kratos_identity_adapter"),
	}
}

// CreateIdentity creates an identity with a password credential through
// the admin API. Kratos enforces email uniqueness; a conflict surfaces as
// domain.ErrDuplicateAccount.
func (a *IdentityAdapter) CreateIdentity(ctx context.Context, input domain.IdentityInput) (*domain.Identity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	password := input.Credential
	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": input.Email,
			"name":  input.FullName,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	created, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "create_identity")
	}

	identity, err := toDomainIdentity(created)
	if err != nil {
		return nil, err
	}

	a.logger.Info("kratos identity created", "identity_id", identity.ID)
	return identity, nil
}

// DeleteIdentity removes an identity through the admin API. Deleting an
// identity that is already gone is a success so that saga compensation
// stays idempotent under retries.
func (a *IdentityAdapter) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID.String()).
		Execute()
	if err != nil {
		transformed := a.transformError(err, httpResp, "delete_identity")
		if errors.Is(transformed, domain.ErrIdentityNotFound) {
			a.logger.Info("kratos identity already deleted", "identity_id", identityID)
			return nil
		}
		a.logger.Error("kratos identity deletion failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return transformed
	}

	a.logger.Info("kratos identity deleted", "identity_id", identityID)
	return nil
}

// GetIdentityByEmail looks up an identity by its email credential
// identifier. A miss returns domain.ErrIdentityNotFound.
func (a *IdentityAdapter) GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identities, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		CredentialsIdentifier(email).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity lookup failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformError(err, httpResp, "get_identity_by_email")
	}

	if len(identities) == 0 {
		return nil, domain.ErrIdentityNotFound
	}

	return toDomainIdentity(&identities[0])
}

// toDomainIdentity maps a Kratos identity to the domain representation
func toDomainIdentity(identity *kratosclient.Identity) (*domain.Identity, error) {
	id, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("kratos returned a non-uuid identity id %q: %w", identity.Id, err)
	}

	email := ""
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if v, ok := traits["email"].(string); ok {
			email = v
		}
	}

	return &domain.Identity{
		ID:    id,
		Email: email,
	}, nil
}
