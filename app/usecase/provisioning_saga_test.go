package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"account-service/app/domain"
	mock_port "account-service/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validProvisionRequest() *domain.ProvisionAccountRequest {
	return &domain.ProvisionAccountRequest{
		InstitutionName: "Northfield Academy",
		AdminEmail:      "admin@northfield.example",
		AdminFullName:   "Dana Whitfield",
		AdminCredential: "Str0ng!Passw0rd",
	}
}

func TestProvisioningSaga_Provision(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name           string
		ctx            func() context.Context
		setupMocks     func(*mock_port.MockIdentityStore, *mock_port.MockInstitutionStore, *mock_port.MockProfileStore)
		wantErr        error
		validateResult func(*testing.T, *domain.ProvisioningResult)
	}{
		{
			name: "successful provisioning creates identity, institution and profile",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input domain.IdentityInput) (*domain.Identity, error) {
						assert.Equal(t, "admin@northfield.example", input.Email)
						assert.Equal(t, "Dana Whitfield", input.FullName)
						return &domain.Identity{ID: adminID, Email: input.Email}, nil
					})
				institutions.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, institution *domain.Institution) error {
						assert.Equal(t, "Northfield Academy", institution.Name)
						assert.Equal(t, domain.SubscriptionPending, institution.SubscriptionStatus)
						return nil
					})
				profiles.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile *domain.Profile) error {
						assert.Equal(t, adminID, profile.UserID)
						assert.Equal(t, domain.RoleAdmin, profile.Role)
						require.NotNil(t, profile.InstitutionID)
						return nil
					})
			},
			validateResult: func(t *testing.T, result *domain.ProvisioningResult) {
				require.NotNil(t, result)
				assert.Equal(t, adminID, result.AdminIdentityID)
				assert.NotEqual(t, uuid.Nil, result.InstitutionID)
				assert.Equal(t, domain.SubscriptionPending, result.SubscriptionStatus)
			},
		},
		{
			name: "existing identity for email fails fast with duplicate account",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(&domain.Identity{ID: adminID, Email: "admin@northfield.example"}, nil)
			},
			wantErr: domain.ErrDuplicateAccount,
		},
		{
			name: "losing the uniqueness race surfaces duplicate account without compensation",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrDuplicateAccount)
			},
			wantErr: domain.ErrDuplicateAccount,
		},
		{
			name: "identity creation failure leaves nothing to compensate",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("identity provider unreachable"))
			},
			wantErr: domain.ErrIdentityCreationFailed,
		},
		{
			name: "institution creation failure deletes the created identity",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(&domain.Identity{ID: adminID, Email: "admin@northfield.example"}, nil)
				institutions.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
				identities.EXPECT().
					DeleteIdentity(gomock.Any(), adminID).
					Return(nil)
			},
			wantErr: domain.ErrInstitutionCreationFailed,
		},
		{
			name: "profile creation failure compensates in reverse creation order",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				var institutionID uuid.UUID

				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(&domain.Identity{ID: adminID, Email: "admin@northfield.example"}, nil)
				institutions.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, institution *domain.Institution) error {
						institutionID = institution.ID
						return nil
					})
				profiles.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("profile insert failed"))

				gomock.InOrder(
					institutions.EXPECT().
						Delete(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, id uuid.UUID) error {
							assert.Equal(t, institutionID, id)
							return nil
						}),
					identities.EXPECT().
						DeleteIdentity(gomock.Any(), adminID).
						Return(nil),
				)
			},
			wantErr: domain.ErrProfileCreationFailed,
		},
		{
			name: "failed compensation never masks the triggering error",
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(&domain.Identity{ID: adminID, Email: "admin@northfield.example"}, nil)
				institutions.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
				profiles.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("profile insert failed"))

				// First compensation fails; the saga still attempts the rest.
				institutions.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete timed out"))
				identities.EXPECT().
					DeleteIdentity(gomock.Any(), adminID).
					Return(nil)
			},
			wantErr: domain.ErrProfileCreationFailed,
		},
		{
			name: "cancellation after a committed step compensates that step",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			setupMocks: func(identities *mock_port.MockIdentityStore, institutions *mock_port.MockInstitutionStore, profiles *mock_port.MockProfileStore) {
				identities.EXPECT().
					GetIdentityByEmail(gomock.Any(), "admin@northfield.example").
					Return(nil, domain.ErrIdentityNotFound)
				identities.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any()).
					Return(&domain.Identity{ID: adminID, Email: "admin@northfield.example"}, nil)
				identities.EXPECT().
					DeleteIdentity(gomock.Any(), adminID).
					Return(nil)
			},
			wantErr: domain.ErrIdentityCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			identities := mock_port.NewMockIdentityStore(ctrl)
			institutions := mock_port.NewMockInstitutionStore(ctrl)
			profiles := mock_port.NewMockProfileStore(ctrl)
			tt.setupMocks(identities, institutions, profiles)

			saga := NewProvisioningSaga(identities, institutions, profiles, testLogger())

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			result, err := saga.Provision(ctx, validProvisionRequest())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validateResult(t, result)
		})
	}
}
