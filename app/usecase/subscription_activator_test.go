package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"account-service/app/domain"
	mock_port "account-service/app/mocks"
	"account-service/app/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func institutionWithStatus(id uuid.UUID, status domain.SubscriptionStatus) *domain.Institution {
	now := time.Now()
	return &domain.Institution{
		ID:                 id,
		Name:               "Northfield Academy",
		ContactEmail:       "admin@northfield.example",
		SubscriptionStatus: status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestSubscriptionActivator_Activate(t *testing.T) {
	institutionID := uuid.New()
	request := &domain.ActivationRequest{
		OrderID:       "ORDER_1",
		InstitutionID: institutionID,
	}

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockInstitutionStore, *mock_port.MockBillingClient)
		wantPath   domain.ActivationPath
		wantErr    error
	}{
		{
			name: "billing confirmation activates via the remote path without a local write",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(&port.ActivationResult{Activated: true}, nil)
			},
			wantPath: domain.ActivationPathRemote,
		},
		{
			name: "already active institution is a no-op with no billing call",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionActive), nil)
			},
			wantPath: domain.ActivationPathNone,
		},
		{
			name: "billing unavailable falls back to the conditional direct write",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(nil, errors.New("billing api timeout"))
				institutions.EXPECT().
					ActivateIfInactive(gomock.Any(), institutionID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, start, end time.Time) (bool, error) {
						assert.Equal(t, subscriptionPeriod, end.Sub(start))
						return true, nil
					})
			},
			wantPath: domain.ActivationPathDirect,
		},
		{
			name: "billing rejection falls back to the conditional direct write",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(&port.ActivationResult{Activated: false, Reason: "order not settled"}, nil)
				institutions.EXPECT().
					ActivateIfInactive(gomock.Any(), institutionID, gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantPath: domain.ActivationPathDirect,
		},
		{
			name: "concurrent activation wins the conditional write and no second write happens",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(nil, errors.New("billing api timeout"))
				institutions.EXPECT().
					ActivateIfInactive(gomock.Any(), institutionID, gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantPath: domain.ActivationPathNone,
		},
		{
			name: "expired institution renews via activation",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionExpired), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(&port.ActivationResult{Activated: true}, nil)
			},
			wantPath: domain.ActivationPathRemote,
		},
		{
			name: "cancelled institution rejects activation",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionCancelled), nil)
			},
			wantErr: domain.ErrIllegalTransition,
		},
		{
			name: "unknown institution surfaces not found",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(nil, domain.ErrInstitutionNotFound)
			},
			wantErr: domain.ErrInstitutionNotFound,
		},
		{
			name: "both paths failing surfaces activation failed",
			setupMocks: func(institutions *mock_port.MockInstitutionStore, billing *mock_port.MockBillingClient) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				billing.EXPECT().
					ConfirmOrder(gomock.Any(), "ORDER_1").
					Return(nil, errors.New("billing api timeout"))
				institutions.EXPECT().
					ActivateIfInactive(gomock.Any(), institutionID, gomock.Any(), gomock.Any()).
					Return(false, errors.New("database unavailable"))
			},
			wantErr: domain.ErrActivationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			institutions := mock_port.NewMockInstitutionStore(ctrl)
			billing := mock_port.NewMockBillingClient(ctrl)
			tt.setupMocks(institutions, billing)

			activator := NewSubscriptionActivator(institutions, billing, testLogger())

			outcome, err := activator.Activate(context.Background(), request)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, outcome)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, outcome)
			assert.Equal(t, tt.wantPath, outcome.Path)
			assert.Equal(t, "ORDER_1", outcome.OrderID)
			assert.Equal(t, institutionID, outcome.InstitutionID)
		})
	}
}

func TestSubscriptionActivator_Activate_DuplicateDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	institutionID := uuid.New()
	request := &domain.ActivationRequest{OrderID: "ORDER_1", InstitutionID: institutionID}

	institutions := mock_port.NewMockInstitutionStore(ctrl)
	billing := mock_port.NewMockBillingClient(ctrl)

	// First delivery activates over the remote path.
	institutions.EXPECT().
		GetByID(gomock.Any(), institutionID).
		Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
	billing.EXPECT().
		ConfirmOrder(gomock.Any(), "ORDER_1").
		Return(&port.ActivationResult{Activated: true}, nil)

	// Second delivery of the same confirmation observes the active status
	// and performs no write at all.
	institutions.EXPECT().
		GetByID(gomock.Any(), institutionID).
		Return(institutionWithStatus(institutionID, domain.SubscriptionActive), nil)

	activator := NewSubscriptionActivator(institutions, billing, testLogger())

	first, err := activator.Activate(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivationPathRemote, first.Path)

	second, err := activator.Activate(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivationPathNone, second.Path)
}

func TestSubscriptionActivator_Cancel(t *testing.T) {
	institutionID := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockInstitutionStore)
		wantErr    error
	}{
		{
			name: "pending subscription cancels",
			setupMocks: func(institutions *mock_port.MockInstitutionStore) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionPending), nil)
				institutions.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, institution *domain.Institution) error {
						assert.Equal(t, domain.SubscriptionCancelled, institution.SubscriptionStatus)
						return nil
					})
			},
		},
		{
			name: "active subscription cancels",
			setupMocks: func(institutions *mock_port.MockInstitutionStore) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionActive), nil)
				institutions.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cancelled is terminal, no write on repeat cancel",
			setupMocks: func(institutions *mock_port.MockInstitutionStore) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionCancelled), nil)
			},
			wantErr: domain.ErrIllegalTransition,
		},
		{
			name: "expired subscription cannot cancel",
			setupMocks: func(institutions *mock_port.MockInstitutionStore) {
				institutions.EXPECT().
					GetByID(gomock.Any(), institutionID).
					Return(institutionWithStatus(institutionID, domain.SubscriptionExpired), nil)
			},
			wantErr: domain.ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			institutions := mock_port.NewMockInstitutionStore(ctrl)
			tt.setupMocks(institutions)

			activator := NewSubscriptionActivator(institutions, mock_port.NewMockBillingClient(ctrl), testLogger())

			err := activator.Cancel(context.Background(), institutionID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubscriptionActivator_Expire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	institutionID := uuid.New()
	institutions := mock_port.NewMockInstitutionStore(ctrl)

	institutions.EXPECT().
		GetByID(gomock.Any(), institutionID).
		Return(institutionWithStatus(institutionID, domain.SubscriptionActive), nil)
	institutions.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, institution *domain.Institution) error {
			assert.Equal(t, domain.SubscriptionExpired, institution.SubscriptionStatus)
			return nil
		})

	activator := NewSubscriptionActivator(institutions, mock_port.NewMockBillingClient(ctrl), testLogger())

	err := activator.Expire(context.Background(), institutionID)
	assert.NoError(t, err)
}

func TestSubscriptionActivator_ExpireLapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := institutionWithStatus(uuid.New(), domain.SubscriptionActive)
	second := institutionWithStatus(uuid.New(), domain.SubscriptionActive)

	institutions := mock_port.NewMockInstitutionStore(ctrl)

	institutions.EXPECT().
		ListLapsed(gomock.Any(), gomock.Any(), 50).
		Return([]*domain.Institution{first, second}, nil)

	institutions.EXPECT().
		GetByID(gomock.Any(), first.ID).
		Return(first, nil)
	institutions.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	// The second row fails to persist; the sweep continues and reports
	// only the rows it actually expired.
	institutions.EXPECT().
		GetByID(gomock.Any(), second.ID).
		Return(second, nil)
	institutions.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(errors.New("update failed"))

	activator := NewSubscriptionActivator(institutions, mock_port.NewMockBillingClient(ctrl), testLogger())

	expired, err := activator.ExpireLapsed(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
}
