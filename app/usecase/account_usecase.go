package usecase

import (
	"context"
	"errors"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"
	apperrors "account-service/app/utils/errors"
	"account-service/app/utils/validator"

	"github.com/google/uuid"
)

// AccountUsecase is the public provisioning entry point: it validates the
// request shape, runs the saga, and maps every failure to a stable error
// kind. Error payloads crossing the boundary carry opaque identifiers
// only, never email addresses.
type AccountUsecase struct {
	saga         *ProvisioningSaga
	institutions port.InstitutionStore
	validate     *validator.Validator
	logger       *slog.Logger
}

// NewAccountUsecase creates a new AccountUsecase instance
func NewAccountUsecase(
	saga *ProvisioningSaga,
	institutions port.InstitutionStore,
	validate *validator.Validator,
	logger *slog.Logger,
) *AccountUsecase {
	return &AccountUsecase{
		saga:         saga,
		institutions: institutions,
		validate:     validate,
		logger:       logger.With("component", "account_usecase"),
	}
}

// ProvisionAccount provisions an institution account: admin identity,
// institution record, and admin profile. The new institution starts with a
// pending subscription; activation happens separately once payment is
// confirmed. The usecase does not retry; retrying is the caller's call.
func (uc *AccountUsecase) ProvisionAccount(ctx context.Context, req *domain.ProvisionAccountRequest) (*domain.ProvisioningResult, error) {
	if req == nil {
		return nil, apperrors.ErrInvalidInput
	}

	if err := uc.validate.Validate(*req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	result, err := uc.saga.Provision(ctx, req)
	if err != nil {
		return nil, uc.mapProvisioningError(err)
	}

	uc.logger.Info("account provisioned",
		"institution_id", result.InstitutionID,
		"admin_identity_id", result.AdminIdentityID)

	return result, nil
}

// GetInstitution returns the institution record for status queries
func (uc *AccountUsecase) GetInstitution(ctx context.Context, institutionID uuid.UUID) (*domain.Institution, error) {
	institution, err := uc.institutions.GetByID(ctx, institutionID)
	if err != nil {
		if errors.Is(err, domain.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return institution, nil
}

// mapProvisioningError converts saga errors to the stable external
// taxonomy. Raw store error strings never cross the service boundary.
func (uc *AccountUsecase) mapProvisioningError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		return apperrors.ErrDuplicateAccount
	case errors.Is(err, domain.ErrWeakCredential):
		return apperrors.ErrWeakCredential
	case errors.Is(err, domain.ErrIdentityCreationFailed):
		return apperrors.New(apperrors.ErrCodeIdentityCreationFailed, "identity creation failed").WithCause(err)
	case errors.Is(err, domain.ErrInstitutionCreationFailed):
		return apperrors.New(apperrors.ErrCodeInstitutionCreationFailed, "institution creation failed").WithCause(err)
	case errors.Is(err, domain.ErrProfileCreationFailed):
		return apperrors.New(apperrors.ErrCodeProfileCreationFailed, "profile creation failed").WithCause(err)
	default:
		return apperrors.NewInternalError(err)
	}
}
