package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"
)

// compensationTimeout bounds the compensating calls after a step failure.
// Compensation runs on a detached context so that the cancellation that
// caused the failure does not also abort the cleanup.
const compensationTimeout = 10 * time.Second

// ProvisioningSaga creates exactly one identity, one institution and one
// profile as a single logical unit of work, or leaves no partial artifacts
// behind on failure. The three stores offer no cross-store transaction, so
// each creation step carries an explicit compensating action; on failure
// the compensations of all committed steps run in reverse creation order.
type ProvisioningSaga struct {
	identities   port.IdentityStore
	institutions port.InstitutionStore
	profiles     port.ProfileStore
	logger       *slog.Logger
}

// NewProvisioningSaga creates a new ProvisioningSaga instance
func NewProvisioningSaga(
	identities port.IdentityStore,
	institutions port.InstitutionStore,
	profiles port.ProfileStore,
	logger *slog.Logger,
) *ProvisioningSaga {
	return &ProvisioningSaga{
		identities:   identities,
		institutions: institutions,
		profiles:     profiles,
		logger:       logger.With("component", "provisioning_saga"),
	}
}

// sagaStep pairs an action with the compensation that undoes it. A nil
// compensate means the step leaves nothing behind that needs undoing.
type sagaStep struct {
	name       string
	failure    error
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// Provision runs the three creation steps strictly in sequence: identity
// in the external provider, institution row, then the admin profile bound
// to both. Each step's input depends on the previous step's output.
//
// Compensation is best-effort: a compensating delete that itself fails is
// logged as an orphan warning and never masks the triggering error.
func (s *ProvisioningSaga) Provision(ctx context.Context, req *domain.ProvisionAccountRequest) (*domain.ProvisioningResult, error) {
	// Best-effort duplicate check. The provider's uniqueness constraint is
	// the backstop for the race where two calls pass this check at once;
	// the loser's create comes back as a duplicate error below.
	if existing, err := s.identities.GetIdentityByEmail(ctx, req.AdminEmail); err == nil && existing != nil {
		return nil, domain.ErrDuplicateAccount
	}

	var (
		identity    *domain.Identity
		institution *domain.Institution
	)

	steps := []sagaStep{
		{
			name:    "create_identity",
			failure: domain.ErrIdentityCreationFailed,
			run: func(ctx context.Context) error {
				created, err := s.identities.CreateIdentity(ctx, domain.IdentityInput{
					Email:      req.AdminEmail,
					Credential: req.AdminCredential,
					FullName:   req.AdminFullName,
				})
				if err != nil {
					return err
				}
				identity = created
				return nil
			},
			compensate: func(ctx context.Context) error {
				return s.identities.DeleteIdentity(ctx, identity.ID)
			},
		},
		{
			name:    "create_institution",
			failure: domain.ErrInstitutionCreationFailed,
			run: func(ctx context.Context) error {
				inst, err := domain.NewInstitution(req.InstitutionName, req.AdminEmail)
				if err != nil {
					return err
				}
				if err := s.institutions.Create(ctx, inst); err != nil {
					return err
				}
				institution = inst
				return nil
			},
			compensate: func(ctx context.Context) error {
				return s.institutions.Delete(ctx, institution.ID)
			},
		},
		{
			name:    "create_profile",
			failure: domain.ErrProfileCreationFailed,
			run: func(ctx context.Context) error {
				profile, err := domain.NewAdminProfile(identity.ID, institution.ID, req.AdminEmail, req.AdminFullName)
				if err != nil {
					return err
				}
				return s.profiles.Upsert(ctx, profile)
			},
		},
	}

	for i, step := range steps {
		s.logger.Info("saga step started", "step", step.name)

		if err := step.run(ctx); err != nil {
			if errors.Is(err, domain.ErrDuplicateAccount) {
				// Lost the uniqueness race; nothing was created.
				return nil, domain.ErrDuplicateAccount
			}
			s.logger.Error("saga step failed", "step", step.name, "error", err)
			s.compensate(ctx, steps[:i], step.name)
			return nil, fmt.Errorf("%w: %v", step.failure, err)
		}

		// Cancellation after the step committed is treated as a failure of
		// that step: the step itself is included in the compensation set
		// rather than leaving an orphan behind.
		if err := ctx.Err(); err != nil {
			s.logger.Error("saga cancelled after step committed", "step", step.name, "error", err)
			s.compensate(ctx, steps[:i+1], step.name)
			return nil, fmt.Errorf("%w: %v", step.failure, err)
		}

		s.logger.Info("saga step committed", "step", step.name)
	}

	s.logger.Info("provisioning completed",
		"institution_id", institution.ID,
		"admin_identity_id", identity.ID)

	return &domain.ProvisioningResult{
		InstitutionID:      institution.ID,
		AdminIdentityID:    identity.ID,
		SubscriptionStatus: institution.SubscriptionStatus,
	}, nil
}

// compensate undoes the committed steps in reverse creation order. It runs
// on a context detached from the caller's so cancellation of the request
// does not abort cleanup.
func (s *ProvisioningSaga) compensate(ctx context.Context, committed []sagaStep, trigger string) {
	if len(committed) == 0 {
		return
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	for i := len(committed) - 1; i >= 0; i-- {
		step := committed[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(cctx); err != nil {
			// Orphan warning only: the triggering error is what the caller
			// sees, a failed compensation never replaces it.
			s.logger.Warn("saga compensation failed, orphan record may remain",
				"step", step.name,
				"triggered_by", trigger,
				"error", err)
			continue
		}
		s.logger.Info("saga step compensated", "step", step.name, "triggered_by", trigger)
	}
}
