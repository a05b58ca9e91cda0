package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
)

// subscriptionPeriod is the length of one institutional license term.
const subscriptionPeriod = 365 * 24 * time.Hour

// SubscriptionActivator drives the subscription status state machine. The
// activation itself runs over two paths: the billing provider's order
// confirmation endpoint (primary), and a conditional direct write to the
// institution store (fallback). Exactly one of them commits the write.
type SubscriptionActivator struct {
	institutions port.InstitutionStore
	billing      port.BillingClient
	logger       *slog.Logger
}

// NewSubscriptionActivator creates a new SubscriptionActivator instance
func NewSubscriptionActivator(
	institutions port.InstitutionStore,
	billing port.BillingClient,
	logger *slog.Logger,
) *SubscriptionActivator {
	return &SubscriptionActivator{
		institutions: institutions,
		billing:      billing,
		logger:       logger.With("component", "subscription_activator"),
	}
}

// Activate applies a confirmed payment for an order to an institution.
// It is safe under at-least-once webhook delivery: an institution that is
// already active is a successful no-op, and the fallback write is
// conditional on the status still being inactive.
func (a *SubscriptionActivator) Activate(ctx context.Context, req *domain.ActivationRequest) (*domain.ActivationOutcome, error) {
	log := a.logger.With("order_id", req.OrderID, "institution_id", req.InstitutionID)

	institution, err := a.institutions.GetByID(ctx, req.InstitutionID)
	if err != nil {
		if errors.Is(err, domain.ErrInstitutionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrActivationFailed, err)
	}

	// Idempotency check first: duplicate delivery of the same confirmation
	// must not double-apply.
	if institution.IsActive() {
		log.Info("institution already active, activation is a no-op")
		return a.outcome(req, domain.ActivationPathNone), nil
	}

	if !domain.CanTransition(institution.SubscriptionStatus, domain.SubscriptionActive) {
		log.Error("activation rejected by transition table", "status", institution.SubscriptionStatus)
		return nil, fmt.Errorf("%w: %s -> %s",
			domain.ErrIllegalTransition, institution.SubscriptionStatus, domain.SubscriptionActive)
	}

	// Primary path. A successful confirmation means the provider applied
	// the status write remotely; writing again locally would race it.
	result, primaryErr := a.billing.ConfirmOrder(ctx, req.OrderID)
	if primaryErr == nil && result.Activated {
		log.Info("subscription activated via billing confirmation")
		return a.outcome(req, domain.ActivationPathRemote), nil
	}

	if primaryErr != nil {
		log.Warn("billing confirmation unavailable, falling back to direct write", "error", primaryErr)
	} else {
		log.Warn("billing confirmation rejected, falling back to direct write", "reason", result.Reason)
	}

	// Fallback path: conditional write, applied only while the status is
	// still inactive.
	start := time.Now()
	applied, err := a.institutions.ActivateIfInactive(ctx, req.InstitutionID, start, start.Add(subscriptionPeriod))
	if err != nil {
		log.Error("direct activation write failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrActivationFailed, err)
	}

	if !applied {
		// A concurrent delivery won the conditional write; converged on
		// active either way.
		log.Info("institution concurrently activated, no write applied")
		return a.outcome(req, domain.ActivationPathNone), nil
	}

	log.Info("subscription activated via direct write")
	return a.outcome(req, domain.ActivationPathDirect), nil
}

// Cancel transitions the institution's subscription to cancelled
func (a *SubscriptionActivator) Cancel(ctx context.Context, institutionID uuid.UUID) error {
	return a.transition(ctx, institutionID, domain.SubscriptionCancelled)
}

// Expire transitions the institution's subscription to expired. Expiry is
// an external trigger: either a cron sweep or an operator action.
func (a *SubscriptionActivator) Expire(ctx context.Context, institutionID uuid.UUID) error {
	return a.transition(ctx, institutionID, domain.SubscriptionExpired)
}

// ExpireLapsed expires active institutions whose subscription end has
// passed and returns how many were transitioned.
func (a *SubscriptionActivator) ExpireLapsed(ctx context.Context, limit int) (int, error) {
	lapsed, err := a.institutions.ListLapsed(ctx, time.Now(), limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list lapsed institutions: %w", err)
	}

	expired := 0
	for _, institution := range lapsed {
		if err := a.transition(ctx, institution.ID, domain.SubscriptionExpired); err != nil {
			a.logger.Warn("failed to expire lapsed institution",
				"institution_id", institution.ID,
				"error", err)
			continue
		}
		expired++
	}

	if expired > 0 {
		a.logger.Info("expired lapsed subscriptions", "count", expired)
	}
	return expired, nil
}

func (a *SubscriptionActivator) transition(ctx context.Context, institutionID uuid.UUID, to domain.SubscriptionStatus) error {
	institution, err := a.institutions.GetByID(ctx, institutionID)
	if err != nil {
		return err
	}

	if err := institution.Transition(to); err != nil {
		return err
	}

	if err := a.institutions.Update(ctx, institution); err != nil {
		return fmt.Errorf("failed to persist %s transition: %w", to, err)
	}

	a.logger.Info("subscription status transitioned",
		"institution_id", institutionID,
		"status", to)
	return nil
}

func (a *SubscriptionActivator) outcome(req *domain.ActivationRequest, path domain.ActivationPath) *domain.ActivationOutcome {
	return &domain.ActivationOutcome{
		OrderID:       req.OrderID,
		InstitutionID: req.InstitutionID,
		Path:          path,
	}
}
