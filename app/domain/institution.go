package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the billing state of an institution
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// subscriptionTransitions enumerates every legal status transition.
// Anything not listed here is rejected with ErrIllegalTransition.
var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionPending: {SubscriptionActive, SubscriptionCancelled},
	SubscriptionActive:  {SubscriptionExpired, SubscriptionCancelled},
	SubscriptionExpired: {SubscriptionActive}, // renewal
	// cancelled is terminal; re-subscription is a separate flow
	SubscriptionCancelled: {},
}

// CanTransition reports whether moving from one subscription status to
// another is legal.
func CanTransition(from, to SubscriptionStatus) bool {
	for _, next := range subscriptionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidSubscriptionStatus reports whether s is a known status value.
func IsValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionPending, SubscriptionActive, SubscriptionExpired, SubscriptionCancelled:
		return true
	}
	return false
}

// Institution represents a tenant: the unit of subscription billing
type Institution struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	ContactEmail       string             `json:"contact_email"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	SubscriptionStart  *time.Time         `json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time         `json:"subscription_end,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewInstitution creates a new institution with validation. Every
// institution starts in the pending (non-billable) state; only the
// subscription activator mutates the status afterwards.
func NewInstitution(name, contactEmail string) (*Institution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name must be 200 characters or less")
	}

	if contactEmail == "" {
		return nil, fmt.Errorf("contact email is required")
	}
	if _, err := mail.ParseAddress(contactEmail); err != nil {
		return nil, fmt.Errorf("invalid contact email: %w", err)
	}

	now := time.Now()

	return &Institution{
		ID:                 uuid.New(),
		Name:               name,
		ContactEmail:       contactEmail,
		SubscriptionStatus: SubscriptionPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// Transition moves the institution to the target status, enforcing the
// transition table.
func (i *Institution) Transition(to SubscriptionStatus) error {
	if !IsValidSubscriptionStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, to)
	}
	if !CanTransition(i.SubscriptionStatus, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, i.SubscriptionStatus, to)
	}
	i.SubscriptionStatus = to
	i.UpdatedAt = time.Now()
	return nil
}

// ActivateSubscription transitions the institution to active and stamps
// the subscription window.
func (i *Institution) ActivateSubscription(start time.Time, period time.Duration) error {
	if err := i.Transition(SubscriptionActive); err != nil {
		return err
	}
	end := start.Add(period)
	i.SubscriptionStart = &start
	i.SubscriptionEnd = &end
	return nil
}

// IsActive returns true if the subscription is currently active
func (i *Institution) IsActive() bool {
	return i.SubscriptionStatus == SubscriptionActive
}

// IsLapsed returns true if an active subscription has run past its end date
func (i *Institution) IsLapsed(now time.Time) bool {
	return i.IsActive() && i.SubscriptionEnd != nil && now.After(*i.SubscriptionEnd)
}
