package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"account-service/app/config"
	"account-service/app/port"
)

// Circuit breaker tuning for the billing confirmation endpoint.
const (
	breakerMaxRequests      = 3
	breakerInterval         = 60 * time.Second
	breakerTimeout          = 30 * time.Second
	breakerFailureThreshold = 5
)

// orderStatusActivated is the billing provider's confirmation verdict for
// a settled order.
const orderStatusActivated = "activated"

// Client calls the billing provider's order confirmation endpoint. The
// endpoint sits behind a circuit breaker so that a dead billing API fails
// fast and activation falls through to the direct write path instead of
// piling up blocked webhook handlers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *gobreaker.CircuitBreaker[*port.ActivationResult]
	logger     *slog.Logger
}

type confirmOrderRequest struct {
	OrderID string `json:"order_id"`
}

type confirmOrderResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// NewClient creates a new billing client
func NewClient(cfg *config.Config, logger *slog.Logger) port.BillingClient {
	log := logger.With("component", "billing_client")

	settings := gobreaker.Settings{
		Name:        "billing-confirm",
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.BillingTimeout,
		},
		baseURL: cfg.BillingAPIURL,
		apiKey:  cfg.BillingAPIKey,
		breaker: gobreaker.NewCircuitBreaker[*port.ActivationResult](settings),
		logger:  log,
	}
}

// ConfirmOrder asks the billing provider to confirm and settle an order.
// A rejected order is not an error: the provider answered, the order just
// did not activate. Errors mean the provider could not be reached or gave
// a non-answer, which the caller treats as a signal to fall back.
func (c *Client) ConfirmOrder(ctx context.Context, orderID string) (*port.ActivationResult, error) {
	result, err := c.breaker.Execute(func() (*port.ActivationResult, error) {
		return c.confirmOrder(ctx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) confirmOrder(ctx context.Context, orderID string) (*port.ActivationResult, error) {
	payload, err := json.Marshal(confirmOrderRequest{OrderID: orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode confirmation request: %w", err)
	}

	url := c.baseURL + "/v1/orders/confirm"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("billing confirmation request failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("billing confirmation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("billing confirmation returned non-OK status",
			"order_id", orderID,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("billing api returned status %d", resp.StatusCode)
	}

	var confirmation confirmOrderResponse
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode confirmation response: %w", err)
	}

	result := &port.ActivationResult{
		Activated: confirmation.Status == orderStatusActivated,
		Reason:    confirmation.Reason,
	}

	c.logger.Info("billing confirmation completed",
		"order_id", orderID,
		"activated", result.Activated)
	return result, nil
}
