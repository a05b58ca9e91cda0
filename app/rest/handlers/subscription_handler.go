package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
	apperrors "account-service/app/utils/errors"
)

// SubscriptionHandler handles subscription lifecycle HTTP requests. The
// activation endpoint is a webhook target for the billing provider, so it
// has to absorb duplicate deliveries without side effects.
type SubscriptionHandler struct {
	subscriptionUsecase port.SubscriptionUsecase
	logger              *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionUsecase port.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUsecase: subscriptionUsecase,
		logger:              logger,
	}
}

// Activate applies a payment confirmation to an institution's subscription
// @Summary Activate a subscription
// @Description Apply a confirmed order to an institution, idempotently
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body domain.ActivationRequest true "Activation request"
// @Success 200 {object} domain.ActivationOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/subscriptions/activate [post]
func (h *SubscriptionHandler) Activate(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ActivationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if req.OrderID == "" || req.InstitutionID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "order_id and institution_id are required",
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	outcome, err := h.subscriptionUsecase.Activate(ctx, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, outcome)
}

// Cancel cancels an institution's subscription
// @Summary Cancel a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	return h.lifecycle(c, h.subscriptionUsecase.Cancel, "subscription cancelled")
}

// Expire expires an institution's subscription
// @Summary Expire a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/subscriptions/{id}/expire [post]
func (h *SubscriptionHandler) Expire(c echo.Context) error {
	return h.lifecycle(c, h.subscriptionUsecase.Expire, "subscription expired")
}

// ExpireLapsed sweeps active institutions whose subscription window ended
// @Summary Expire lapsed subscriptions
// @Tags subscriptions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/subscriptions/expire-lapsed [post]
func (h *SubscriptionHandler) ExpireLapsed(c echo.Context) error {
	ctx := c.Request().Context()

	expired, err := h.subscriptionUsecase.ExpireLapsed(ctx, expireLapsedLimit)
	if err != nil {
		h.logger.Error("expiry sweep failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "expiry sweep failed",
			Code:  string(apperrors.ErrCodeInternalError),
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "expiry sweep completed",
		Data:    map[string]int{"expired": expired},
	})
}

// expireLapsedLimit bounds one sweep run
const expireLapsedLimit = 100

func (h *SubscriptionHandler) lifecycle(c echo.Context, op func(ctx context.Context, id uuid.UUID) error, message string) error {
	ctx := c.Request().Context()

	institutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid institution id",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := op(ctx, institutionID); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// handleError converts domain and usecase errors to HTTP responses
func (h *SubscriptionHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInstitutionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "institution not found",
			Code:  string(apperrors.ErrCodeInstitutionNotFound),
		})
	case errors.Is(err, domain.ErrIllegalTransition):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "illegal subscription transition",
			Code:  string(apperrors.ErrCodeIllegalTransition),
		})
	case errors.Is(err, domain.ErrActivationFailed):
		h.logger.Error("subscription activation failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "subscription activation failed",
			Code:  string(apperrors.ErrCodeActivationFailed),
		})
	}

	code := apperrors.GetErrorCode(err)
	status := apperrors.GetHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("subscription request failed", "code", code, "error", err)
	}
	return c.JSON(status, ErrorResponse{
		Error: apperrors.GetErrorMessage(err),
		Code:  string(code),
	})
}
