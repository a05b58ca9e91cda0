package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
	apperrors "account-service/app/utils/errors"
)

// AccountHandler handles account provisioning HTTP requests
type AccountHandler struct {
	accountUsecase port.AccountUsecase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUsecase port.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		logger:         logger,
	}
}

// ProvisionAccount provisions a new institution account
// @Summary Provision an institution account
// @Description Create the admin identity, institution record and admin profile as one unit
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body domain.ProvisionAccountRequest true "Provisioning request"
// @Success 201 {object} domain.ProvisioningResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/accounts/provision [post]
func (h *AccountHandler) ProvisionAccount(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ProvisionAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	result, err := h.accountUsecase.ProvisionAccount(ctx, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// GetInstitution returns the institution record with its subscription state
// @Summary Get an institution
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {object} domain.Institution
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/institutions/{id} [get]
func (h *AccountHandler) GetInstitution(c echo.Context) error {
	ctx := c.Request().Context()

	institutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid institution id",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	institution, err := h.accountUsecase.GetInstitution(ctx, institutionID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, institution)
}

// handleError converts a usecase error to an HTTP response using the
// stable error taxonomy.
func (h *AccountHandler) handleError(c echo.Context, err error) error {
	code := apperrors.GetErrorCode(err)
	status := apperrors.GetHTTPStatusCode(err)

	if status >= http.StatusInternalServerError {
		h.logger.Error("account request failed", "code", code, "error", err)
	}

	response := ErrorResponse{
		Error: apperrors.GetErrorMessage(err),
		Code:  string(code),
	}
	return c.JSON(status, response)
}
