package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account-service/app/domain"
	mock_port "account-service/app/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionHandler_Activate(t *testing.T) {
	institutionID := uuid.New()
	activateBody := fmt.Sprintf(`{"order_id": "ORDER_1", "institution_id": %q}`, institutionID)

	tests := []struct {
		name       string
		body       string
		setupMocks func(*mock_port.MockSubscriptionUsecase)
		wantStatus int
		wantPath   domain.ActivationPath
	}{
		{
			name: "activation returns the committed path",
			body: activateBody,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Activate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req *domain.ActivationRequest) (*domain.ActivationOutcome, error) {
						assert.Equal(t, "ORDER_1", req.OrderID)
						assert.Equal(t, institutionID, req.InstitutionID)
						return &domain.ActivationOutcome{
							OrderID:       req.OrderID,
							InstitutionID: req.InstitutionID,
							Path:          domain.ActivationPathRemote,
						}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantPath:   domain.ActivationPathRemote,
		},
		{
			name: "duplicate delivery returns 200 with no-op path",
			body: activateBody,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Activate(gomock.Any(), gomock.Any()).
					Return(&domain.ActivationOutcome{
						OrderID:       "ORDER_1",
						InstitutionID: institutionID,
						Path:          domain.ActivationPathNone,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantPath:   domain.ActivationPathNone,
		},
		{
			name:       "missing order id returns 400",
			body:       fmt.Sprintf(`{"institution_id": %q}`, institutionID),
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body returns 400",
			body:       `{not json`,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown institution returns 404",
			body: activateBody,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Activate(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInstitutionNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "cancelled institution returns 422",
			body: activateBody,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Activate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: cancelled -> active", domain.ErrIllegalTransition))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "both activation paths down returns 503",
			body: activateBody,
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Activate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: database unavailable", domain.ErrActivationFailed))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			usecase := mock_port.NewMockSubscriptionUsecase(ctrl)
			tt.setupMocks(usecase)

			handler := NewSubscriptionHandler(usecase, testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/activate", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Activate(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var outcome domain.ActivationOutcome
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
				assert.Equal(t, tt.wantPath, outcome.Path)
			}
		})
	}
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	institutionID := uuid.New()

	tests := []struct {
		name       string
		paramID    string
		setupMocks func(*mock_port.MockSubscriptionUsecase)
		wantStatus int
	}{
		{
			name:    "cancel succeeds",
			paramID: institutionID.String(),
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Cancel(gomock.Any(), institutionID).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed id returns 400",
			paramID:    "not-a-uuid",
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "terminal state returns 422",
			paramID: institutionID.String(),
			setupMocks: func(usecase *mock_port.MockSubscriptionUsecase) {
				usecase.EXPECT().
					Cancel(gomock.Any(), institutionID).
					Return(fmt.Errorf("%w: cancelled -> cancelled", domain.ErrIllegalTransition))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			usecase := mock_port.NewMockSubscriptionUsecase(ctrl)
			tt.setupMocks(usecase)

			handler := NewSubscriptionHandler(usecase, testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/v1/subscriptions/:id/cancel")
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)

			err := handler.Cancel(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSubscriptionHandler_ExpireLapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_port.NewMockSubscriptionUsecase(ctrl)
	usecase.EXPECT().
		ExpireLapsed(gomock.Any(), expireLapsedLimit).
		Return(3, nil)

	handler := NewSubscriptionHandler(usecase, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/expire-lapsed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ExpireLapsed(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "expiry sweep completed", response.Message)
}
