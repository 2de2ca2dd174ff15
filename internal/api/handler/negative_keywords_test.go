package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/negative-keywords-api/internal/api/handler"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/provisioning/mocks"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestSubmitNegativeKeywords(t *testing.T) {
	validBatch := `[{"text":"cheap shoes","match_type":"PHRASE","level":"CAMPAIGN","campaign_id":"cmp-1001","campaign_name":"Search - Running"}]`

	testCases := []struct {
		name           string
		body           string
		setupMock      func(service *mocks.MockProvisioningService)
		expectedStatus int
		expectedCode   string
		validateBody   func(t *testing.T, body []byte)
	}{
		{
			name: "deve admitir um lote válido e devolver as contagens",
			body: validBatch,
			setupMock: func(service *mocks.MockProvisioningService) {
				service.EXPECT().
					SubmitRequests(gomock.Len(1)).
					Return(&domain.SubmissionResult{
						Added:   1,
						Errors:  []domain.SubmissionError{},
						Message: "1 request(s) queued for processing",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var result domain.SubmissionResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, 1, result.Added)
				assert.Equal(t, 0, result.Failed)
				assert.Equal(t, "1 request(s) queued for processing", result.Message)
			},
		},
		{
			name:           "deve rejeitar payload que não é JSON",
			body:           `{"text": "not an array"`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "deve rejeitar lote vazio",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "deve devolver erro de servidor quando o serviço falha",
			body: validBatch,
			setupMock: func(service *mocks.MockProvisioningService) {
				service.EXPECT().
					SubmitRequests(gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockProvisioningService(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/negative-keywords", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handler.SubmitNegativeKeywords(service).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tc.expectedCode, apiErr.Code)
			}
			if tc.validateBody != nil {
				tc.validateBody(t, rec.Body.Bytes())
			}
		})
	}
}

func TestRemoveNegativeKeyword(t *testing.T) {
	testCases := []struct {
		name           string
		requestID      string
		setupMock      func(service *mocks.MockProvisioningService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:      "deve remover uma solicitação existente",
			requestID: "kw_1700000000000_abc123",
			setupMock: func(service *mocks.MockProvisioningService) {
				service.EXPECT().RemoveRequest("kw_1700000000000_abc123").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "deve devolver 404 quando a solicitação não existe",
			requestID: "kw_1700000000000_naoexi",
			setupMock: func(service *mocks.MockProvisioningService) {
				service.EXPECT().RemoveRequest("kw_1700000000000_naoexi").Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrRequestNotFound,
		},
		{
			name:      "deve devolver erro de servidor quando o repositório falha",
			requestID: "kw_1700000000000_abc123",
			setupMock: func(service *mocks.MockProvisioningService) {
				service.EXPECT().RemoveRequest("kw_1700000000000_abc123").Return(false, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockProvisioningService(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(service)
			}

			req := httptest.NewRequest(http.MethodDelete, "/v1/negative-keywords/"+tc.requestID, nil)
			params := httprouter.Params{{Key: "id", Value: tc.requestID}}
			req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
			rec := httptest.NewRecorder()

			handler.RemoveNegativeKeyword(service).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tc.expectedCode, apiErr.Code)
			}
		})
	}
}

func TestGetProcessingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockProvisioningService(ctrl)
	service.EXPECT().GetProcessingStatus().Return(&domain.ProcessingStatus{
		Status:          domain.ProcessingStatusPending,
		PendingRequests: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/negative-keywords/processing-status", nil)
	rec := httptest.NewRecorder()

	handler.GetProcessingStatus(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status domain.ProcessingStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, domain.ProcessingStatusPending, status.Status)
	assert.Equal(t, 3, status.PendingRequests)
	assert.Nil(t, status.LastProcessed)
}
