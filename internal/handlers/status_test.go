package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		status       models.Status
		expectedCode int
		expectedBody string
	}{
		{
			name:         "connected",
			status:       models.Status{Database: true, Cache: true},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"Connected","database":true,"cache":true}`,
		},
		{
			name:         "connected without cache",
			status:       models.Status{Database: true},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"Connected","database":true,"cache":false}`,
		},
		{
			name:         "database down",
			status:       models.Status{Cache: true},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"status":"Not Connected","database":false,"cache":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStatusChecker(ctrl)
			mockSvc.EXPECT().Check(gomock.Any()).Return(tt.status)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
			rr := httptest.NewRecorder()
			NewStatusHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
