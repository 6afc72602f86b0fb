package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	serviceMocks "frontdesk/internal/domains/auth/service/mocks"
	"frontdesk/internal/handlers/auth"
	"frontdesk/shared/failure"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "valid credentials",
			body:     `{"username":"admin","password":"s3cret"}`,
			wantCode: http.StatusOK,
			wantBody: `{"success":true}`,
		},
		{
			name:     "wrong password",
			body:     `{"username":"admin","password":"guess"}`,
			err:      failure.InvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"success":false,"error":"Invalid credentials"}`,
		},
		{
			name:     "missing password",
			body:     `{"username":"admin"}`,
			err:      failure.MissingCredentials,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Username and password are required"}`,
		},
		{
			name:     "datastore down",
			body:     `{"username":"admin","password":"s3cret"}`,
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := serviceMocks.NewMockAuth(ctrl)
			svc.EXPECT().Login(gomock.Any(), gomock.AssignableToTypeOf(dto.LoginRequest{})).Return(tt.err)

			router := chi.NewRouter()
			handler := auth.New(svc, mocks.NewOtel())
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
