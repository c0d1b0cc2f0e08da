package authhandler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodcatalog-backend/internal/auth"
	mockauthhandler "github.com/xw1nchester/foodcatalog-backend/internal/auth/handler/mocks"
	jwtauth "github.com/xw1nchester/foodcatalog-backend/internal/auth/jwt"
	authservice "github.com/xw1nchester/foodcatalog-backend/internal/auth/service"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHandler_loginHandler(t *testing.T) {
	type mockBehavior func(s *mockauthhandler.MockService, dto auth.LoginRequest)

	testTable := []struct {
		name               string
		inputBody          string
		inputDto           auth.LoginRequest
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:      "OK",
			inputBody: `{"username":"admin","password":"s3cret"}`,
			inputDto:  auth.LoginRequest{Username: "admin", Password: "s3cret"},
			mockBehavior: func(s *mockauthhandler.MockService, dto auth.LoginRequest) {
				s.EXPECT().Login(gomock.Any(), dto).Return(&auth.TokenResponse{AccessToken: "token"}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"accessToken":"token"}`,
		},
		{
			name:               "Missing password",
			inputBody:          `{"username":"admin"}`,
			mockBehavior:       func(s *mockauthhandler.MockService, dto auth.LoginRequest) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: password"}`,
		},
		{
			name:               "Malformed body",
			inputBody:          `{"username":`,
			mockBehavior:       func(s *mockauthhandler.MockService, dto auth.LoginRequest) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"failed to decode request body"}`,
		},
		{
			name:      "Invalid credentials",
			inputBody: `{"username":"admin","password":"wrong"}`,
			inputDto:  auth.LoginRequest{Username: "admin", Password: "wrong"},
			mockBehavior: func(s *mockauthhandler.MockService, dto auth.LoginRequest) {
				s.EXPECT().Login(gomock.Any(), dto).Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedStatusCode: 401,
			expectedBody:       `{"message":"invalid credentials"}`,
		},
		{
			name:      "Service unexpected failure",
			inputBody: `{"username":"admin","password":"s3cret"}`,
			inputDto:  auth.LoginRequest{Username: "admin", Password: "s3cret"},
			mockBehavior: func(s *mockauthhandler.MockService, dto auth.LoginRequest) {
				s.EXPECT().Login(gomock.Any(), dto).Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: 500,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			authService := mockauthhandler.NewMockService(c)
			tc.mockBehavior(authService, tc.inputDto)

			router := chi.NewRouter()
			New(authService, authMiddleware, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(
				http.MethodPost,
				"/auth/login",
				bytes.NewBufferString(tc.inputBody),
			)

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_meHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	router := chi.NewRouter()
	New(mockauthhandler.NewMockService(c), authMiddleware, zap.NewNop()).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())
}

func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), jwtauth.SubjectContextKey{}, "admin")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
