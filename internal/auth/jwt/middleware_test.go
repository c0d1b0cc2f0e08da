package jwtauth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	mockjwt "github.com/xw1nchester/foodcatalog-backend/internal/auth/jwt/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMock  func(m *mockjwt.MockJwtManager)
		expected   Decision
	}{
		{
			name:       "No auth header",
			authHeader: "",
			setupMock:  func(m *mockjwt.MockJwtManager) {},
			expected:   Deny(ReasonMissingHeader),
		},
		{
			name:       "Invalid format",
			authHeader: "Bearer",
			setupMock:  func(m *mockjwt.MockJwtManager) {},
			expected:   Deny(ReasonInvalidHeader),
		},
		{
			name:       "Wrong scheme",
			authHeader: "Basic YWRtaW46YWRtaW4=",
			setupMock:  func(m *mockjwt.MockJwtManager) {},
			expected:   Deny(ReasonInvalidHeader),
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer invalid.token.here",
			setupMock: func(m *mockjwt.MockJwtManager) {
				m.EXPECT().ParseToken("invalid.token.here").Return("", errors.New("invalid token"))
			},
			expected: Deny(ReasonInvalidToken),
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid.token",
			setupMock: func(m *mockjwt.MockJwtManager) {
				m.EXPECT().ParseToken("valid.token").Return("admin", nil)
			},
			expected: Allow("admin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokenManager := mockjwt.NewMockJwtManager(ctrl)
			tt.setupMock(tokenManager)

			req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			assert.Equal(t, tt.expected, Authorize(req, tokenManager))
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenManager := mockjwt.NewMockJwtManager(ctrl)
	middleware := NewMiddleware(zap.NewNop(), mockTokenManager)

	tests := []struct {
		name               string
		authHeader         string
		setupMock          func()
		expectedStatusCode int
		expectedBody       string
		expectedSubject    *string
	}{
		{
			name:               "No auth header",
			authHeader:         "",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"missing authorization header"}`,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer invalid.token.here",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("invalid.token.here").
					Return("", errors.New("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"invalid or expired token"}`,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid.token",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("valid.token").
					Return("admin", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedSubject:    ptr("admin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/brands/1", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			var actualSubject *string

			protectedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if v := SubjectFromContext(r.Context()); v != "" {
					actualSubject = &v
				}
				w.WriteHeader(http.StatusOK)
			})

			middleware(protectedHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedSubject, actualSubject)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
