package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "no error",
			err:                nil,
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
		{
			name:               "not found",
			err:                ErrNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"not found"}`,
		},
		{
			name:               "not found with message",
			err:                NewNotFoundErr("brand not found"),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"brand not found"}`,
		},
		{
			name:               "wrapped not found",
			err:                fmt.Errorf("lookup: %w", ErrNotFound),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"not found"}`,
		},
		{
			name:               "unauthorized",
			err:                ErrUnauthorized,
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"unauthorized"}`,
		},
		{
			name:               "unauthorized with message",
			err:                NewUnauthorizedErr("invalid credentials"),
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"invalid credentials"}`,
		},
		{
			name:               "request body over the limit",
			err:                fmt.Errorf("parse form: %w", &http.MaxBytesError{Limit: 151 << 20}),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"Request body exceeds the 151MB limit"}`,
		},
		{
			name:               "client error",
			err:                NewAppError("missing required fields: name_en"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"missing required fields: name_en"}`,
		},
		{
			name:               "unexpected error is not leaked",
			err:                errors.New("pq: connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Middleware(func(w http.ResponseWriter, r *http.Request) error {
				return tc.err
			})

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.Equal(t, tc.expectedBody, w.Body.String())
		})
	}
}
