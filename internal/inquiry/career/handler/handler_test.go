package careerhandler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"
	mockcareerhandler "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/handler/mocks"
	careerservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/service"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func denyAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func allowAll(next http.Handler) http.Handler {
	return next
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func applicationForm(t *testing.T, fields map[string]string, cv string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}

	if cv != "" {
		part, err := writer.CreateFormFile("cv", cv)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/careers", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler(t *testing.T) {
	applicant := map[string]string{
		"name":     "Omar",
		"email":    "omar@example.com",
		"phone":    "+971500000000",
		"position": "Chef",
	}

	tests := []struct {
		name               string
		authMiddleware     func(http.Handler) http.Handler
		request            func(t *testing.T) *http.Request
		mockBehavior       func(s *mockcareerhandler.MockService)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:           "Anonymous visitor applies with cv",
			authMiddleware: denyAll,
			request: func(t *testing.T) *http.Request {
				return applicationForm(t, applicant, "resume.pdf")
			},
			mockBehavior: func(s *mockcareerhandler.MockService) {
				s.EXPECT().CreateCareer(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, data career.Career, uploads career.Uploads) (*career.Career, error) {
						if data.Position != "Chef" || data.CV != nil || uploads.CV == nil || uploads.CV.Filename != "resume.pdf" {
							return nil, errors.New("unexpected input")
						}
						return &career.Career{ID: 1, Name: "Omar"}, nil
					})
			},
			expectedStatusCode: 201,
		},
		{
			name:           "Application without position",
			authMiddleware: denyAll,
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/careers", `{"name":"Omar","email":"omar@example.com"}`)
			},
			mockBehavior:       func(s *mockcareerhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: phone, position"}`,
		},
		{
			name:           "Application with disallowed cv",
			authMiddleware: denyAll,
			request: func(t *testing.T) *http.Request {
				return applicationForm(t, applicant, "resume.exe")
			},
			mockBehavior: func(s *mockcareerhandler.MockService) {
				s.EXPECT().CreateCareer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, upload.NewExtensionNotAllowedErr("exe"))
			},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"File type .exe is not allowed"}`,
		},
		{
			name:           "Anonymous visitor cannot read",
			authMiddleware: denyAll,
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/careers/1", nil)
			},
			mockBehavior:       func(s *mockcareerhandler.MockService) {},
			expectedStatusCode: 401,
		},
		{
			name:           "Dashboard reads missing",
			authMiddleware: allowAll,
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/careers/9", nil)
			},
			mockBehavior: func(s *mockcareerhandler.MockService) {
				s.EXPECT().GetCareer(gomock.Any(), 9).Return(nil, careerservice.ErrCareerNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"career application not found"}`,
		},
		{
			name:           "Dashboard clears cv",
			authMiddleware: allowAll,
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPatch, "/careers/2", `{"cv":""}`)
			},
			mockBehavior: func(s *mockcareerhandler.MockService) {
				empty := ""
				s.EXPECT().
					UpdateCareer(gomock.Any(), 2, career.Patch{CV: &empty}, career.Uploads{}).
					Return(&career.Career{ID: 2}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:           "Dashboard deletes",
			authMiddleware: allowAll,
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/careers/2", nil)
			},
			mockBehavior: func(s *mockcareerhandler.MockService) {
				s.EXPECT().DeleteCareer(gomock.Any(), 2).Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"message":"career application deleted successfully"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockcareerhandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, tc.authMiddleware, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request(t))

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}
