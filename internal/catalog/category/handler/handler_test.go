package categoryhandler

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
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	mockcategoryhandler "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/handler/mocks"
	categoryservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/service"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, file string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}

	if file != "" {
		part, err := writer.CreateFormFile("image", file)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler(t *testing.T) {
	type mockBehavior func(s *mockcategoryhandler.MockService)

	tests := []struct {
		name               string
		request            func(t *testing.T) *http.Request
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "List filtered by brand",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/categories?brand_id=2", nil)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().GetCategories(gomock.Any(), category.Filter{BrandID: ptr(2)}).Return([]category.Category{}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"categories":[]}`,
		},
		{
			name: "List with non-numeric brand filter",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/categories?brand_id=x", nil)
			},
			mockBehavior:       func(s *mockcategoryhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"query parameter brand_id should be positive integer"}`,
		},
		{
			name: "Get includes brand",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/categories/3", nil)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().GetCategory(gomock.Any(), 3).Return(&category.Category{ID: 3, BrandID: 1, Image: "/uploads/categories/a.png"}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name: "Create without required fields",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/categories", `{"name_en":"Snacks"}`)
			},
			mockBehavior:       func(s *mockcategoryhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: brand_id, name_ar"}`,
		},
		{
			name: "Create with brand id as string",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/categories", `{"brand_id":"1","name_en":"Snacks","name_ar":"وجبات","image":"/upload/a.png"}`)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().
					CreateCategory(gomock.Any(), category.Category{BrandID: 1, NameEn: "Snacks", NameAr: "وجبات", Image: "/upload/a.png"}, category.Uploads{}).
					Return(&category.Category{ID: 7, BrandID: 1}, nil)
			},
			expectedStatusCode: 201,
		},
		{
			name: "Create for missing brand",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/categories",
					map[string]string{"brand_id": "42", "name_en": "Snacks", "name_ar": "وجبات"}, "snacks.png")
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().CreateCategory(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, data category.Category, uploads category.Uploads) (*category.Category, error) {
						if data.BrandID != 42 || uploads.Image == nil || uploads.Image.Filename != "snacks.png" {
							return nil, errors.New("unexpected input")
						}
						return nil, categoryservice.ErrBrandNotFound
					},
				)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"brand not found"}`,
		},
		{
			name: "Patch re-points brand",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPatch, "/categories/3", `{"brand_id":4}`)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().
					UpdateCategory(gomock.Any(), 3, category.Patch{BrandID: ptr(4)}, category.Uploads{}).
					Return(&category.Category{ID: 3, BrandID: 4}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name: "Patch cannot clear image",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPatch, "/categories/3", `{"image":""}`)
			},
			mockBehavior:       func(s *mockcategoryhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"field image should not be empty"}`,
		},
		{
			name: "Delete refused while products exist",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().DeleteCategory(gomock.Any(), 3).Return(guard.NewConflictErr(guard.KindCategory, 3))
			},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"cannot delete category: 3 products still reference it"}`,
		},
		{
			name: "Delete",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
			},
			mockBehavior: func(s *mockcategoryhandler.MockService) {
				s.EXPECT().DeleteCategory(gomock.Any(), 3).Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"message":"category deleted successfully"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockcategoryhandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, authMiddleware, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request(t))

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}
