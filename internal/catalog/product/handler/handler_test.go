package producthandler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	mockproducthandler "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/handler/mocks"
	productservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/service"
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

func TestHandler(t *testing.T) {
	type mockBehavior func(s *mockproducthandler.MockService)

	tests := []struct {
		name               string
		request            *http.Request
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:    "List filtered by category and brand",
			request: httptest.NewRequest(http.MethodGet, "/products?category_id=3&brand_id=1", nil),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().
					GetProducts(gomock.Any(), product.Filter{CategoryID: ptr(3), BrandID: ptr(1)}).
					Return([]product.Product{}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"products":[]}`,
		},
		{
			name:    "List unfiltered",
			request: httptest.NewRequest(http.MethodGet, "/products", nil),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().GetProducts(gomock.Any(), product.Filter{}).Return([]product.Product{}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"products":[]}`,
		},
		{
			name:               "List with negative category",
			request:            httptest.NewRequest(http.MethodGet, "/products?category_id=-1", nil),
			mockBehavior:       func(s *mockproducthandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"query parameter category_id should be positive integer"}`,
		},
		{
			name:    "Get missing",
			request: httptest.NewRequest(http.MethodGet, "/products/8", nil),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().GetProduct(gomock.Any(), 8).Return(nil, productservice.ErrProductNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"product not found"}`,
		},
		{
			name:               "Create without category",
			request:            jsonRequest(http.MethodPost, "/products", `{"name_en":"Tea","name_ar":"شاي"}`),
			mockBehavior:       func(s *mockproducthandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: category_id"}`,
		},
		{
			name:    "Create for missing category",
			request: jsonRequest(http.MethodPost, "/products", `{"category_id":99,"name_en":"Tea","name_ar":"شاي"}`),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().
					CreateProduct(gomock.Any(), product.Product{CategoryID: 99, NameEn: "Tea", NameAr: "شاي"}, product.Uploads{}).
					Return(nil, productservice.ErrCategoryNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"category not found"}`,
		},
		{
			name:    "Put clears image",
			request: jsonRequest(http.MethodPut, "/products/8", `{"image":""}`),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().
					UpdateProduct(gomock.Any(), 8, product.Patch{Image: ptr("")}, product.Uploads{}).
					Return(&product.Product{ID: 8}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:    "Delete",
			request: httptest.NewRequest(http.MethodDelete, "/products/8", nil),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().DeleteProduct(gomock.Any(), 8).Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"message":"product deleted successfully"}`,
		},
		{
			name:    "Delete failure",
			request: httptest.NewRequest(http.MethodDelete, "/products/8", nil),
			mockBehavior: func(s *mockproducthandler.MockService) {
				s.EXPECT().DeleteProduct(gomock.Any(), 8).Return(errors.New("unexpected error"))
			},
			expectedStatusCode: 500,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockproducthandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, authMiddleware, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)

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
