package searchhandler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodcatalog-backend/internal/search"
	mocksearchhandler "github.com/xw1nchester/foodcatalog-backend/internal/search/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

func TestHandler_Search(t *testing.T) {
	type mockBehavior func(s *mocksearchhandler.MockService)

	tests := []struct {
		name               string
		query              url.Values
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "No query",
			query:              url.Values{"category": {"brand"}},
			mockBehavior:       func(s *mocksearchhandler.MockService) {},
			expectedStatusCode: 200,
			expectedBody:       `{"results":[],"message":"No query provided"}`,
		},
		{
			name:               "Whitespace query",
			query:              url.Values{"query": {"  "}},
			mockBehavior:       func(s *mocksearchhandler.MockService) {},
			expectedStatusCode: 200,
			expectedBody:       `{"results":[],"message":"No query provided"}`,
		},
		{
			name:               "Unknown category",
			query:              url.Values{"query": {"tahini"}, "category": {"store"}},
			mockBehavior:       func(s *mocksearchhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"category should be one of: brand, product, recipe"}`,
		},
		{
			name:  "Defaults to products",
			query: url.Values{"query": {"tahini"}},
			mockBehavior: func(s *mocksearchhandler.MockService) {
				s.EXPECT().Search(gomock.Any(), "tahini", search.CategoryProduct).Return([]search.Result{
					{
						ID:           3,
						Name:         "Tahini",
						NameAr:       "طحينة",
						Category:     search.CategoryProduct,
						Image:        ptr("/uploads/products/tahini.png"),
						Color:        ptr("#c8a165"),
						CategoryName: ptr("Spreads"),
						BrandName:    ptr("Al Wadi"),
					},
				}, nil)
			},
			expectedStatusCode: 200,
			expectedBody: `{"results":[{"id":3,"name":"Tahini","nameAr":"طحينة","category":"product",` +
				`"image":"/uploads/products/tahini.png","color":"#c8a165","categoryName":"Spreads","brandName":"Al Wadi"}]}`,
		},
		{
			name:  "Recipe by arabic dish name",
			query: url.Values{"query": {"كبسة"}, "category": {"recipe"}},
			mockBehavior: func(s *mocksearchhandler.MockService) {
				s.EXPECT().Search(gomock.Any(), "كبسة", search.CategoryRecipe).Return([]search.Result{
					{
						ID:          4,
						Name:        "Kabsa",
						NameAr:      "كبسة",
						Category:    search.CategoryRecipe,
						Level:       ptr("easy"),
						PrepTime:    ptr(20),
						CookingTime: ptr(60),
					},
				}, nil)
			},
			expectedStatusCode: 200,
			expectedBody: `{"results":[{"id":4,"name":"Kabsa","nameAr":"كبسة","category":"recipe","image":null,` +
				`"level":"easy","prepTime":20,"cookingTime":60}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mocksearchhandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, zap.NewNop()).Register(router)

			req := httptest.NewRequest(http.MethodGet, "/search?"+tc.query.Encode(), nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
