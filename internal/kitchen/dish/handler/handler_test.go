package dishhandler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	mockdishhandler "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/handler/mocks"
	dishservice "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/service"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	dishCategoryID := 2

	tests := []struct {
		name               string
		method             string
		target             string
		body               string
		mockBehavior       func(s *mockdishhandler.MockService)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:   "List by dish category",
			method: http.MethodGet,
			target: "/dishes?dish_category_id=2",
			mockBehavior: func(s *mockdishhandler.MockService) {
				s.EXPECT().GetDishes(gomock.Any(), dish.Filter{DishCategoryID: &dishCategoryID}).Return([]dish.Dish{}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"dishes":[]}`,
		},
		{
			name:   "Create for missing dish category",
			method: http.MethodPost,
			target: "/dishes",
			body:   `{"dish_category_id":"2","name_en":"Kunafa","name_ar":"كنافة"}`,
			mockBehavior: func(s *mockdishhandler.MockService) {
				s.EXPECT().
					CreateDish(gomock.Any(), dish.Dish{DishCategoryID: 2, NameEn: "Kunafa", NameAr: "كنافة"}, dish.Uploads{}).
					Return(nil, dishservice.ErrDishCategoryNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"dish category not found"}`,
		},
		{
			name:               "Create with zero dish category",
			method:             http.MethodPost,
			target:             "/dishes",
			body:               `{"dish_category_id":0,"name_en":"Kunafa","name_ar":"كنافة"}`,
			mockBehavior:       func(s *mockdishhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: dish_category_id"}`,
		},
		{
			name:   "Get",
			method: http.MethodGet,
			target: "/dishes/5",
			mockBehavior: func(s *mockdishhandler.MockService) {
				s.EXPECT().GetDish(gomock.Any(), 5).Return(&dish.Dish{ID: 5}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			target: "/dishes/5",
			mockBehavior: func(s *mockdishhandler.MockService) {
				s.EXPECT().DeleteDish(gomock.Any(), 5).Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"message":"dish deleted successfully"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockdishhandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, authMiddleware, zap.NewNop()).Register(router)

			req := httptest.NewRequest(tc.method, tc.target, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

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
