package recipehandler

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
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe"
	mockrecipehandler "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/handler/mocks"
	recipeservice "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/service"
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

func multipartRequest(t *testing.T, method, target string, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name               string
		request            func(t *testing.T) *http.Request
		mockBehavior       func(s *mockrecipehandler.MockService)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "List by dish and product",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/recipes?dish_id=4&product_id=9", nil)
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().GetRecipes(gomock.Any(), recipe.Filter{DishID: ptr(4), ProductID: ptr(9)}).Return([]recipe.Recipe{}, nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"recipes":[]}`,
		},
		{
			name: "Create from JSON",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/recipes",
					`{"dish_id":4,"level":"easy","prep_time":10,"servings":2,"ingredients":[{"en":"Flour","ar":"طحين"}]}`)
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().
					CreateRecipe(gomock.Any(), recipe.Recipe{
						DishID:      4,
						Level:       "easy",
						PrepTime:    10,
						Servings:    2,
						Ingredients: []recipe.Step{{En: "Flour", Ar: "طحين"}},
					}, recipe.Uploads{}).
					Return(&recipe.Recipe{ID: 1, DishID: 4}, nil)
			},
			expectedStatusCode: 201,
		},
		{
			name: "Create from multipart with encoded steps",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/recipes", map[string]string{
					"dish_id":      "4",
					"product_id":   "9",
					"cooking_time": "25",
					"ingredients":  `[{"en":"Sugar","ar":"سكر"}]`,
					"instructions": `[{"en":"Stir","ar":"حرك"},{"en":"Serve","ar":"قدم"}]`,
				})
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, data recipe.Recipe, _ recipe.Uploads) (*recipe.Recipe, error) {
						if data.DishID != 4 || data.ProductID == nil || *data.ProductID != 9 || data.CookingTime != 25 {
							return nil, errors.New("unexpected fields")
						}
						if len(data.Ingredients) != 1 || len(data.Instructions) != 2 || data.Instructions[1].Ar != "قدم" {
							return nil, errors.New("unexpected steps")
						}
						return &data, nil
					},
				)
			},
			expectedStatusCode: 201,
		},
		{
			name: "Create from multipart with malformed steps",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/recipes", map[string]string{
					"dish_id":     "4",
					"ingredients": `flour, sugar`,
				})
			},
			mockBehavior:       func(s *mockrecipehandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"field ingredients should be a JSON array of {en, ar}"}`,
		},
		{
			name: "Create without dish",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/recipes", `{"level":"easy"}`)
			},
			mockBehavior:       func(s *mockrecipehandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"message":"missing required fields: dish_id"}`,
		},
		{
			name: "Create for missing dish",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPost, "/recipes", `{"dish_id":404}`)
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, recipeservice.ErrDishNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"message":"dish not found"}`,
		},
		{
			name: "Patch unlinks product",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(http.MethodPatch, "/recipes/2", `{"product_id":0}`)
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().
					UpdateRecipe(gomock.Any(), 2, recipe.Patch{ProductID: ptr(0)}, recipe.Uploads{}).
					Return(&recipe.Recipe{ID: 2}, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name: "Delete",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/recipes/2", nil)
			},
			mockBehavior: func(s *mockrecipehandler.MockService) {
				s.EXPECT().DeleteRecipe(gomock.Any(), 2).Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       `{"message":"recipe deleted successfully"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockrecipehandler.NewMockService(c)
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
