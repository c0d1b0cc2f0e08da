package recipehandler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockrecipehandler
type Service interface {
	GetRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error)
	GetRecipe(ctx context.Context, id int) (*recipe.Recipe, error)
	CreateRecipe(ctx context.Context, data recipe.Recipe, uploads recipe.Uploads) (*recipe.Recipe, error)
	UpdateRecipe(ctx context.Context, id int, patch recipe.Patch, uploads recipe.Uploads) (*recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id int) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/recipes", func(recipeRouter chi.Router) {
		recipeRouter.Get("/", apperror.Middleware(h.getRecipesHandler))
		recipeRouter.Get("/{id}", apperror.Middleware(h.getRecipeHandler))

		recipeRouter.Group(func(privateRecipeRouter chi.Router) {
			privateRecipeRouter.Use(h.authMiddleware)

			privateRecipeRouter.Post("/", apperror.Middleware(h.createRecipeHandler))
			privateRecipeRouter.Put("/{id}", apperror.Middleware(h.updateRecipeHandler))
			privateRecipeRouter.Patch("/{id}", apperror.Middleware(h.updateRecipeHandler))
			privateRecipeRouter.Delete("/{id}", apperror.Middleware(h.deleteRecipeHandler))
		})
	})
}

// formSteps reads a step list sent as a JSON encoded multipart value.
func formSteps(r *http.Request, key string) (*[]recipe.Step, error) {
	raw, ok := request.FormValue(r, key)
	if !ok {
		return nil, nil
	}

	var steps []recipe.Step
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, apperror.NewAppError(fmt.Sprintf("field %s should be a JSON array of {en, ar}", key))
	}

	return &steps, nil
}

// decodeSteps fills ingredients and instructions of a multipart request.
func decodeSteps(r *http.Request, ingredients, instructions **[]recipe.Step) error {
	if !request.IsMultipart(r) {
		return nil
	}

	var err error

	if *ingredients, err = formSteps(r, "ingredients"); err != nil {
		return err
	}

	if *instructions, err = formSteps(r, "instructions"); err != nil {
		return err
	}

	return nil
}

// @Tags		recipe
// @Param		dish_id		query		int	false	"dish id"
// @Param		product_id	query		int	false	"product id"
// @Success	200			{object}	RecipesResponse
// @Failure	400,500		{object}	apperror.AppError
// @Router		/recipes [get]
func (h *handler) getRecipesHandler(w http.ResponseWriter, r *http.Request) error {
	dishID, err := request.QueryInt(r, "dish_id")
	if err != nil {
		return err
	}

	productID, err := request.QueryInt(r, "product_id")
	if err != nil {
		return err
	}

	recipes, err := h.service.GetRecipes(r.Context(), recipe.Filter{DishID: dishID, ProductID: productID})
	if err != nil {
		return err
	}

	render.JSON(w, r, RecipesResponse{Recipes: recipes})

	return nil
}

// @Tags		recipe
// @Param		id	path		int	true	"recipe id"
// @Success	200	{object}	RecipeResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/recipes/{id} [get]
func (h *handler) getRecipeHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	rc, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, RecipeResponse{Recipe: *rc})

	return nil
}

// @Tags		recipe
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateRecipeRequest	true	"request body"
// @Success	201		{object}	RecipeResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/recipes [post]
func (h *handler) createRecipeHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateRecipeRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	var ingredients, instructions *[]recipe.Step
	if err := decodeSteps(r, &ingredients, &instructions); err != nil {
		return err
	}

	if ingredients != nil {
		dto.Ingredients = *ingredients
	}

	if instructions != nil {
		dto.Instructions = *instructions
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	image, err := request.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer image.Close()

	createdRecipe, err := h.service.CreateRecipe(r.Context(), dto.ToDomain(), recipe.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RecipeResponse{Recipe: *createdRecipe})

	return nil
}

// @Tags		recipe
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int					true	"recipe id"
// @Param		request	body		UpdateRecipeRequest	true	"request body"
// @Success	200		{object}	RecipeResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/recipes/{id} [patch]
func (h *handler) updateRecipeHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateRecipeRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := decodeSteps(r, &dto.Ingredients, &dto.Instructions); err != nil {
		return err
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	image, err := request.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer image.Close()

	updatedRecipe, err := h.service.UpdateRecipe(r.Context(), id, dto.ToPatch(), recipe.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.JSON(w, r, RecipeResponse{Recipe: *updatedRecipe})

	return nil
}

// @Tags		recipe
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"recipe id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/recipes/{id} [delete]
func (h *handler) deleteRecipeHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRecipe(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("recipe"))

	return nil
}
