package dishcategoryhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockdishcategoryhandler
type Service interface {
	GetDishCategories(ctx context.Context) ([]dishcategory.DishCategory, error)
	GetDishCategory(ctx context.Context, id int) (*dishcategory.DishCategory, error)
	CreateDishCategory(ctx context.Context, data dishcategory.DishCategory, uploads dishcategory.Uploads) (*dishcategory.DishCategory, error)
	UpdateDishCategory(ctx context.Context, id int, patch dishcategory.Patch, uploads dishcategory.Uploads) (*dishcategory.DishCategory, error)
	DeleteDishCategory(ctx context.Context, id int) error
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
	router.Route("/dish-categories", func(dishCategoryRouter chi.Router) {
		dishCategoryRouter.Get("/", apperror.Middleware(h.getDishCategoriesHandler))
		dishCategoryRouter.Get("/{id}", apperror.Middleware(h.getDishCategoryHandler))

		dishCategoryRouter.Group(func(privateDishCategoryRouter chi.Router) {
			privateDishCategoryRouter.Use(h.authMiddleware)

			privateDishCategoryRouter.Post("/", apperror.Middleware(h.createDishCategoryHandler))
			privateDishCategoryRouter.Put("/{id}", apperror.Middleware(h.updateDishCategoryHandler))
			privateDishCategoryRouter.Patch("/{id}", apperror.Middleware(h.updateDishCategoryHandler))
			privateDishCategoryRouter.Delete("/{id}", apperror.Middleware(h.deleteDishCategoryHandler))
		})
	})
}

// @Tags		dish category
// @Success	200	{object}	DishCategoriesResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/dish-categories [get]
func (h *handler) getDishCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	dishCategories, err := h.service.GetDishCategories(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, DishCategoriesResponse{DishCategories: dishCategories})

	return nil
}

// @Tags		dish category
// @Param		id	path		int	true	"dish category id"
// @Success	200	{object}	DishCategoryResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/dish-categories/{id} [get]
func (h *handler) getDishCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	dc, err := h.service.GetDishCategory(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, DishCategoryResponse{DishCategory: *dc})

	return nil
}

// @Tags		dish category
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateDishCategoryRequest	true	"request body"
// @Success	201		{object}	DishCategoryResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/dish-categories [post]
func (h *handler) createDishCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateDishCategoryRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	image, err := request.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer image.Close()

	createdDishCategory, err := h.service.CreateDishCategory(r.Context(), dto.ToDomain(), dishcategory.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, DishCategoryResponse{DishCategory: *createdDishCategory})

	return nil
}

// @Tags		dish category
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int							true	"dish category id"
// @Param		request	body		UpdateDishCategoryRequest	true	"request body"
// @Success	200		{object}	DishCategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/dish-categories/{id} [patch]
func (h *handler) updateDishCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateDishCategoryRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	image, err := request.FormFile(r, "image")
	if err != nil {
		return err
	}
	defer image.Close()

	updatedDishCategory, err := h.service.UpdateDishCategory(r.Context(), id, dto.ToPatch(), dishcategory.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.JSON(w, r, DishCategoryResponse{DishCategory: *updatedDishCategory})

	return nil
}

// @Tags		dish category
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"dish category id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/dish-categories/{id} [delete]
func (h *handler) deleteDishCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteDishCategory(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("dish category"))

	return nil
}
