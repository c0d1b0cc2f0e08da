package categoryhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcategoryhandler
type Service interface {
	GetCategories(ctx context.Context, filter category.Filter) ([]category.Category, error)
	GetCategory(ctx context.Context, id int) (*category.Category, error)
	CreateCategory(ctx context.Context, data category.Category, uploads category.Uploads) (*category.Category, error)
	UpdateCategory(ctx context.Context, id int, patch category.Patch, uploads category.Uploads) (*category.Category, error)
	DeleteCategory(ctx context.Context, id int) error
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
	router.Route("/categories", func(categoryRouter chi.Router) {
		categoryRouter.Get("/", apperror.Middleware(h.getCategoriesHandler))
		categoryRouter.Get("/{id}", apperror.Middleware(h.getCategoryHandler))

		categoryRouter.Group(func(privateCategoryRouter chi.Router) {
			privateCategoryRouter.Use(h.authMiddleware)

			privateCategoryRouter.Post("/", apperror.Middleware(h.createCategoryHandler))
			privateCategoryRouter.Put("/{id}", apperror.Middleware(h.updateCategoryHandler))
			privateCategoryRouter.Patch("/{id}", apperror.Middleware(h.updateCategoryHandler))
			privateCategoryRouter.Delete("/{id}", apperror.Middleware(h.deleteCategoryHandler))
		})
	})
}

func readUploads(r *http.Request) (category.Uploads, error) {
	image, err := request.FormFile(r, "image")
	if err != nil {
		return category.Uploads{}, err
	}

	return category.Uploads{Image: image}, nil
}

// @Tags		category
// @Param		brand_id	query		int	false	"brand id"
// @Success	200			{object}	CategoriesResponse
// @Failure	400,500		{object}	apperror.AppError
// @Router		/categories [get]
func (h *handler) getCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	brandID, err := request.QueryInt(r, "brand_id")
	if err != nil {
		return err
	}

	categories, err := h.service.GetCategories(r.Context(), category.Filter{BrandID: brandID})
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoriesResponse{Categories: categories})

	return nil
}

// @Tags		category
// @Param		id	path		int	true	"category id"
// @Success	200	{object}	CategoryResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [get]
func (h *handler) getCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	c, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoryResponse{Category: *c})

	return nil
}

// @Tags		category
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateCategoryRequest	true	"request body"
// @Success	201		{object}	CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories [post]
func (h *handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateCategoryRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	uploads, err := readUploads(r)
	if err != nil {
		return err
	}
	defer uploads.Close()

	createdCategory, err := h.service.CreateCategory(r.Context(), dto.ToDomain(), uploads)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CategoryResponse{Category: *createdCategory})

	return nil
}

// @Tags		category
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int						true	"category id"
// @Param		request	body		UpdateCategoryRequest	true	"request body"
// @Success	200		{object}	CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [patch]
func (h *handler) updateCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateCategoryRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	uploads, err := readUploads(r)
	if err != nil {
		return err
	}
	defer uploads.Close()

	updatedCategory, err := h.service.UpdateCategory(r.Context(), id, dto.ToPatch(), uploads)
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoryResponse{Category: *updatedCategory})

	return nil
}

// @Tags		category
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"category id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [delete]
func (h *handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("category"))

	return nil
}
