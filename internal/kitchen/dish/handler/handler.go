package dishhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockdishhandler
type Service interface {
	GetDishes(ctx context.Context, filter dish.Filter) ([]dish.Dish, error)
	GetDish(ctx context.Context, id int) (*dish.Dish, error)
	CreateDish(ctx context.Context, data dish.Dish, uploads dish.Uploads) (*dish.Dish, error)
	UpdateDish(ctx context.Context, id int, patch dish.Patch, uploads dish.Uploads) (*dish.Dish, error)
	DeleteDish(ctx context.Context, id int) error
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
	router.Route("/dishes", func(dishRouter chi.Router) {
		dishRouter.Get("/", apperror.Middleware(h.getDishesHandler))
		dishRouter.Get("/{id}", apperror.Middleware(h.getDishHandler))

		dishRouter.Group(func(privateDishRouter chi.Router) {
			privateDishRouter.Use(h.authMiddleware)

			privateDishRouter.Post("/", apperror.Middleware(h.createDishHandler))
			privateDishRouter.Put("/{id}", apperror.Middleware(h.updateDishHandler))
			privateDishRouter.Patch("/{id}", apperror.Middleware(h.updateDishHandler))
			privateDishRouter.Delete("/{id}", apperror.Middleware(h.deleteDishHandler))
		})
	})
}

// @Tags		dish
// @Param		dish_category_id	query		int	false	"dish category id"
// @Success	200					{object}	DishesResponse
// @Failure	400,500				{object}	apperror.AppError
// @Router		/dishes [get]
func (h *handler) getDishesHandler(w http.ResponseWriter, r *http.Request) error {
	dishCategoryID, err := request.QueryInt(r, "dish_category_id")
	if err != nil {
		return err
	}

	dishes, err := h.service.GetDishes(r.Context(), dish.Filter{DishCategoryID: dishCategoryID})
	if err != nil {
		return err
	}

	render.JSON(w, r, DishesResponse{Dishes: dishes})

	return nil
}

// @Tags		dish
// @Param		id	path		int	true	"dish id"
// @Success	200	{object}	DishResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/dishes/{id} [get]
func (h *handler) getDishHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	d, err := h.service.GetDish(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, DishResponse{Dish: *d})

	return nil
}

// @Tags		dish
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateDishRequest	true	"request body"
// @Success	201		{object}	DishResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/dishes [post]
func (h *handler) createDishHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateDishRequest
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

	createdDish, err := h.service.CreateDish(r.Context(), dto.ToDomain(), dish.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, DishResponse{Dish: *createdDish})

	return nil
}

// @Tags		dish
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int					true	"dish id"
// @Param		request	body		UpdateDishRequest	true	"request body"
// @Success	200		{object}	DishResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/dishes/{id} [patch]
func (h *handler) updateDishHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateDishRequest
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

	updatedDish, err := h.service.UpdateDish(r.Context(), id, dto.ToPatch(), dish.Uploads{Image: image})
	if err != nil {
		return err
	}

	render.JSON(w, r, DishResponse{Dish: *updatedDish})

	return nil
}

// @Tags		dish
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"dish id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/dishes/{id} [delete]
func (h *handler) deleteDishHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteDish(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("dish"))

	return nil
}
