package brandhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockbrandhandler
type Service interface {
	GetBrands(ctx context.Context) ([]brand.Brand, error)
	GetBrand(ctx context.Context, id int) (*brand.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*brand.Brand, error)
	CreateBrand(ctx context.Context, data brand.Brand, uploads brand.Uploads) (*brand.Brand, error)
	UpdateBrand(ctx context.Context, id int, patch brand.Patch, uploads brand.Uploads) (*brand.Brand, error)
	DeleteBrand(ctx context.Context, id int) error
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
	router.Route("/brands", func(brandRouter chi.Router) {
		brandRouter.Get("/", apperror.Middleware(h.getBrandsHandler))
		brandRouter.Get("/{id}", apperror.Middleware(h.getBrandHandler))
		brandRouter.Get("/slug/{slug}", apperror.Middleware(h.getBrandBySlugHandler))

		brandRouter.Group(func(privateBrandRouter chi.Router) {
			privateBrandRouter.Use(h.authMiddleware)

			privateBrandRouter.Post("/", apperror.Middleware(h.createBrandHandler))
			privateBrandRouter.Put("/{id}", apperror.Middleware(h.updateBrandHandler))
			privateBrandRouter.Patch("/{id}", apperror.Middleware(h.updateBrandHandler))
			privateBrandRouter.Delete("/{id}", apperror.Middleware(h.deleteBrandHandler))
		})
	})
}

func readUploads(r *http.Request) (brand.Uploads, error) {
	var (
		uploads brand.Uploads
		err     error
	)

	if uploads.MainImage, err = request.FormFile(r, "main_image"); err != nil {
		return brand.Uploads{}, err
	}

	if uploads.Banner, err = request.FormFile(r, "banner"); err != nil {
		uploads.Close()
		return brand.Uploads{}, err
	}

	if uploads.SmallImage, err = request.FormFile(r, "small_image"); err != nil {
		uploads.Close()
		return brand.Uploads{}, err
	}

	return uploads, nil
}

// @Tags		brand
// @Success	200		{object}	BrandsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/brands [get]
func (h *handler) getBrandsHandler(w http.ResponseWriter, r *http.Request) error {
	brands, err := h.service.GetBrands(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandsResponse{Brands: brands})

	return nil
}

// @Tags		brand
// @Param		id		path		int	true	"brand id"
// @Success	200		{object}	BrandResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/brands/{id} [get]
func (h *handler) getBrandHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	b, err := h.service.GetBrand(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandResponse{Brand: *b})

	return nil
}

// @Tags		brand
// @Param		slug	path		string	true	"brand slug"
// @Success	200		{object}	BrandResponse
// @Failure	404,500	{object}	apperror.AppError
// @Router		/brands/slug/{slug} [get]
func (h *handler) getBrandBySlugHandler(w http.ResponseWriter, r *http.Request) error {
	b, err := h.service.GetBrandBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandResponse{Brand: *b})

	return nil
}

// @Tags		brand
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateBrandRequest	true	"request body"
// @Success	201		{object}	BrandResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/brands [post]
func (h *handler) createBrandHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateBrandRequest
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

	createdBrand, err := h.service.CreateBrand(r.Context(), dto.ToDomain(), uploads)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BrandResponse{Brand: *createdBrand})

	return nil
}

// @Tags		brand
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int					true	"brand id"
// @Param		request	body		UpdateBrandRequest	true	"request body"
// @Success	200		{object}	BrandResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/brands/{id} [patch]
func (h *handler) updateBrandHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateBrandRequest
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

	updatedBrand, err := h.service.UpdateBrand(r.Context(), id, dto.ToPatch(), uploads)
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandResponse{Brand: *updatedBrand})

	return nil
}

// @Tags		brand
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"brand id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/brands/{id} [delete]
func (h *handler) deleteBrandHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteBrand(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("brand"))

	return nil
}
