package producthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproducthandler
type Service interface {
	GetProducts(ctx context.Context, filter product.Filter) ([]product.Product, error)
	GetProduct(ctx context.Context, id int) (*product.Product, error)
	CreateProduct(ctx context.Context, data product.Product, uploads product.Uploads) (*product.Product, error)
	UpdateProduct(ctx context.Context, id int, patch product.Patch, uploads product.Uploads) (*product.Product, error)
	DeleteProduct(ctx context.Context, id int) error
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
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Get("/", apperror.Middleware(h.getProductsHandler))
		productRouter.Get("/{id}", apperror.Middleware(h.getProductHandler))

		productRouter.Group(func(privateProductRouter chi.Router) {
			privateProductRouter.Use(h.authMiddleware)

			privateProductRouter.Post("/", apperror.Middleware(h.createProductHandler))
			privateProductRouter.Put("/{id}", apperror.Middleware(h.updateProductHandler))
			privateProductRouter.Patch("/{id}", apperror.Middleware(h.updateProductHandler))
			privateProductRouter.Delete("/{id}", apperror.Middleware(h.deleteProductHandler))
		})
	})
}

func readUploads(r *http.Request) (product.Uploads, error) {
	image, err := request.FormFile(r, "image")
	if err != nil {
		return product.Uploads{}, err
	}

	return product.Uploads{Image: image}, nil
}

// @Tags		product
// @Param		category_id	query		int	false	"category id"
// @Param		brand_id	query		int	false	"brand id"
// @Success	200			{object}	ProductsResponse
// @Failure	400,500		{object}	apperror.AppError
// @Router		/products [get]
func (h *handler) getProductsHandler(w http.ResponseWriter, r *http.Request) error {
	categoryID, err := request.QueryInt(r, "category_id")
	if err != nil {
		return err
	}

	brandID, err := request.QueryInt(r, "brand_id")
	if err != nil {
		return err
	}

	products, err := h.service.GetProducts(r.Context(), product.Filter{CategoryID: categoryID, BrandID: brandID})
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductsResponse{Products: products})

	return nil
}

// @Tags		product
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	ProductResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getProductHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductResponse{Product: *p})

	return nil
}

// @Tags		product
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		request	body		CreateProductRequest	true	"request body"
// @Success	201		{object}	ProductResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products [post]
func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateProductRequest
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

	createdProduct, err := h.service.CreateProduct(r.Context(), dto.ToDomain(), uploads)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ProductResponse{Product: *createdProduct})

	return nil
}

// @Tags		product
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int						true	"product id"
// @Param		request	body		UpdateProductRequest	true	"request body"
// @Success	200		{object}	ProductResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [patch]
func (h *handler) updateProductHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateProductRequest
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

	updatedProduct, err := h.service.UpdateProduct(r.Context(), id, dto.ToPatch(), uploads)
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductResponse{Product: *updatedProduct})

	return nil
}

// @Tags		product
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [delete]
func (h *handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("product"))

	return nil
}
