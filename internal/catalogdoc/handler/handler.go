package catalogdochandler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalogdoc"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"go.uber.org/zap"
)

// multipart framing around the file part
const formOverhead = 1 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcatalogdochandler
type Service interface {
	Open(ctx context.Context) (io.ReadSeekCloser, *storage.Info, error)
	Replace(ctx context.Context, file *storage.Upload) (*catalogdoc.File, error)
	Delete(ctx context.Context) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	maxSize        int64
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	maxSize int64,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		maxSize:        maxSize,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/catalog", func(catalogRouter chi.Router) {
		catalogRouter.Get("/", apperror.Middleware(h.getCatalogHandler))

		catalogRouter.Group(func(privateCatalogRouter chi.Router) {
			privateCatalogRouter.Use(h.authMiddleware)

			privateCatalogRouter.Post("/", apperror.Middleware(h.replaceCatalogHandler))
			privateCatalogRouter.Delete("/", apperror.Middleware(h.deleteCatalogHandler))
		})
	})
}

// @Tags		catalog
// @Produce	application/pdf
// @Success	200
// @Failure	404,500	{object}	apperror.AppError
// @Router		/catalog [get]
func (h *handler) getCatalogHandler(w http.ResponseWriter, r *http.Request) error {
	file, info, err := h.service.Open(r.Context())
	if err != nil {
		return err
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+catalogdoc.FileName+`"`)

	http.ServeContent(w, r, catalogdoc.FileName, info.ModTime, file)

	return nil
}

// @Tags		catalog
// @Security	ApiKeyAuth
// @Accept		mpfd
// @Param		file	formData	file	true	"catalog pdf"
// @Success	201		{object}	catalogdoc.File
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/catalog [post]
func (h *handler) replaceCatalogHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+formOverhead)

	file, err := request.FormFile(r, "file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return upload.NewFileTooLargeErr(h.maxSize)
		}

		return err
	}
	if file == nil {
		return upload.ErrNoFile
	}
	defer file.Close()

	saved, err := h.service.Replace(r.Context(), file)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, saved)

	return nil
}

// @Tags		catalog
// @Security	ApiKeyAuth
// @Success	200	{object}	response.Message
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/catalog [delete]
func (h *handler) deleteCatalogHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context()); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("catalog"))

	return nil
}
