package uploadhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"go.uber.org/zap"
)

// multipart framing around the file part
const formOverhead = 1 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuploadhandler
type Service interface {
	Upload(ctx context.Context, file *storage.Upload) (*upload.File, error)
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
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/upload", apperror.Middleware(h.uploadHandler))
	})
}

// @Tags		upload
// @Security	ApiKeyAuth
// @Accept		mpfd
// @Param		file	formData	file	true	"image or video"
// @Success	201		{object}	upload.File
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/upload [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
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

	h.logger.Info(
		"uploaded file info",
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size),
	)

	uploaded, err := h.service.Upload(r.Context(), file)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, uploaded)

	return nil
}
