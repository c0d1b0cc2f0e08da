package storagehandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"go.uber.org/zap"
)

type Files interface {
	Open(ctx context.Context, publicPath string) (io.ReadSeekCloser, *storage.Info, error)
}

type handler struct {
	files  Files
	logger *zap.Logger
}

// New serves the public upload tree.
func New(files Files, logger *zap.Logger) handlers.Handler {
	return &handler{
		files:  files,
		logger: logger,
	}
}

func (h *handler) Register(router chi.Router) {
	for _, dir := range []string{"/uploads", "/" + storage.DirUpload, "/" + storage.DirCatalog} {
		router.Get(dir+"/*", apperror.Middleware(h.serveFileHandler))
	}
}

func (h *handler) serveFileHandler(w http.ResponseWriter, r *http.Request) error {
	file, info, err := h.files.Open(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
			return apperror.ErrNotFound
		}

		h.logger.Error("unexpected error when opening public file", zap.String("path", r.URL.Path), zap.Error(err))

		return err
	}
	defer file.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}

	// Public files are data. Scripts inside an svg must not run on the API origin.
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")

	http.ServeContent(w, r, path.Base(r.URL.Path), info.ModTime, file)

	return nil
}
