package searchhandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/search"
	searchservice "github.com/xw1nchester/foodcatalog-backend/internal/search/service"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocksearchhandler
type Service interface {
	Search(ctx context.Context, query string, category search.Category) ([]search.Result, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/search", apperror.Middleware(h.searchHandler))
}

// @Tags		search
// @Param		query		query		string	false	"substring of the name"
// @Param		category	query		string	false	"brand, product (default) or recipe"
// @Success	200			{object}	SearchResponse
// @Failure	400,500		{object}	apperror.AppError
// @Router		/search [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		render.JSON(w, r, SearchResponse{Results: []search.Result{}, Message: noQueryMessage})
		return nil
	}

	category, ok := search.ParseCategory(r.URL.Query().Get("category"))
	if !ok {
		return searchservice.ErrUnknownCategory
	}

	results, err := h.service.Search(r.Context(), query, category)
	if err != nil {
		return err
	}

	render.JSON(w, r, SearchResponse{Results: results})

	return nil
}
