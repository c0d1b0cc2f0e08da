package exportrequesthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockexportrequesthandler
type Service interface {
	GetExportRequests(ctx context.Context) ([]exportrequest.ExportRequest, error)
	GetExportRequest(ctx context.Context, id int) (*exportrequest.ExportRequest, error)
	CreateExportRequest(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error)
	UpdateExportRequest(ctx context.Context, id int, patch exportrequest.Patch) (*exportrequest.ExportRequest, error)
	DeleteExportRequest(ctx context.Context, id int) error
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
	router.Route("/export-requests", func(exportRouter chi.Router) {
		exportRouter.Post("/", apperror.Middleware(h.createExportRequestHandler))

		exportRouter.Group(func(privateExportRouter chi.Router) {
			privateExportRouter.Use(h.authMiddleware)

			privateExportRouter.Get("/", apperror.Middleware(h.getExportRequestsHandler))
			privateExportRouter.Get("/{id}", apperror.Middleware(h.getExportRequestHandler))
			privateExportRouter.Put("/{id}", apperror.Middleware(h.updateExportRequestHandler))
			privateExportRouter.Patch("/{id}", apperror.Middleware(h.updateExportRequestHandler))
			privateExportRouter.Delete("/{id}", apperror.Middleware(h.deleteExportRequestHandler))
		})
	})
}

// @Tags		export request
// @Security	ApiKeyAuth
// @Success	200	{object}	ExportRequestsResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/export-requests [get]
func (h *handler) getExportRequestsHandler(w http.ResponseWriter, r *http.Request) error {
	requests, err := h.service.GetExportRequests(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, ExportRequestsResponse{ExportRequests: requests})

	return nil
}

// @Tags		export request
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"export request id"
// @Success	200	{object}	ExportRequestResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/export-requests/{id} [get]
func (h *handler) getExportRequestHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	e, err := h.service.GetExportRequest(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, ExportRequestResponse{ExportRequest: *e})

	return nil
}

// @Tags		export request
// @Accept		json
// @Param		request	body		CreateExportRequestRequest	true	"request body"
// @Success	201		{object}	ExportRequestResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/export-requests [post]
func (h *handler) createExportRequestHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateExportRequestRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	created, err := h.service.CreateExportRequest(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ExportRequestResponse{ExportRequest: *created})

	return nil
}

// @Tags		export request
// @Security	ApiKeyAuth
// @Accept		json
// @Param		id		path		int							true	"export request id"
// @Param		request	body		UpdateExportRequestRequest	true	"request body"
// @Success	200		{object}	ExportRequestResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/export-requests/{id} [patch]
func (h *handler) updateExportRequestHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateExportRequestRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	updated, err := h.service.UpdateExportRequest(r.Context(), id, dto.ToPatch())
	if err != nil {
		return err
	}

	render.JSON(w, r, ExportRequestResponse{ExportRequest: *updated})

	return nil
}

// @Tags		export request
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"export request id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/export-requests/{id} [delete]
func (h *handler) deleteExportRequestHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteExportRequest(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("export request"))

	return nil
}
