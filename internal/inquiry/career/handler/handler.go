package careerhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcareerhandler
type Service interface {
	GetCareers(ctx context.Context) ([]career.Career, error)
	GetCareer(ctx context.Context, id int) (*career.Career, error)
	CreateCareer(ctx context.Context, data career.Career, uploads career.Uploads) (*career.Career, error)
	UpdateCareer(ctx context.Context, id int, patch career.Patch, uploads career.Uploads) (*career.Career, error)
	DeleteCareer(ctx context.Context, id int) error
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
	router.Route("/careers", func(careerRouter chi.Router) {
		careerRouter.Post("/", apperror.Middleware(h.createCareerHandler))

		careerRouter.Group(func(privateCareerRouter chi.Router) {
			privateCareerRouter.Use(h.authMiddleware)

			privateCareerRouter.Get("/", apperror.Middleware(h.getCareersHandler))
			privateCareerRouter.Get("/{id}", apperror.Middleware(h.getCareerHandler))
			privateCareerRouter.Put("/{id}", apperror.Middleware(h.updateCareerHandler))
			privateCareerRouter.Patch("/{id}", apperror.Middleware(h.updateCareerHandler))
			privateCareerRouter.Delete("/{id}", apperror.Middleware(h.deleteCareerHandler))
		})
	})
}

func readUploads(r *http.Request) (career.Uploads, error) {
	cv, err := request.FormFile(r, "cv")
	if err != nil {
		return career.Uploads{}, err
	}

	return career.Uploads{CV: cv}, nil
}

// @Tags		career
// @Security	ApiKeyAuth
// @Success	200	{object}	CareersResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/careers [get]
func (h *handler) getCareersHandler(w http.ResponseWriter, r *http.Request) error {
	careers, err := h.service.GetCareers(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, CareersResponse{Careers: careers})

	return nil
}

// @Tags		career
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"career application id"
// @Success	200	{object}	CareerResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/careers/{id} [get]
func (h *handler) getCareerHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	c, err := h.service.GetCareer(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, CareerResponse{Career: *c})

	return nil
}

// @Tags		career
// @Accept		json,mpfd
// @Param		request	body		CreateCareerRequest	true	"request body"
// @Param		cv		formData	file				false	"pdf, doc or docx"
// @Success	201		{object}	CareerResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/careers [post]
func (h *handler) createCareerHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateCareerRequest
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

	createdCareer, err := h.service.CreateCareer(r.Context(), dto.ToDomain(), uploads)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CareerResponse{Career: *createdCareer})

	return nil
}

// @Tags		career
// @Security	ApiKeyAuth
// @Accept		json,mpfd
// @Param		id		path		int					true	"career application id"
// @Param		request	body		UpdateCareerRequest	true	"request body"
// @Success	200		{object}	CareerResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/careers/{id} [patch]
func (h *handler) updateCareerHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateCareerRequest
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

	updatedCareer, err := h.service.UpdateCareer(r.Context(), id, dto.ToPatch(), uploads)
	if err != nil {
		return err
	}

	render.JSON(w, r, CareerResponse{Career: *updatedCareer})

	return nil
}

// @Tags		career
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"career application id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/careers/{id} [delete]
func (h *handler) deleteCareerHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCareer(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("career application"))

	return nil
}
