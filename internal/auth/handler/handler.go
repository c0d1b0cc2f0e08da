package authhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/auth"
	jwtauth "github.com/xw1nchester/foodcatalog-backend/internal/auth/jwt"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockauthhandler
type Service interface {
	Login(ctx context.Context, dto auth.LoginRequest) (*auth.TokenResponse, error)
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))

		authRouter.Group(func(privateAuthRouter chi.Router) {
			privateAuthRouter.Use(h.authMiddleware)
			privateAuthRouter.Get("/me", apperror.Middleware(h.meHandler))
		})
	})
}

// @Tags		auth
// @Param		request	body		auth.LoginRequest	true	"request body"
// @Success	200			{object}	auth.TokenResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/auth/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	tokens, err := h.service.Login(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, tokens)

	return nil
}

// @Tags		auth
// @Security	ApiKeyAuth
// @Success	200	{object}	auth.MeResponse
// @Failure	401	{object}	apperror.AppError
// @Router		/auth/me [get]
func (h *handler) meHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, auth.MeResponse{Username: jwtauth.SubjectFromContext(r.Context())})

	return nil
}
