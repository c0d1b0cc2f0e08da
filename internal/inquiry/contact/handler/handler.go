package contacthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/request"
	"github.com/xw1nchester/foodcatalog-backend/internal/lib/api/response"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcontacthandler
type Service interface {
	GetContacts(ctx context.Context) ([]contact.Contact, error)
	GetContact(ctx context.Context, id int) (*contact.Contact, error)
	CreateContact(ctx context.Context, data contact.Contact) (*contact.Contact, error)
	UpdateContact(ctx context.Context, id int, patch contact.Patch) (*contact.Contact, error)
	DeleteContact(ctx context.Context, id int) error
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
	router.Route("/contacts", func(contactRouter chi.Router) {
		contactRouter.Post("/", apperror.Middleware(h.createContactHandler))

		contactRouter.Group(func(privateContactRouter chi.Router) {
			privateContactRouter.Use(h.authMiddleware)

			privateContactRouter.Get("/", apperror.Middleware(h.getContactsHandler))
			privateContactRouter.Get("/{id}", apperror.Middleware(h.getContactHandler))
			privateContactRouter.Put("/{id}", apperror.Middleware(h.updateContactHandler))
			privateContactRouter.Patch("/{id}", apperror.Middleware(h.updateContactHandler))
			privateContactRouter.Delete("/{id}", apperror.Middleware(h.deleteContactHandler))
		})
	})
}

// @Tags		contact
// @Security	ApiKeyAuth
// @Success	200	{object}	ContactsResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/contacts [get]
func (h *handler) getContactsHandler(w http.ResponseWriter, r *http.Request) error {
	contacts, err := h.service.GetContacts(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, ContactsResponse{Contacts: contacts})

	return nil
}

// @Tags		contact
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"contact id"
// @Success	200	{object}	ContactResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/contacts/{id} [get]
func (h *handler) getContactHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	c, err := h.service.GetContact(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, ContactResponse{Contact: *c})

	return nil
}

// @Tags		contact
// @Accept		json
// @Param		request	body		CreateContactRequest	true	"request body"
// @Success	201		{object}	ContactResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/contacts [post]
func (h *handler) createContactHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateContactRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	createdContact, err := h.service.CreateContact(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ContactResponse{Contact: *createdContact})

	return nil
}

// @Tags		contact
// @Security	ApiKeyAuth
// @Accept		json
// @Param		id		path		int						true	"contact id"
// @Param		request	body		UpdateContactRequest	true	"request body"
// @Success	200		{object}	ContactResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/contacts/{id} [patch]
func (h *handler) updateContactHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	var dto UpdateContactRequest
	if err := request.DecodeBody(r, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := request.Validate(dto); err != nil {
		return err
	}

	updatedContact, err := h.service.UpdateContact(r.Context(), id, dto.ToPatch())
	if err != nil {
		return err
	}

	render.JSON(w, r, ContactResponse{Contact: *updatedContact})

	return nil
}

// @Tags		contact
// @Security	ApiKeyAuth
// @Param		id	path		int	true	"contact id"
// @Success	200	{object}	response.Message
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/contacts/{id} [delete]
func (h *handler) deleteContactHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := request.ParseID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteContact(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, response.Deleted("contact"))

	return nil
}
