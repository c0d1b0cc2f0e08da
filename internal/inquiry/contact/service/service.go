package contactservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact"
	contactdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/db"
	"go.uber.org/zap"
)

var ErrContactNotFound = apperror.NewNotFoundErr("contact not found")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcontactservice
type Repository interface {
	GetAll(ctx context.Context) ([]contact.Contact, error)
	GetByID(ctx context.Context, id int) (*contact.Contact, error)
	Create(ctx context.Context, data contact.Contact) (*contact.Contact, error)
	Update(ctx context.Context, data contact.Contact) (*contact.Contact, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetContacts(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching contacts", zap.Error(err))
		return nil, err
	}

	return contacts, nil
}

func (s *service) GetContact(ctx context.Context, id int) (*contact.Contact, error) {
	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contactdb.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}

		s.logger.Error("unexpected error when fetching contact by id", zap.Error(err))

		return nil, err
	}

	return c, nil
}

func (s *service) CreateContact(ctx context.Context, data contact.Contact) (*contact.Contact, error) {
	createdContact, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating contact", zap.Error(err))
		return nil, err
	}

	s.logger.Info("contact message received", zap.Int("id", createdContact.ID))

	return createdContact, nil
}

func (s *service) UpdateContact(ctx context.Context, id int, patch contact.Patch) (*contact.Contact, error) {
	existing, err := s.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedContact, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, contactdb.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}

		s.logger.Error("unexpected error when updating contact", zap.Error(err))

		return nil, err
	}

	return updatedContact, nil
}

func (s *service) DeleteContact(ctx context.Context, id int) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, contactdb.ErrContactNotFound) {
			return ErrContactNotFound
		}

		s.logger.Error("unexpected error when deleting contact", zap.Error(err))
	}

	return err
}
