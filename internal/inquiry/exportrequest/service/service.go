package exportrequestservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest"
	exportrequestdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/db"
	"go.uber.org/zap"
)

var ErrExportRequestNotFound = apperror.NewNotFoundErr("export request not found")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockexportrequestservice
type Repository interface {
	GetAll(ctx context.Context) ([]exportrequest.ExportRequest, error)
	GetByID(ctx context.Context, id int) (*exportrequest.ExportRequest, error)
	Create(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error)
	Update(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error)
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

func (s *service) GetExportRequests(ctx context.Context) ([]exportrequest.ExportRequest, error) {
	requests, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching export requests", zap.Error(err))
		return nil, err
	}

	return requests, nil
}

func (s *service) GetExportRequest(ctx context.Context, id int) (*exportrequest.ExportRequest, error) {
	e, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exportrequestdb.ErrExportRequestNotFound) {
			return nil, ErrExportRequestNotFound
		}

		s.logger.Error("unexpected error when fetching export request by id", zap.Error(err))

		return nil, err
	}

	return e, nil
}

func (s *service) CreateExportRequest(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error) {
	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating export request", zap.Error(err))
		return nil, err
	}

	s.logger.Info(
		"export request received",
		zap.Int("id", created.ID),
		zap.String("country", created.Country),
	)

	return created, nil
}

func (s *service) UpdateExportRequest(ctx context.Context, id int, patch exportrequest.Patch) (*exportrequest.ExportRequest, error) {
	existing, err := s.GetExportRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updated, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, exportrequestdb.ErrExportRequestNotFound) {
			return nil, ErrExportRequestNotFound
		}

		s.logger.Error("unexpected error when updating export request", zap.Error(err))

		return nil, err
	}

	return updated, nil
}

func (s *service) DeleteExportRequest(ctx context.Context, id int) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, exportrequestdb.ErrExportRequestNotFound) {
			return ErrExportRequestNotFound
		}

		s.logger.Error("unexpected error when deleting export request", zap.Error(err))
	}

	return err
}
