package careerservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"
	careerdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var ErrCareerNotFound = apperror.NewNotFoundErr("career application not found")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcareerservice
type Repository interface {
	GetAll(ctx context.Context) ([]career.Career, error)
	GetByID(ctx context.Context, id int) (*career.Career, error)
	Create(ctx context.Context, data career.Career) (*career.Career, error)
	Update(ctx context.Context, data career.Career) (*career.Career, error)
	Delete(ctx context.Context, id int) error
}

type Files interface {
	SaveAll(ctx context.Context, dir string, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type service struct {
	repository Repository
	files      Files
	maxSize    int64
	logger     *zap.Logger
}

func New(repository Repository, files Files, maxSize int64, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		files:      files,
		maxSize:    maxSize,
		logger:     logger,
	}
}

// checkCV accepts pdf, doc and docx files within the upload limit.
func (s *service) checkCV(cv *storage.Upload) error {
	if cv == nil {
		return nil
	}

	if cv.Size > s.maxSize {
		return upload.NewFileTooLargeErr(s.maxSize)
	}

	if ext := storage.FileExtension(cv.Filename); !storage.IsDocumentExtension(ext) {
		return upload.NewExtensionNotAllowedErr(ext)
	}

	return nil
}

func (s *service) GetCareers(ctx context.Context) ([]career.Career, error) {
	careers, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching career applications", zap.Error(err))
		return nil, err
	}

	return careers, nil
}

func (s *service) GetCareer(ctx context.Context, id int) (*career.Career, error) {
	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, careerdb.ErrCareerNotFound) {
			return nil, ErrCareerNotFound
		}

		s.logger.Error("unexpected error when fetching career application by id", zap.Error(err))

		return nil, err
	}

	return c, nil
}

func (s *service) CreateCareer(ctx context.Context, data career.Career, uploads career.Uploads) (*career.Career, error) {
	if err := s.checkCV(uploads.CV); err != nil {
		return nil, err
	}

	saved, err := s.files.SaveAll(ctx, storage.DirCareers, storage.Pending{Upload: uploads.CV, Dst: &data.CV})
	if err != nil {
		s.logger.Error("unexpected error when saving cv", zap.Error(err))
		return nil, err
	}

	createdCareer, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)
		s.logger.Error("unexpected error when creating career application", zap.Error(err))
		return nil, err
	}

	return createdCareer, nil
}

func (s *service) UpdateCareer(ctx context.Context, id int, patch career.Patch, uploads career.Uploads) (*career.Career, error) {
	if err := s.checkCV(uploads.CV); err != nil {
		return nil, err
	}

	existing, err := s.GetCareer(ctx, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.files.SaveAll(ctx, storage.DirCareers, storage.Pending{Upload: uploads.CV, Dst: &patch.CV})
	if err != nil {
		s.logger.Error("unexpected error when saving cv", zap.Error(err))
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedCareer, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if errors.Is(err, careerdb.ErrCareerNotFound) {
			return nil, ErrCareerNotFound
		}

		s.logger.Error("unexpected error when updating career application", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Files(), updatedCareer.Files())...)

	return updatedCareer, nil
}

func (s *service) DeleteCareer(ctx context.Context, id int) error {
	existing, err := s.GetCareer(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, careerdb.ErrCareerNotFound) {
			return ErrCareerNotFound
		}

		s.logger.Error("unexpected error when deleting career application", zap.Error(err))

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(existing.Files()...)...)

	return nil
}
