package categoryservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	categorydb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/transactor"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound = apperror.NewNotFoundErr("category not found")
	ErrBrandNotFound    = apperror.NewNotFoundErr("brand not found")
	ErrImageRequired    = apperror.NewAppError("missing required fields: image")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcategoryservice
type Repository interface {
	GetAll(ctx context.Context, filter category.Filter) ([]category.Category, error)
	GetByID(ctx context.Context, id int) (*category.Category, error)
	CheckExists(ctx context.Context, id int) error
	Create(ctx context.Context, data category.Category) (*category.Category, error)
	Update(ctx context.Context, data category.Category) (*category.Category, error)
	Delete(ctx context.Context, id int) error
}

type BrandService interface {
	CheckBrandExists(ctx context.Context, id int) error
}

type Files interface {
	SaveImages(ctx context.Context, target storage.Images, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type Guard interface {
	ForbidDeleteWithChildren(ctx context.Context, kind guard.Kind, id int) error
}

type service struct {
	repository   Repository
	brandService BrandService
	files        Files
	maxSize      int64
	guard        Guard
	txManager    transactor.Manager
	logger       *zap.Logger
}

func New(
	repository Repository,
	brandService BrandService,
	files Files,
	maxSize int64,
	guard Guard,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:   repository,
		brandService: brandService,
		files:        files,
		maxSize:      maxSize,
		guard:        guard,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *service) GetCategories(ctx context.Context, filter category.Filter) ([]category.Category, error) {
	categories, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching categories", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (s *service) GetCategory(ctx context.Context, id int) (*category.Category, error) {
	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, categorydb.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}

		s.logger.Error("unexpected error when fetching category by id", zap.Error(err))

		return nil, err
	}

	return c, nil
}

func (s *service) CheckCategoryExists(ctx context.Context, id int) error {
	err := s.repository.CheckExists(ctx, id)
	if err != nil {
		if errors.Is(err, categorydb.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}

		s.logger.Error("unexpected error when check category exists by id", zap.Error(err))
	}

	return err
}

func (s *service) CreateCategory(ctx context.Context, data category.Category, uploads category.Uploads) (*category.Category, error) {
	if data.Image == "" && uploads.Image == nil {
		return nil, ErrImageRequired
	}

	if err := s.brandService.CheckBrandExists(ctx, data.BrandID); err != nil {
		return nil, err
	}

	image := &data.Image

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirCategories, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.Image, Dst: &image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving category image", zap.Error(err))
		}
		return nil, err
	}

	category.Patch{Image: image}.Apply(&data)

	createdCategory, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if pgclient.IsForeignKeyViolation(err) {
			return nil, ErrBrandNotFound
		}

		s.logger.Error("unexpected error when creating category", zap.Error(err))

		return nil, err
	}

	return createdCategory, nil
}

func (s *service) UpdateCategory(ctx context.Context, id int, patch category.Patch, uploads category.Uploads) (*category.Category, error) {
	existing, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.BrandID != nil && *patch.BrandID != existing.BrandID {
		if err := s.brandService.CheckBrandExists(ctx, *patch.BrandID); err != nil {
			return nil, err
		}
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirCategories, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.Image, Dst: &patch.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving category image", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedCategory, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		switch {
		case errors.Is(err, categorydb.ErrCategoryNotFound):
			return nil, ErrCategoryNotFound
		case pgclient.IsForeignKeyViolation(err):
			return nil, ErrBrandNotFound
		}

		s.logger.Error("unexpected error when updating category", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedCategory.Images())...)

	return updatedCategory, nil
}

func (s *service) DeleteCategory(ctx context.Context, id int) error {
	var deletedCategory *category.Category

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.guard.ForbidDeleteWithChildren(ctx, guard.KindCategory, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return err
		}

		deletedCategory = existing

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, categorydb.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case pgclient.IsForeignKeyViolation(err):
			return guard.NewReferencedErr(guard.KindCategory)
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when deleting category", zap.Error(err))
		}

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(deletedCategory.Images()...)...)

	return nil
}
