package dishcategoryservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"
	dishcategorydb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/transactor"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var ErrDishCategoryNotFound = apperror.NewNotFoundErr("dish category not found")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockdishcategoryservice
type Repository interface {
	GetAll(ctx context.Context) ([]dishcategory.DishCategory, error)
	GetByID(ctx context.Context, id int) (*dishcategory.DishCategory, error)
	CheckExists(ctx context.Context, id int) error
	Create(ctx context.Context, data dishcategory.DishCategory) (*dishcategory.DishCategory, error)
	Update(ctx context.Context, data dishcategory.DishCategory) (*dishcategory.DishCategory, error)
	Delete(ctx context.Context, id int) error
}

type Files interface {
	SaveImages(ctx context.Context, target storage.Images, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type Guard interface {
	ForbidDeleteWithChildren(ctx context.Context, kind guard.Kind, id int) error
}

type service struct {
	repository Repository
	files      Files
	maxSize    int64
	guard      Guard
	txManager  transactor.Manager
	logger     *zap.Logger
}

func New(
	repository Repository,
	files Files,
	maxSize int64,
	guard Guard,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		files:      files,
		maxSize:    maxSize,
		guard:      guard,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *service) GetDishCategories(ctx context.Context) ([]dishcategory.DishCategory, error) {
	dishCategories, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching dish categories", zap.Error(err))
		return nil, err
	}

	return dishCategories, nil
}

func (s *service) GetDishCategory(ctx context.Context, id int) (*dishcategory.DishCategory, error) {
	dc, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dishcategorydb.ErrDishCategoryNotFound) {
			return nil, ErrDishCategoryNotFound
		}

		s.logger.Error("unexpected error when fetching dish category by id", zap.Error(err))

		return nil, err
	}

	return dc, nil
}

func (s *service) CheckDishCategoryExists(ctx context.Context, id int) error {
	err := s.repository.CheckExists(ctx, id)
	if err != nil {
		if errors.Is(err, dishcategorydb.ErrDishCategoryNotFound) {
			return ErrDishCategoryNotFound
		}

		s.logger.Error("unexpected error when check dish category exists by id", zap.Error(err))
	}

	return err
}

func (s *service) CreateDishCategory(ctx context.Context, data dishcategory.DishCategory, uploads dishcategory.Uploads) (*dishcategory.DishCategory, error) {
	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirDishCategories, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.Image, Dst: &data.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving dish category image", zap.Error(err))
		}
		return nil, err
	}

	createdDishCategory, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)
		s.logger.Error("unexpected error when creating dish category", zap.Error(err))
		return nil, err
	}

	return createdDishCategory, nil
}

func (s *service) UpdateDishCategory(ctx context.Context, id int, patch dishcategory.Patch, uploads dishcategory.Uploads) (*dishcategory.DishCategory, error) {
	existing, err := s.GetDishCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirDishCategories, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.Image, Dst: &patch.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving dish category image", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedDishCategory, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if errors.Is(err, dishcategorydb.ErrDishCategoryNotFound) {
			return nil, ErrDishCategoryNotFound
		}

		s.logger.Error("unexpected error when updating dish category", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedDishCategory.Images())...)

	return updatedDishCategory, nil
}

func (s *service) DeleteDishCategory(ctx context.Context, id int) error {
	var deletedDishCategory *dishcategory.DishCategory

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.guard.ForbidDeleteWithChildren(ctx, guard.KindDishCategory, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return err
		}

		deletedDishCategory = existing

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, dishcategorydb.ErrDishCategoryNotFound):
			return ErrDishCategoryNotFound
		case pgclient.IsForeignKeyViolation(err):
			return guard.NewReferencedErr(guard.KindDishCategory)
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when deleting dish category", zap.Error(err))
		}

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(deletedDishCategory.Images()...)...)

	return nil
}
