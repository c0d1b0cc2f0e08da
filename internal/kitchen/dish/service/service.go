package dishservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	dishdb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/transactor"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrDishNotFound         = apperror.NewNotFoundErr("dish not found")
	ErrDishCategoryNotFound = apperror.NewNotFoundErr("dish category not found")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockdishservice
type Repository interface {
	GetAll(ctx context.Context, filter dish.Filter) ([]dish.Dish, error)
	GetByID(ctx context.Context, id int) (*dish.Dish, error)
	CheckExists(ctx context.Context, id int) error
	Create(ctx context.Context, data dish.Dish) (*dish.Dish, error)
	Update(ctx context.Context, data dish.Dish) (*dish.Dish, error)
	Delete(ctx context.Context, id int) error
}

type DishCategoryService interface {
	CheckDishCategoryExists(ctx context.Context, id int) error
}

type Files interface {
	SaveImages(ctx context.Context, target storage.Images, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type Guard interface {
	ForbidDeleteWithChildren(ctx context.Context, kind guard.Kind, id int) error
}

type service struct {
	repository          Repository
	dishCategoryService DishCategoryService
	files               Files
	maxSize             int64
	guard               Guard
	txManager           transactor.Manager
	logger              *zap.Logger
}

func New(
	repository Repository,
	dishCategoryService DishCategoryService,
	files Files,
	maxSize int64,
	guard Guard,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:          repository,
		dishCategoryService: dishCategoryService,
		files:               files,
		maxSize:             maxSize,
		guard:               guard,
		txManager:           txManager,
		logger:              logger,
	}
}

func (s *service) GetDishes(ctx context.Context, filter dish.Filter) ([]dish.Dish, error) {
	dishes, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching dishes", zap.Error(err))
		return nil, err
	}

	return dishes, nil
}

func (s *service) GetDish(ctx context.Context, id int) (*dish.Dish, error) {
	d, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dishdb.ErrDishNotFound) {
			return nil, ErrDishNotFound
		}

		s.logger.Error("unexpected error when fetching dish by id", zap.Error(err))

		return nil, err
	}

	return d, nil
}

func (s *service) CheckDishExists(ctx context.Context, id int) error {
	err := s.repository.CheckExists(ctx, id)
	if err != nil {
		if errors.Is(err, dishdb.ErrDishNotFound) {
			return ErrDishNotFound
		}

		s.logger.Error("unexpected error when check dish exists by id", zap.Error(err))
	}

	return err
}

func (s *service) CreateDish(ctx context.Context, data dish.Dish, uploads dish.Uploads) (*dish.Dish, error) {
	if err := s.dishCategoryService.CheckDishCategoryExists(ctx, data.DishCategoryID); err != nil {
		return nil, err
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirDishes, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.Image, Dst: &data.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving dish image", zap.Error(err))
		}
		return nil, err
	}

	createdDish, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if pgclient.IsForeignKeyViolation(err) {
			return nil, ErrDishCategoryNotFound
		}

		s.logger.Error("unexpected error when creating dish", zap.Error(err))

		return nil, err
	}

	return createdDish, nil
}

func (s *service) UpdateDish(ctx context.Context, id int, patch dish.Patch, uploads dish.Uploads) (*dish.Dish, error) {
	existing, err := s.GetDish(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DishCategoryID != nil && *patch.DishCategoryID != existing.DishCategoryID {
		if err := s.dishCategoryService.CheckDishCategoryExists(ctx, *patch.DishCategoryID); err != nil {
			return nil, err
		}
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirDishes, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.Image, Dst: &patch.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving dish image", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedDish, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		switch {
		case errors.Is(err, dishdb.ErrDishNotFound):
			return nil, ErrDishNotFound
		case pgclient.IsForeignKeyViolation(err):
			return nil, ErrDishCategoryNotFound
		}

		s.logger.Error("unexpected error when updating dish", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedDish.Images())...)

	return updatedDish, nil
}

func (s *service) DeleteDish(ctx context.Context, id int) error {
	var deletedDish *dish.Dish

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.guard.ForbidDeleteWithChildren(ctx, guard.KindDish, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return err
		}

		deletedDish = existing

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, dishdb.ErrDishNotFound):
			return ErrDishNotFound
		case pgclient.IsForeignKeyViolation(err):
			return guard.NewReferencedErr(guard.KindDish)
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when deleting dish", zap.Error(err))
		}

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(deletedDish.Images()...)...)

	return nil
}
