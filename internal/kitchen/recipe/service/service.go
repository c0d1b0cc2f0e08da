package recipeservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe"
	recipedb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrRecipeNotFound  = apperror.NewNotFoundErr("recipe not found")
	ErrDishNotFound    = apperror.NewNotFoundErr("dish not found")
	ErrProductNotFound = apperror.NewNotFoundErr("product not found")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockrecipeservice
type Repository interface {
	GetAll(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error)
	GetByID(ctx context.Context, id int) (*recipe.Recipe, error)
	Create(ctx context.Context, data recipe.Recipe) (*recipe.Recipe, error)
	Update(ctx context.Context, data recipe.Recipe) (*recipe.Recipe, error)
	Delete(ctx context.Context, id int) error
}

type DishService interface {
	CheckDishExists(ctx context.Context, id int) error
}

type ProductService interface {
	CheckProductExists(ctx context.Context, id int) error
}

type Files interface {
	SaveImages(ctx context.Context, target storage.Images, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type service struct {
	repository     Repository
	dishService    DishService
	productService ProductService
	files          Files
	maxSize        int64
	logger         *zap.Logger
}

func New(
	repository Repository,
	dishService DishService,
	productService ProductService,
	files Files,
	maxSize int64,
	logger *zap.Logger,
) *service {
	return &service{
		repository:     repository,
		dishService:    dishService,
		productService: productService,
		files:          files,
		maxSize:        maxSize,
		logger:         logger,
	}
}

func (s *service) GetRecipes(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	recipes, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching recipes", zap.Error(err))
		return nil, err
	}

	return recipes, nil
}

func (s *service) GetRecipe(ctx context.Context, id int) (*recipe.Recipe, error) {
	rc, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipedb.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}

		s.logger.Error("unexpected error when fetching recipe by id", zap.Error(err))

		return nil, err
	}

	return rc, nil
}

// checkParents verifies the dish and, when set, the product a recipe points at.
func (s *service) checkParents(ctx context.Context, dishID int, productID *int) error {
	if err := s.dishService.CheckDishExists(ctx, dishID); err != nil {
		return err
	}

	if productID != nil {
		if err := s.productService.CheckProductExists(ctx, *productID); err != nil {
			return err
		}
	}

	return nil
}

// parentErr maps a foreign key violation to the parent that went missing.
func parentErr(err error) error {
	if pgclient.ConstraintName(err) == recipedb.ProductForeignKey {
		return ErrProductNotFound
	}

	return ErrDishNotFound
}

func (s *service) CreateRecipe(ctx context.Context, data recipe.Recipe, uploads recipe.Uploads) (*recipe.Recipe, error) {
	if err := s.checkParents(ctx, data.DishID, data.ProductID); err != nil {
		return nil, err
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirRecipes, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.Image, Dst: &data.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving recipe image", zap.Error(err))
		}
		return nil, err
	}

	data.Normalize()

	createdRecipe, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if pgclient.IsForeignKeyViolation(err) {
			return nil, parentErr(err)
		}

		s.logger.Error("unexpected error when creating recipe", zap.Error(err))

		return nil, err
	}

	return createdRecipe, nil
}

func (s *service) UpdateRecipe(ctx context.Context, id int, patch recipe.Patch, uploads recipe.Uploads) (*recipe.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DishID != nil && *patch.DishID != existing.DishID {
		if err := s.dishService.CheckDishExists(ctx, *patch.DishID); err != nil {
			return nil, err
		}
	}

	if patch.ProductID != nil && *patch.ProductID != 0 && !utils.Equal(existing.ProductID, patch.ProductID) {
		if err := s.productService.CheckProductExists(ctx, *patch.ProductID); err != nil {
			return nil, err
		}
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirRecipes, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.Image, Dst: &patch.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving recipe image", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)
	data.Normalize()

	updatedRecipe, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		switch {
		case errors.Is(err, recipedb.ErrRecipeNotFound):
			return nil, ErrRecipeNotFound
		case pgclient.IsForeignKeyViolation(err):
			return nil, parentErr(err)
		}

		s.logger.Error("unexpected error when updating recipe", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedRecipe.Images())...)

	return updatedRecipe, nil
}

func (s *service) DeleteRecipe(ctx context.Context, id int) error {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, recipedb.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}

		s.logger.Error("unexpected error when deleting recipe", zap.Error(err))

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(existing.Images()...)...)

	return nil
}
