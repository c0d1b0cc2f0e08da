package productservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	productdb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = apperror.NewNotFoundErr("product not found")
	ErrCategoryNotFound = apperror.NewNotFoundErr("category not found")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductservice
type Repository interface {
	GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	CheckExists(ctx context.Context, id int) error
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) (*product.Product, error)
	Delete(ctx context.Context, id int) error
}

type CategoryService interface {
	CheckCategoryExists(ctx context.Context, id int) error
}

type Files interface {
	SaveImages(ctx context.Context, target storage.Images, pending ...storage.Pending) ([]string, error)
	DeleteAll(ctx context.Context, paths ...string)
}

type service struct {
	repository      Repository
	categoryService CategoryService
	files           Files
	maxSize         int64
	logger          *zap.Logger
}

func New(
	repository Repository,
	categoryService CategoryService,
	files Files,
	maxSize int64,
	logger *zap.Logger,
) *service {
	return &service{
		repository:      repository,
		categoryService: categoryService,
		files:           files,
		maxSize:         maxSize,
		logger:          logger,
	}
}

func (s *service) GetProducts(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	products, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*product.Product, error) {
	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdb.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}

		s.logger.Error("unexpected error when fetching product by id", zap.Error(err))

		return nil, err
	}

	return p, nil
}

func (s *service) CheckProductExists(ctx context.Context, id int) error {
	err := s.repository.CheckExists(ctx, id)
	if err != nil {
		if errors.Is(err, productdb.ErrProductNotFound) {
			return ErrProductNotFound
		}

		s.logger.Error("unexpected error when check product exists by id", zap.Error(err))
	}

	return err
}

func (s *service) CreateProduct(ctx context.Context, data product.Product, uploads product.Uploads) (*product.Product, error) {
	if err := s.categoryService.CheckCategoryExists(ctx, data.CategoryID); err != nil {
		return nil, err
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirProducts, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.Image, Dst: &data.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving product image", zap.Error(err))
		}
		return nil, err
	}

	createdProduct, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if pgclient.IsForeignKeyViolation(err) {
			return nil, ErrCategoryNotFound
		}

		s.logger.Error("unexpected error when creating product", zap.Error(err))

		return nil, err
	}

	return createdProduct, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int, patch product.Patch, uploads product.Uploads) (*product.Product, error) {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil && *patch.CategoryID != existing.CategoryID {
		if err := s.categoryService.CheckCategoryExists(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirProducts, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.Image, Dst: &patch.Image},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving product image", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	updatedProduct, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		switch {
		case errors.Is(err, productdb.ErrProductNotFound):
			return nil, ErrProductNotFound
		case pgclient.IsForeignKeyViolation(err):
			return nil, ErrCategoryNotFound
		}

		s.logger.Error("unexpected error when updating product", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedProduct.Images())...)

	return updatedProduct, nil
}

// DeleteProduct removes the product; recipes pointing at it lose the reference.
func (s *service) DeleteProduct(ctx context.Context, id int) error {
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, productdb.ErrProductNotFound) {
			return ErrProductNotFound
		}

		s.logger.Error("unexpected error when deleting product", zap.Error(err))

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(existing.Images()...)...)

	return nil
}
