package brandservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	branddb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	"github.com/xw1nchester/foodcatalog-backend/pkg/transactor"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrBrandNotFound     = apperror.NewNotFoundErr("brand not found")
	ErrSlugAlreadyExists = apperror.NewAppError("the brand with this slug already exists")
)

const defaultSlug = "brand"

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockbrandservice
type Repository interface {
	GetAll(ctx context.Context) ([]brand.Brand, error)
	GetByID(ctx context.Context, id int) (*brand.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*brand.Brand, error)
	CheckExists(ctx context.Context, id int) error
	CheckSlugIsAvailable(ctx context.Context, slug string, excludeID ...int) (bool, error)
	Create(ctx context.Context, data brand.Brand) (*brand.Brand, error)
	Update(ctx context.Context, data brand.Brand) (*brand.Brand, error)
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

func (s *service) GetBrands(ctx context.Context) ([]brand.Brand, error) {
	brands, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching brands", zap.Error(err))
		return nil, err
	}

	return brands, nil
}

func (s *service) GetBrand(ctx context.Context, id int) (*brand.Brand, error) {
	b, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, branddb.ErrBrandNotFound) {
			return nil, ErrBrandNotFound
		}

		s.logger.Error("unexpected error when fetching brand by id", zap.Error(err))

		return nil, err
	}

	return b, nil
}

func (s *service) GetBrandBySlug(ctx context.Context, slug string) (*brand.Brand, error) {
	b, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, branddb.ErrBrandNotFound) {
			return nil, ErrBrandNotFound
		}

		s.logger.Error("unexpected error when fetching brand by slug", zap.Error(err))

		return nil, err
	}

	return b, nil
}

func (s *service) CheckBrandExists(ctx context.Context, id int) error {
	err := s.repository.CheckExists(ctx, id)
	if err != nil {
		if errors.Is(err, branddb.ErrBrandNotFound) {
			return ErrBrandNotFound
		}

		s.logger.Error("unexpected error when check brand exists by id", zap.Error(err))
	}

	return err
}

// uniqueSlug derives a slug from the English name, suffixing -2, -3, ...
// until no other brand uses it.
func (s *service) uniqueSlug(ctx context.Context, name string, excludeID ...int) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = defaultSlug
	}

	candidate := base

	for i := 2; ; i++ {
		available, err := s.repository.CheckSlugIsAvailable(ctx, candidate, excludeID...)
		if err != nil {
			s.logger.Error("unexpected error when checking brand slug availability", zap.Error(err))
			return "", err
		}

		if available {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *service) CreateBrand(ctx context.Context, data brand.Brand, uploads brand.Uploads) (*brand.Brand, error) {
	brandSlug, err := s.uniqueSlug(ctx, data.NameEn)
	if err != nil {
		return nil, err
	}

	data.Slug = brandSlug

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirBrands, MaxSize: s.maxSize},
		storage.Pending{Upload: uploads.MainImage, Dst: &data.MainImage},
		storage.Pending{Upload: uploads.Banner, Dst: &data.Banner},
		storage.Pending{Upload: uploads.SmallImage, Dst: &data.SmallImage},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving brand images", zap.Error(err))
		}
		return nil, err
	}

	createdBrand, err := s.repository.Create(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		if pgclient.IsUniqueViolation(err) {
			return nil, ErrSlugAlreadyExists
		}

		s.logger.Error("unexpected error when creating brand", zap.Error(err))

		return nil, err
	}

	return createdBrand, nil
}

func (s *service) UpdateBrand(ctx context.Context, id int, patch brand.Patch, uploads brand.Uploads) (*brand.Brand, error) {
	existing, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.files.SaveImages(
		ctx,
		storage.Images{Dir: storage.DirBrands, MaxSize: s.maxSize, Owned: existing.Images()},
		storage.Pending{Upload: uploads.MainImage, Dst: &patch.MainImage},
		storage.Pending{Upload: uploads.Banner, Dst: &patch.Banner},
		storage.Pending{Upload: uploads.SmallImage, Dst: &patch.SmallImage},
	)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when saving brand images", zap.Error(err))
		}
		return nil, err
	}

	data := *existing
	patch.Apply(&data)

	if data.NameEn != existing.NameEn {
		data.Slug, err = s.uniqueSlug(ctx, data.NameEn, id)
		if err != nil {
			s.files.DeleteAll(ctx, saved...)
			return nil, err
		}
	}

	updatedBrand, err := s.repository.Update(ctx, data)
	if err != nil {
		s.files.DeleteAll(ctx, saved...)

		switch {
		case errors.Is(err, branddb.ErrBrandNotFound):
			return nil, ErrBrandNotFound
		case pgclient.IsUniqueViolation(err):
			return nil, ErrSlugAlreadyExists
		}

		s.logger.Error("unexpected error when updating brand", zap.Error(err))

		return nil, err
	}

	s.files.DeleteAll(ctx, storage.Orphaned(existing.Images(), updatedBrand.Images())...)

	return updatedBrand, nil
}

func (s *service) DeleteBrand(ctx context.Context, id int) error {
	var deletedBrand *brand.Brand

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.guard.ForbidDeleteWithChildren(ctx, guard.KindBrand, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return err
		}

		deletedBrand = existing

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, branddb.ErrBrandNotFound):
			return ErrBrandNotFound
		case pgclient.IsForeignKeyViolation(err):
			return guard.NewReferencedErr(guard.KindBrand)
		}

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected error when deleting brand", zap.Error(err))
		}

		return err
	}

	s.files.DeleteAll(ctx, utils.Deref(deletedBrand.Images()...)...)

	return nil
}
