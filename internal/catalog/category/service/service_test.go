package categoryservice

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	categorydb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/db"
	mockcategoryservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/service/mocks"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	mockguard "github.com/xw1nchester/foodcatalog-backend/internal/guard/mocks"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	mocktransactor "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const image = "/uploads/categories/snacks.png"

type deps struct {
	repository   *mockcategoryservice.MockRepository
	brandService *mockcategoryservice.MockBrandService
	counter      *mockguard.MockCounter
	txManager    *mocktransactor.MockManager
	fs           afero.Fs
}

// newTestService wires the real guard and file helper around mocked storage.
func newTestService(t *testing.T) (*service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repository:   mockcategoryservice.NewMockRepository(ctrl),
		brandService: mockcategoryservice.NewMockBrandService(ctrl),
		counter:      mockguard.NewMockCounter(ctrl),
		txManager:    mocktransactor.NewMockManager(ctrl),
		fs:           afero.NewMemMapFs(),
	}

	require.NoError(t, afero.WriteFile(d.fs, strings.TrimPrefix(image, "/"), []byte("img"), 0o644))

	files := storage.NewFiles(local.New(d.fs), zap.NewNop())
	g := guard.New(d.counter, zap.NewNop())

	return New(d.repository, d.brandService, files, 1<<20, g, d.txManager, zap.NewNop()), d
}

func (d deps) runTransactions() {
	d.txManager.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func (d deps) exists(t *testing.T, publicPath string) bool {
	t.Helper()

	ok, err := afero.Exists(d.fs, strings.TrimPrefix(publicPath, "/"))
	require.NoError(t, err)

	return ok
}

func (d deps) countFiles(t *testing.T) int {
	t.Helper()

	entries, err := afero.ReadDir(d.fs, storage.DirCategories)
	require.NoError(t, err)

	return len(entries)
}

func pngUpload() *storage.Upload {
	return &storage.Upload{
		File:        bytes.NewReader([]byte("png")),
		Filename:    "image.png",
		ContentType: "image/png",
		Size:        3,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func existingCategory() *category.Category {
	return &category.Category{ID: 3, BrandID: 1, NameEn: "Snacks", NameAr: "وجبات خفيفة", Image: image}
}

func TestService_CreateCategory(t *testing.T) {
	t.Run("missing brand returns 404 and stores nothing", func(t *testing.T) {
		s, d := newTestService(t)

		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 42).Return(apperror.NewNotFoundErr("brand not found"))

		_, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 42, NameEn: "Drinks", NameAr: "مشروبات"},
			category.Uploads{Image: pngUpload()},
		)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.IsNotFound())
		assert.Equal(t, "brand not found", appErr.Message)
		assert.Equal(t, 1, d.countFiles(t))
	})

	t.Run("image is required", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 1, NameEn: "Drinks", NameAr: "مشروبات"},
			category.Uploads{},
		)

		assert.Equal(t, ErrImageRequired, err)
	})

	t.Run("uploaded image wins over a path", func(t *testing.T) {
		s, d := newTestService(t)

		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 1).Return(nil)
		d.repository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data category.Category) (*category.Category, error) {
				data.ID = 4
				return &data, nil
			},
		)

		created, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 1, NameEn: "Drinks", NameAr: "مشروبات", Image: "/upload/other.png"},
			category.Uploads{Image: pngUpload()},
		)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.Image, "/uploads/categories/"))
		assert.True(t, d.exists(t, created.Image))
	})

	t.Run("image path from /api/upload is copied", func(t *testing.T) {
		s, d := newTestService(t)

		require.NoError(t, afero.WriteFile(d.fs, "upload/drinks.webp", []byte("webp"), 0o644))

		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 1).Return(nil)
		d.repository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data category.Category) (*category.Category, error) {
				return &data, nil
			},
		)

		created, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 1, NameEn: "Drinks", NameAr: "مشروبات", Image: "/upload/drinks.webp"},
			category.Uploads{},
		)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.Image, "/uploads/categories/"))
		assert.True(t, strings.HasSuffix(created.Image, ".webp"))
		assert.Equal(t, 2, d.countFiles(t))
	})

	t.Run("image of another category is refused", func(t *testing.T) {
		s, d := newTestService(t)

		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 1).Return(nil)

		_, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 1, NameEn: "Drinks", NameAr: "مشروبات", Image: image},
			category.Uploads{},
		)

		assert.Equal(t, storage.ErrImagePathNotAllowed, err)
		assert.True(t, d.exists(t, image))
	})

	t.Run("brand removed before insert", func(t *testing.T) {
		s, d := newTestService(t)

		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 1).Return(nil)
		d.repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23503"})

		_, err := s.CreateCategory(
			context.Background(),
			category.Category{BrandID: 1, NameEn: "Drinks", NameAr: "مشروبات"},
			category.Uploads{Image: pngUpload()},
		)

		assert.Equal(t, ErrBrandNotFound, err)
		assert.Equal(t, 1, d.countFiles(t))
	})
}

func TestService_UpdateCategory(t *testing.T) {
	t.Run("moving to a missing brand", func(t *testing.T) {
		s, d := newTestService(t)

		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)
		d.brandService.EXPECT().CheckBrandExists(gomock.Any(), 9).Return(apperror.NewNotFoundErr("brand not found"))

		_, err := s.UpdateCategory(context.Background(), 3, category.Patch{BrandID: ptr(9)}, category.Uploads{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.IsNotFound())
	})

	t.Run("new image replaces the old one", func(t *testing.T) {
		s, d := newTestService(t)

		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)
		d.repository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data category.Category) (*category.Category, error) {
				return &data, nil
			},
		)

		updated, err := s.UpdateCategory(
			context.Background(),
			3,
			category.Patch{NameEn: ptr("Savory Snacks")},
			category.Uploads{Image: pngUpload()},
		)
		require.NoError(t, err)

		assert.Equal(t, "Savory Snacks", updated.NameEn)
		assert.Equal(t, "وجبات خفيفة", updated.NameAr)
		assert.NotEqual(t, image, updated.Image)
		assert.False(t, d.exists(t, image))
		assert.True(t, d.exists(t, updated.Image))
	})

	t.Run("non-image upload keeps the old image", func(t *testing.T) {
		s, d := newTestService(t)

		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)

		_, err := s.UpdateCategory(
			context.Background(),
			3,
			category.Patch{},
			category.Uploads{Image: &storage.Upload{
				File:        bytes.NewReader([]byte("<script>")),
				Filename:    "evil.html",
				ContentType: "text/html",
				Size:        8,
			}},
		)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "File type .html is not allowed", appErr.Message)
		assert.True(t, d.exists(t, image))
		assert.Equal(t, 1, d.countFiles(t))
	})

	t.Run("not found", func(t *testing.T) {
		s, d := newTestService(t)

		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(nil, categorydb.ErrCategoryNotFound)

		_, err := s.UpdateCategory(context.Background(), 3, category.Patch{}, category.Uploads{})

		assert.Equal(t, ErrCategoryNotFound, err)
	})
}

func TestService_DeleteCategory(t *testing.T) {
	productRule, _ := guard.RuleFor(guard.KindCategory)

	t.Run("refused while products reference it", func(t *testing.T) {
		s, d := newTestService(t)

		d.runTransactions()
		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)
		d.counter.EXPECT().CountChildren(gomock.Any(), productRule, 3).Return(2, nil)

		err := s.DeleteCategory(context.Background(), 3)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.False(t, appErr.IsNotFound())
		assert.Equal(t, "cannot delete category: 2 products still reference it", appErr.Message)
		assert.True(t, d.exists(t, image))
	})

	t.Run("succeeds once no product is left and removes the image", func(t *testing.T) {
		s, d := newTestService(t)

		d.runTransactions()
		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)
		d.counter.EXPECT().CountChildren(gomock.Any(), productRule, 3).Return(0, nil)
		d.repository.EXPECT().Delete(gomock.Any(), 3).Return(nil)

		require.NoError(t, s.DeleteCategory(context.Background(), 3))

		assert.False(t, d.exists(t, image))
	})

	t.Run("product inserted concurrently", func(t *testing.T) {
		s, d := newTestService(t)

		d.runTransactions()
		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(existingCategory(), nil)
		d.counter.EXPECT().CountChildren(gomock.Any(), productRule, 3).Return(0, nil)
		d.repository.EXPECT().Delete(gomock.Any(), 3).Return(&pgconn.PgError{Code: "23503"})

		err := s.DeleteCategory(context.Background(), 3)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "cannot delete category: products still reference it", appErr.Message)
		assert.True(t, d.exists(t, image))
	})

	t.Run("not found", func(t *testing.T) {
		s, d := newTestService(t)

		d.runTransactions()
		d.repository.EXPECT().GetByID(gomock.Any(), 3).Return(nil, categorydb.ErrCategoryNotFound)

		assert.Equal(t, ErrCategoryNotFound, s.DeleteCategory(context.Background(), 3))
	})
}
