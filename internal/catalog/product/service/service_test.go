package productservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	productdb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/db"
	mockproductservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/service/mocks"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const image = "/uploads/products/juice.png"

func ptr[T any](v T) *T {
	return &v
}

func setup(t *testing.T) (*service, *mockproductservice.MockRepository, *mockproductservice.MockCategoryService, afero.Fs) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repository := mockproductservice.NewMockRepository(ctrl)
	categoryService := mockproductservice.NewMockCategoryService(ctrl)
	fs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fs, strings.TrimPrefix(image, "/"), []byte("img"), 0o644))

	files := storage.NewFiles(local.New(fs), zap.NewNop())

	return New(repository, categoryService, files, 1<<20, zap.NewNop()), repository, categoryService, fs
}

func exists(t *testing.T, fs afero.Fs, publicPath string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, strings.TrimPrefix(publicPath, "/"))
	require.NoError(t, err)

	return ok
}

func upload() *storage.Upload {
	return &storage.Upload{File: bytes.NewReader([]byte("jpg")), Filename: "p.jpg", ContentType: "image/jpeg", Size: 3}
}

func existingProduct() *product.Product {
	return &product.Product{ID: 8, CategoryID: 3, NameEn: "Juice", NameAr: "عصير", Image: ptr(image)}
}

func TestService_CreateProduct(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		s, _, categoryService, fs := setup(t)

		categoryService.EXPECT().CheckCategoryExists(gomock.Any(), 99).Return(apperror.NewNotFoundErr("category not found"))

		_, err := s.CreateProduct(context.Background(), product.Product{CategoryID: 99, NameEn: "Tea", NameAr: "شاي"}, product.Uploads{Image: upload()})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.IsNotFound())
		assert.Equal(t, "category not found", appErr.Message)

		entries, err := afero.ReadDir(fs, storage.DirProducts)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("without image", func(t *testing.T) {
		s, repository, categoryService, _ := setup(t)

		categoryService.EXPECT().CheckCategoryExists(gomock.Any(), 3).Return(nil)
		repository.EXPECT().
			Create(gomock.Any(), product.Product{CategoryID: 3, NameEn: "Tea", NameAr: "شاي"}).
			Return(&product.Product{ID: 9, CategoryID: 3, NameEn: "Tea", NameAr: "شاي"}, nil)

		created, err := s.CreateProduct(context.Background(), product.Product{CategoryID: 3, NameEn: "Tea", NameAr: "شاي"}, product.Uploads{})
		require.NoError(t, err)

		assert.Nil(t, created.Image)
	})

	t.Run("oversize image is rejected before the insert", func(t *testing.T) {
		s, _, categoryService, fs := setup(t)

		categoryService.EXPECT().CheckCategoryExists(gomock.Any(), 3).Return(nil)

		big := upload()
		big.Size = 100 << 20

		_, err := s.CreateProduct(context.Background(), product.Product{CategoryID: 3, NameEn: "Tea", NameAr: "شاي"}, product.Uploads{Image: big})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "File size exceeds the 1MB limit", appErr.Message)

		entries, err := afero.ReadDir(fs, storage.DirProducts)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("insert failure removes the saved image", func(t *testing.T) {
		s, repository, categoryService, fs := setup(t)

		var savedPath string

		categoryService.EXPECT().CheckCategoryExists(gomock.Any(), 3).Return(nil)
		repository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data product.Product) (*product.Product, error) {
				savedPath = *data.Image
				return nil, errors.New("connection reset")
			},
		)

		_, err := s.CreateProduct(context.Background(), product.Product{CategoryID: 3, NameEn: "Tea", NameAr: "شاي"}, product.Uploads{Image: upload()})
		require.Error(t, err)

		require.NotEmpty(t, savedPath)
		assert.False(t, exists(t, fs, savedPath))
	})
}

func TestService_UpdateProduct(t *testing.T) {
	t.Run("empty image path clears the image", func(t *testing.T) {
		s, repository, _, fs := setup(t)

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(existingProduct(), nil)
		repository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data product.Product) (*product.Product, error) {
				return &data, nil
			},
		)

		updated, err := s.UpdateProduct(context.Background(), 8, product.Patch{Image: ptr("")}, product.Uploads{})
		require.NoError(t, err)

		assert.Nil(t, updated.Image)
		assert.Equal(t, "Juice", updated.NameEn)
		assert.False(t, exists(t, fs, image))
	})

	t.Run("unchanged image is kept", func(t *testing.T) {
		s, repository, _, fs := setup(t)

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(existingProduct(), nil)
		repository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data product.Product) (*product.Product, error) {
				return &data, nil
			},
		)

		updated, err := s.UpdateProduct(context.Background(), 8, product.Patch{Color: ptr("#ff0000")}, product.Uploads{})
		require.NoError(t, err)

		assert.Equal(t, "#ff0000", updated.Color)
		assert.True(t, exists(t, fs, image))
	})

	t.Run("path of another product is refused", func(t *testing.T) {
		s, repository, _, fs := setup(t)

		require.NoError(t, afero.WriteFile(fs, "uploads/products/other.png", []byte("img"), 0o644))

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(existingProduct(), nil)

		_, err := s.UpdateProduct(context.Background(), 8, product.Patch{Image: ptr("/uploads/products/other.png")}, product.Uploads{})

		assert.Equal(t, storage.ErrImagePathNotAllowed, err)
		assert.True(t, exists(t, fs, image))
		assert.True(t, exists(t, fs, "/uploads/products/other.png"))
	})

	t.Run("moving to a missing category", func(t *testing.T) {
		s, repository, categoryService, _ := setup(t)

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(existingProduct(), nil)
		categoryService.EXPECT().CheckCategoryExists(gomock.Any(), 5).Return(apperror.NewNotFoundErr("category not found"))

		_, err := s.UpdateProduct(context.Background(), 8, product.Patch{CategoryID: ptr(5)}, product.Uploads{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.IsNotFound())
	})
}

func TestService_DeleteProduct(t *testing.T) {
	t.Run("removes the image", func(t *testing.T) {
		s, repository, _, fs := setup(t)

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(existingProduct(), nil)
		repository.EXPECT().Delete(gomock.Any(), 8).Return(nil)

		require.NoError(t, s.DeleteProduct(context.Background(), 8))

		assert.False(t, exists(t, fs, image))
	})

	t.Run("not found", func(t *testing.T) {
		s, repository, _, _ := setup(t)

		repository.EXPECT().GetByID(gomock.Any(), 8).Return(nil, productdb.ErrProductNotFound)

		assert.Equal(t, ErrProductNotFound, s.DeleteProduct(context.Background(), 8))
	})
}
