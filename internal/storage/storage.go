// Package storage keeps the public upload tree: files referenced by catalog
// rows (brand banners, category images, CVs, the catalog PDF) and the
// standalone uploads. Paths handed to callers are public paths such as
// "/uploads/brands/<uuid>.png"; backends work with the same path without the
// leading slash.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrNotExist    = errors.New("file does not exist")
	ErrInvalidPath = errors.New("invalid file path")
)

// Namespaces inside the public tree.
const (
	DirBrands         = "uploads/brands"
	DirCategories     = "uploads/categories"
	DirProducts       = "uploads/products"
	DirDishCategories = "uploads/dish-categories"
	DirDishes         = "uploads/dishes"
	DirRecipes        = "uploads/recipes"
	DirCareers        = "uploads/careers"
	DirUpload         = "upload"
	DirCatalog        = "catalog"
)

type Info struct {
	Size        int64
	ModTime     time.Time
	ContentType string
}

//go:generate mockgen -source=storage.go -destination=mocks/mock.go -package=mockstorage
type FileStore interface {
	EnsureDir(ctx context.Context, dir string) error
	Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, name string) error
	Open(ctx context.Context, name string) (io.ReadSeekCloser, *Info, error)
}
