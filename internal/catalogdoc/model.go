package catalogdoc

import (
	"path"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
)

const FileName = "catalog.pdf"

// FilePath is the public path of the single catalog document.
var FilePath = storage.PublicPath(path.Join(storage.DirCatalog, FileName))

var (
	ErrCatalogNotFound = apperror.NewNotFoundErr("catalog not found")
	ErrNotPDF          = apperror.NewAppError("Only PDF files are allowed")
)

type File struct {
	FilePath string `json:"filePath"`
}
