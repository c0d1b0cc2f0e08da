package upload

import (
	"fmt"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
)

var ErrNoFile = apperror.NewAppError("No file uploaded")

type File struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

func NewFileTooLargeErr(limit int64) *apperror.AppError {
	return apperror.NewAppError(fmt.Sprintf("File size exceeds the %dMB limit", limit>>20))
}

func NewExtensionNotAllowedErr(ext string) *apperror.AppError {
	if ext == "" {
		return apperror.NewAppError("File without extension is not allowed")
	}

	return apperror.NewAppError(fmt.Sprintf("File type .%s is not allowed", ext))
}
