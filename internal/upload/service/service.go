package uploadservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"go.uber.org/zap"
)

type Files interface {
	SaveAs(ctx context.Context, dir, name string, upload *storage.Upload) (string, error)
}

type service struct {
	files   Files
	maxSize int64
	logger  *zap.Logger
}

func New(files Files, maxSize int64, logger *zap.Logger) *service {
	return &service{
		files:   files,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Upload checks size and extension, in that order, then stores the file
// under upload/ with a random name that keeps the original extension.
func (s *service) Upload(ctx context.Context, file *storage.Upload) (*upload.File, error) {
	if file == nil {
		return nil, upload.ErrNoFile
	}

	if file.Size > s.maxSize {
		return nil, upload.NewFileTooLargeErr(s.maxSize)
	}

	ext := storage.FileExtension(file.Filename)
	if !storage.IsMediaExtension(ext) {
		return nil, upload.NewExtensionNotAllowedErr(ext)
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)

	filePath, err := s.files.SaveAs(ctx, storage.DirUpload, name, file)
	if err != nil {
		s.logger.Error("unexpected error when saving uploaded file", zap.Error(err))
		return nil, err
	}

	return &upload.File{
		FilePath: filePath,
		FileType: storage.FileType(ext),
	}, nil
}
