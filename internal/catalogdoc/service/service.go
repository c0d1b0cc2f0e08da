package catalogdocservice

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalogdoc"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"go.uber.org/zap"
)

const pdfMimeType = "application/pdf"

type Files interface {
	SaveAs(ctx context.Context, dir, name string, upload *storage.Upload) (string, error)
	Open(ctx context.Context, publicPath string) (io.ReadSeekCloser, *storage.Info, error)
	Remove(ctx context.Context, publicPath string) error
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

func (s *service) Open(ctx context.Context) (io.ReadSeekCloser, *storage.Info, error) {
	file, info, err := s.files.Open(ctx, catalogdoc.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, catalogdoc.ErrCatalogNotFound
		}

		s.logger.Error("unexpected error when opening catalog", zap.Error(err))

		return nil, nil, err
	}

	return file, info, nil
}

func isPDF(file io.ReadSeeker) (bool, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return false, fmt.Errorf("detect content type: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("rewind upload: %w", err)
	}

	return mtype.Is(pdfMimeType), nil
}

// Replace stores file as the catalog document, overwriting the previous one.
// Both the extension and the sniffed content must say PDF.
func (s *service) Replace(ctx context.Context, file *storage.Upload) (*catalogdoc.File, error) {
	if file == nil {
		return nil, upload.ErrNoFile
	}

	if file.Size > s.maxSize {
		return nil, upload.NewFileTooLargeErr(s.maxSize)
	}

	if storage.FileExtension(file.Filename) != "pdf" {
		return nil, catalogdoc.ErrNotPDF
	}

	ok, err := isPDF(file.File)
	if err != nil {
		s.logger.Error("unexpected error when reading catalog upload", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, catalogdoc.ErrNotPDF
	}

	file.ContentType = pdfMimeType

	filePath, err := s.files.SaveAs(ctx, storage.DirCatalog, catalogdoc.FileName, file)
	if err != nil {
		s.logger.Error("unexpected error when saving catalog", zap.Error(err))
		return nil, err
	}

	s.logger.Info("catalog replaced", zap.Int64("size", file.Size))

	return &catalogdoc.File{FilePath: filePath}, nil
}

func (s *service) Delete(ctx context.Context) error {
	if err := s.files.Remove(ctx, catalogdoc.FilePath); err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return catalogdoc.ErrCatalogNotFound
		}

		s.logger.Error("unexpected error when deleting catalog", zap.Error(err))

		return err
	}

	return nil
}
