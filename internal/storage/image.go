package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/upload"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

var (
	ErrNotAnImage          = apperror.NewAppError("Only image files are allowed")
	ErrImagePathNotAllowed = apperror.NewAppError("image path should point to a file uploaded through /api/upload")
)

func NewFileNotFoundErr(publicPath string) *apperror.AppError {
	return apperror.NewAppError(fmt.Sprintf("file %s does not exist", publicPath))
}

// Images describes where the image fields of one row are stored.
type Images struct {
	Dir     string
	MaxSize int64
	// Owned are the paths the row holds before the write. They may be kept or
	// moved between fields as they are.
	Owned []*string
}

// CheckImage enforces the size limit and the image allow-list on u.
func CheckImage(u *Upload, maxSize int64) error {
	if u.Size > maxSize {
		return upload.NewFileTooLargeErr(maxSize)
	}

	ext := FileExtension(u.Filename)
	if FileType(ext) != FileTypeImage {
		return upload.NewExtensionNotAllowedErr(ext)
	}

	contentType, err := DetectContentType(u)
	if err != nil {
		return err
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return ErrNotAnImage
	}

	u.ContentType = contentType

	return nil
}

// IsStandaloneUpload reports whether publicPath names a file under /upload/.
func IsStandaloneUpload(publicPath string) bool {
	key, err := ResolvePath(publicPath)
	return err == nil && strings.HasPrefix(key, DirUpload+"/")
}

// SaveImages stores the image fields of a row write in target.Dir. A file
// part is checked and saved. A path set in *Dst is kept when the row already
// owns it; a standalone upload is copied into target.Dir, so rows never share
// a file. Anything else is refused before a file is written.
func (f *Files) SaveImages(ctx context.Context, target Images, pending ...Pending) ([]string, error) {
	owned := utils.Deref(target.Owned...)

	for _, p := range pending {
		if p.Upload != nil {
			if err := CheckImage(p.Upload, target.MaxSize); err != nil {
				return nil, err
			}
			continue
		}

		if ref := referencedPath(p.Dst); ref != "" && !slices.Contains(owned, ref) && !IsStandaloneUpload(ref) {
			return nil, ErrImagePathNotAllowed
		}
	}

	var saved []string

	for _, p := range pending {
		var (
			publicPath string
			err        error
		)

		ref := referencedPath(p.Dst)

		switch {
		case p.Upload != nil:
			publicPath, err = f.Save(ctx, target.Dir, p.Upload)
		case ref != "" && !slices.Contains(owned, ref):
			publicPath, err = f.copyImage(ctx, target, ref)
		default:
			continue
		}

		if err != nil {
			f.DeleteAll(ctx, saved...)
			return nil, err
		}

		*p.Dst = &publicPath
		saved = append(saved, publicPath)
	}

	return saved, nil
}

func (f *Files) copyImage(ctx context.Context, target Images, publicPath string) (string, error) {
	file, info, err := f.Open(ctx, publicPath)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return "", NewFileNotFoundErr(publicPath)
		}
		return "", err
	}
	defer file.Close()

	src := &Upload{
		File:        file,
		Filename:    path.Base(publicPath),
		ContentType: info.ContentType,
		Size:        info.Size,
	}

	if err := CheckImage(src, target.MaxSize); err != nil {
		return "", err
	}

	return f.Save(ctx, target.Dir, src)
}

func referencedPath(dst **string) string {
	if dst == nil || *dst == nil {
		return ""
	}

	return **dst
}
