package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
	"go.uber.org/zap"
)

// Upload is a file received in a multipart request.
type Upload struct {
	File        io.ReadSeeker
	Filename    string
	ContentType string
	Size        int64
}

func (u *Upload) Close() error {
	if u == nil {
		return nil
	}

	if c, ok := u.File.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

type Files struct {
	store  FileStore
	logger *zap.Logger
}

func NewFiles(store FileStore, logger *zap.Logger) *Files {
	return &Files{
		store:  store,
		logger: logger,
	}
}

// ResolvePath turns a public path into a store key, refusing anything that
// would leave the public tree.
func ResolvePath(publicPath string) (string, error) {
	if publicPath == "" || strings.Contains(publicPath, "\\") {
		return "", ErrInvalidPath
	}

	for _, segment := range strings.Split(publicPath, "/") {
		if segment == ".." {
			return "", ErrInvalidPath
		}
	}

	key := strings.TrimPrefix(path.Clean("/"+publicPath), "/")
	if key == "" || key == "." {
		return "", ErrInvalidPath
	}

	return key, nil
}

func PublicPath(key string) string {
	return "/" + strings.TrimPrefix(key, "/")
}

// EnsureDir creates dir in the store if it is missing.
func (f *Files) EnsureDir(ctx context.Context, dir string) error {
	key, err := ResolvePath(dir)
	if err != nil {
		return err
	}

	return f.store.EnsureDir(ctx, key)
}

// DetectContentType returns the declared content type of upload, or the
// sniffed one when the client sent nothing useful.
func DetectContentType(upload *Upload) (string, error) {
	if upload.ContentType != "" && upload.ContentType != "application/octet-stream" {
		return upload.ContentType, nil
	}

	mtype, err := mimetype.DetectReader(upload.File)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}

	if _, err := upload.File.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	return mtype.String(), nil
}

// Save stores upload under dir with a generated unique name and returns its public path.
func (f *Files) Save(ctx context.Context, dir string, upload *Upload) (string, error) {
	contentType, err := DetectContentType(upload)
	if err != nil {
		return "", err
	}

	upload.ContentType = contentType

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ExtensionFromMimeType(contentType, upload.Filename))

	return f.SaveAs(ctx, dir, name, upload)
}

// SaveAs stores upload as dir/name, replacing an existing file of that name.
func (f *Files) SaveAs(ctx context.Context, dir, name string, upload *Upload) (string, error) {
	if err := f.EnsureDir(ctx, dir); err != nil {
		f.logger.Error("error when creating upload directory", zap.String("dir", dir), zap.Error(err))
		return "", err
	}

	key, err := ResolvePath(path.Join(dir, name))
	if err != nil {
		return "", err
	}

	if err := f.store.Write(ctx, key, upload.File, upload.Size, upload.ContentType); err != nil {
		f.logger.Error("error when writing file", zap.String("key", key), zap.Error(err))
		return "", err
	}

	f.logger.Info("file saved", zap.String("key", key), zap.Int64("size", upload.Size))

	return PublicPath(key), nil
}

// Delete removes the file behind publicPath. Failures are logged and
// swallowed so a missing file never fails the operation that owns it.
func (f *Files) Delete(ctx context.Context, publicPath string) {
	if publicPath == "" {
		return
	}

	key, err := ResolvePath(publicPath)
	if err != nil {
		f.logger.Warn("refusing to delete file outside public tree", zap.String("path", publicPath))
		return
	}

	if err := f.store.Remove(ctx, key); err != nil {
		f.logger.Warn("error when deleting file", zap.String("path", publicPath), zap.Error(err))
		return
	}

	f.logger.Info("file deleted", zap.String("path", publicPath))
}

// Pending is an upload waiting to be stored; its public path is written to Dst.
type Pending struct {
	Upload *Upload
	Dst    **string
}

// SaveAll saves every non-nil upload into dir and returns the new public paths.
// When one save fails, files saved before it are deleted.
func (f *Files) SaveAll(ctx context.Context, dir string, pending ...Pending) ([]string, error) {
	var saved []string

	for _, p := range pending {
		if p.Upload == nil {
			continue
		}

		publicPath, err := f.Save(ctx, dir, p.Upload)
		if err != nil {
			f.DeleteAll(ctx, saved...)
			return nil, err
		}

		*p.Dst = &publicPath
		saved = append(saved, publicPath)
	}

	return saved, nil
}

// Orphaned returns the paths of before that after no longer references.
func Orphaned(before, after []*string) []string {
	kept := utils.Deref(after...)

	var orphaned []string
	for _, p := range utils.RemoveDuplicates(utils.Deref(before...)) {
		if !slices.Contains(kept, p) {
			orphaned = append(orphaned, p)
		}
	}

	return orphaned
}

// DeleteAll deletes every distinct non-empty path.
func (f *Files) DeleteAll(ctx context.Context, paths ...string) {
	for _, p := range utils.RemoveDuplicates(paths) {
		f.Delete(ctx, p)
	}
}

// Remove deletes the file behind publicPath and reports ErrNotExist.
func (f *Files) Remove(ctx context.Context, publicPath string) error {
	key, err := ResolvePath(publicPath)
	if err != nil {
		return err
	}

	return f.store.Remove(ctx, key)
}

func (f *Files) Open(ctx context.Context, publicPath string) (io.ReadSeekCloser, *Info, error) {
	key, err := ResolvePath(publicPath)
	if err != nil {
		return nil, nil, err
	}

	return f.store.Open(ctx, key)
}
