package storage_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	mockstorage "github.com/xw1nchester/foodcatalog-backend/internal/storage/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// pngHeader is enough for content sniffing to recognise a PNG.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type FilesSuite struct {
	suite.Suite
	fs    afero.Fs
	files *storage.Files
	ctx   context.Context
}

func TestFiles(t *testing.T) {
	suite.Run(t, &FilesSuite{})
}

func (s *FilesSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.files = storage.NewFiles(local.New(s.fs), zap.NewNop())
	s.ctx = context.Background()
}

func (s *FilesSuite) exists(publicPath string) bool {
	ok, err := afero.Exists(s.fs, strings.TrimPrefix(publicPath, "/"))
	s.Require().NoError(err)
	return ok
}

func (s *FilesSuite) TestEnsureDirIsIdempotent() {
	s.Require().NoError(s.files.EnsureDir(s.ctx, storage.DirBrands))
	s.Require().NoError(s.files.EnsureDir(s.ctx, storage.DirBrands))

	ok, err := afero.DirExists(s.fs, storage.DirBrands)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *FilesSuite) TestSaveUsesDeclaredContentType() {
	path, err := s.files.Save(s.ctx, storage.DirCategories, &storage.Upload{
		File:        bytes.NewReader([]byte("gif-bytes")),
		Filename:    "photo.bin",
		ContentType: "image/gif",
		Size:        9,
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(path, "/uploads/categories/"))
	s.True(strings.HasSuffix(path, ".gif"))
	s.True(s.exists(path))

	content, err := afero.ReadFile(s.fs, strings.TrimPrefix(path, "/"))
	s.Require().NoError(err)
	s.Equal("gif-bytes", string(content))
}

func (s *FilesSuite) TestSaveSniffsMissingContentType() {
	path, err := s.files.Save(s.ctx, storage.DirBrands, &storage.Upload{
		File:        bytes.NewReader(pngHeader),
		Filename:    "blob",
		ContentType: "application/octet-stream",
		Size:        int64(len(pngHeader)),
	})
	s.Require().NoError(err)

	s.True(strings.HasSuffix(path, ".png"))

	content, err := afero.ReadFile(s.fs, strings.TrimPrefix(path, "/"))
	s.Require().NoError(err)
	s.Equal(pngHeader, content)
}

func (s *FilesSuite) TestSaveGeneratesUniqueNames() {
	upload := func() *storage.Upload {
		return &storage.Upload{File: bytes.NewReader([]byte("x")), Filename: "a.png", ContentType: "image/png", Size: 1}
	}

	first, err := s.files.Save(s.ctx, storage.DirBrands, upload())
	s.Require().NoError(err)

	second, err := s.files.Save(s.ctx, storage.DirBrands, upload())
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *FilesSuite) TestDelete() {
	s.Require().NoError(afero.WriteFile(s.fs, "uploads/brands/old.png", []byte("x"), 0o644))

	s.files.Delete(s.ctx, "/uploads/brands/old.png")

	s.False(s.exists("/uploads/brands/old.png"))
}

func (s *FilesSuite) TestDeleteIsNoopForMissingOrEmpty() {
	s.NotPanics(func() {
		s.files.Delete(s.ctx, "")
		s.files.Delete(s.ctx, "/uploads/brands/missing.png")
	})
}

func (s *FilesSuite) TestDeleteRefusesTraversal() {
	s.Require().NoError(afero.WriteFile(s.fs, "secret.txt", []byte("x"), 0o644))

	s.files.Delete(s.ctx, "/uploads/../secret.txt")

	s.True(s.exists("/secret.txt"))
}

func (s *FilesSuite) TestDeleteAllDeduplicates() {
	s.Require().NoError(afero.WriteFile(s.fs, "uploads/brands/a.png", []byte("x"), 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, "uploads/brands/b.png", []byte("x"), 0o644))

	s.files.DeleteAll(s.ctx, "/uploads/brands/a.png", "/uploads/brands/a.png", "", "/uploads/brands/b.png")

	s.False(s.exists("/uploads/brands/a.png"))
	s.False(s.exists("/uploads/brands/b.png"))
}

func (s *FilesSuite) TestRemoveReportsMissingFile() {
	err := s.files.Remove(s.ctx, "/catalog/catalog.pdf")
	s.ErrorIs(err, storage.ErrNotExist)
}

func (s *FilesSuite) TestOpen() {
	s.Require().NoError(afero.WriteFile(s.fs, "catalog/catalog.pdf", []byte("%PDF-1.4"), 0o644))

	file, info, err := s.files.Open(s.ctx, "/catalog/catalog.pdf")
	s.Require().NoError(err)
	defer file.Close()

	s.Equal(int64(8), info.Size)
	s.Equal("application/pdf", info.ContentType)
}

func (s *FilesSuite) TestSaveAll() {
	var main, banner, small *string
	old := "/uploads/brands/old.png"
	small = &old

	saved, err := s.files.SaveAll(s.ctx, storage.DirBrands,
		storage.Pending{Upload: &storage.Upload{File: bytes.NewReader([]byte("a")), Filename: "a.png", ContentType: "image/png", Size: 1}, Dst: &main},
		storage.Pending{Upload: nil, Dst: &small},
		storage.Pending{Upload: &storage.Upload{File: bytes.NewReader([]byte("b")), Filename: "b.webp", ContentType: "image/webp", Size: 1}, Dst: &banner},
	)
	s.Require().NoError(err)

	s.Require().Len(saved, 2)
	s.Require().NotNil(main)
	s.Require().NotNil(banner)
	s.Equal([]string{*main, *banner}, saved)
	s.Equal(old, *small)
	s.True(s.exists(*main))
	s.True(s.exists(*banner))
}

func TestOrphaned(t *testing.T) {
	a, b, c := "/uploads/a.png", "/uploads/b.png", "/uploads/c.png"
	empty := ""

	tests := []struct {
		name     string
		before   []*string
		after    []*string
		expected []string
	}{
		{name: "unchanged", before: []*string{&a, nil}, after: []*string{&a, nil}},
		{name: "replaced", before: []*string{&a, &b}, after: []*string{&c, &b}, expected: []string{a}},
		{name: "cleared", before: []*string{&a}, after: []*string{nil}, expected: []string{a}},
		{name: "cleared with empty path", before: []*string{&a}, after: []*string{&empty}, expected: []string{a}},
		{name: "moved between fields", before: []*string{&a, &b}, after: []*string{&b, &a}},
		{name: "nothing before", before: []*string{nil, &empty}, after: []*string{&a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storage.Orphaned(tt.before, tt.after))
		})
	}
}

func TestSaveAll_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockstorage.NewMockFileStore(ctrl)
	files := storage.NewFiles(store, zap.NewNop())

	store.EXPECT().EnsureDir(gomock.Any(), storage.DirDishes).Return(nil).Times(2)
	gomock.InOrder(
		store.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), "image/png").Return(nil),
		store.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), "image/png").Return(errors.New("disk full")),
	)
	store.EXPECT().Remove(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) error {
		assert.True(t, strings.HasPrefix(name, storage.DirDishes+"/"))
		return nil
	})

	var first, second *string
	upload := func() *storage.Upload {
		return &storage.Upload{File: bytes.NewReader([]byte("x")), Filename: "x.png", ContentType: "image/png", Size: 1}
	}

	saved, err := files.SaveAll(context.Background(), storage.DirDishes,
		storage.Pending{Upload: upload(), Dst: &first},
		storage.Pending{Upload: upload(), Dst: &second},
	)

	require.Error(t, err)
	assert.Nil(t, saved)
	assert.Nil(t, second)
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		in          string
		expected    string
		expectedErr error
	}{
		{in: "/uploads/brands/a.png", expected: "uploads/brands/a.png"},
		{in: "uploads//brands/a.png", expected: "uploads/brands/a.png"},
		{in: "/uploads/../../etc/passwd", expectedErr: storage.ErrInvalidPath},
		{in: "", expectedErr: storage.ErrInvalidPath},
		{in: "/", expectedErr: storage.ErrInvalidPath},
		{in: "uploads\\brands\\a.png", expectedErr: storage.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, err := storage.ResolvePath(tt.in)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

const imageLimit = 1 << 20

func (s *FilesSuite) dirEntries(dir string) int {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return 0
	}
	return len(entries)
}

func (s *FilesSuite) TestSaveImagesRejectsBadUploads() {
	tests := []struct {
		name        string
		upload      *storage.Upload
		expectedErr string
	}{
		{
			name:        "over the size limit",
			upload:      &storage.Upload{File: bytes.NewReader(pngHeader), Filename: "big.png", ContentType: "image/png", Size: 100 << 20},
			expectedErr: "File size exceeds the 1MB limit",
		},
		{
			name:        "html page",
			upload:      &storage.Upload{File: bytes.NewReader([]byte("<script>")), Filename: "evil.html", ContentType: "text/html", Size: 8},
			expectedErr: "File type .html is not allowed",
		},
		{
			name:        "executable",
			upload:      &storage.Upload{File: bytes.NewReader([]byte("MZ")), Filename: "setup.exe", ContentType: "application/octet-stream", Size: 2},
			expectedErr: "File type .exe is not allowed",
		},
		{
			name:        "video",
			upload:      &storage.Upload{File: bytes.NewReader([]byte("x")), Filename: "clip.mp4", ContentType: "video/mp4", Size: 1},
			expectedErr: "File type .mp4 is not allowed",
		},
		{
			name:        "image name with html content",
			upload:      &storage.Upload{File: bytes.NewReader([]byte("<script>")), Filename: "logo.png", ContentType: "text/html", Size: 8},
			expectedErr: "Only image files are allowed",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var dst *string

			saved, err := s.files.SaveImages(s.ctx,
				storage.Images{Dir: storage.DirBrands, MaxSize: imageLimit},
				storage.Pending{Upload: tc.upload, Dst: &dst},
			)

			s.Require().Error(err)
			s.EqualError(err, tc.expectedErr)
			s.Nil(saved)
			s.Nil(dst)
			s.Zero(s.dirEntries(storage.DirBrands))
		})
	}
}

func (s *FilesSuite) TestSaveImagesChecksEveryUploadBeforeWriting() {
	var main, banner *string

	_, err := s.files.SaveImages(s.ctx,
		storage.Images{Dir: storage.DirBrands, MaxSize: imageLimit},
		storage.Pending{Upload: &storage.Upload{File: bytes.NewReader(pngHeader), Filename: "a.png", ContentType: "image/png", Size: 16}, Dst: &main},
		storage.Pending{Upload: &storage.Upload{File: bytes.NewReader([]byte("x")), Filename: "b.html", ContentType: "text/html", Size: 1}, Dst: &banner},
	)

	s.EqualError(err, "File type .html is not allowed")
	s.Nil(main)
	s.Zero(s.dirEntries(storage.DirBrands))
}

func (s *FilesSuite) TestSaveImagesCopiesStandaloneUpload() {
	s.Require().NoError(afero.WriteFile(s.fs, "upload/logo.png", pngHeader, 0o644))

	src := "/upload/logo.png"
	dst := &src

	saved, err := s.files.SaveImages(s.ctx,
		storage.Images{Dir: storage.DirCategories, MaxSize: imageLimit},
		storage.Pending{Dst: &dst},
	)
	s.Require().NoError(err)

	s.Require().NotNil(dst)
	s.Equal([]string{*dst}, saved)
	s.True(strings.HasPrefix(*dst, "/uploads/categories/"))
	s.True(strings.HasSuffix(*dst, ".png"))
	s.True(s.exists(*dst))
	s.True(s.exists(src))

	content, err := afero.ReadFile(s.fs, strings.TrimPrefix(*dst, "/"))
	s.Require().NoError(err)
	s.Equal(pngHeader, content)
}

func (s *FilesSuite) TestSaveImagesRejectsPaths() {
	s.Require().NoError(afero.WriteFile(s.fs, "uploads/brands/other.png", pngHeader, 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, "catalog/catalog.pdf", []byte("%PDF-1.4"), 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, "upload/clip.mp4", []byte("mp4"), 0o644))

	tests := []struct {
		name        string
		path        string
		expectedErr string
	}{
		{name: "file of another row", path: "/uploads/brands/other.png", expectedErr: storage.ErrImagePathNotAllowed.Error()},
		{name: "catalog document", path: "/catalog/catalog.pdf", expectedErr: storage.ErrImagePathNotAllowed.Error()},
		{name: "traversal out of upload", path: "/upload/../catalog/catalog.pdf", expectedErr: storage.ErrImagePathNotAllowed.Error()},
		{name: "external url", path: "https://example.com/a.png", expectedErr: storage.ErrImagePathNotAllowed.Error()},
		{name: "missing upload", path: "/upload/missing.png", expectedErr: "file /upload/missing.png does not exist"},
		{name: "uploaded video", path: "/upload/clip.mp4", expectedErr: "File type .mp4 is not allowed"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			path := tc.path
			dst := &path

			_, err := s.files.SaveImages(s.ctx,
				storage.Images{Dir: storage.DirBrands, MaxSize: imageLimit},
				storage.Pending{Dst: &dst},
			)

			s.EqualError(err, tc.expectedErr)
		})
	}

	s.True(s.exists("/uploads/brands/other.png"))
	s.True(s.exists("/catalog/catalog.pdf"))
	s.Equal(1, s.dirEntries(storage.DirBrands))
}

func (s *FilesSuite) TestSaveImagesKeepsOwnedPaths() {
	main, banner := "/uploads/brands/main.png", "/uploads/brands/banner.png"

	// banner moves into the main image field
	newMain := banner
	mainDst, cleared := &newMain, new(string)

	saved, err := s.files.SaveImages(s.ctx,
		storage.Images{Dir: storage.DirBrands, MaxSize: imageLimit, Owned: []*string{&main, &banner}},
		storage.Pending{Dst: &mainDst},
		storage.Pending{Dst: &cleared},
	)
	s.Require().NoError(err)

	s.Empty(saved)
	s.Equal(banner, *mainDst)
	s.Equal("", *cleared)
}

func TestCheckImage_SniffsUndeclaredType(t *testing.T) {
	u := &storage.Upload{File: bytes.NewReader(pngHeader), Filename: "photo.jpg", ContentType: "", Size: int64(len(pngHeader))}

	require.NoError(t, storage.CheckImage(u, imageLimit))
	assert.Equal(t, "image/png", u.ContentType)

	html := &storage.Upload{File: bytes.NewReader([]byte("<html><body>x</body></html>")), Filename: "photo.jpg", Size: 27}
	assert.ErrorIs(t, storage.CheckImage(html, imageLimit), storage.ErrNotAnImage)
}

func TestIsStandaloneUpload(t *testing.T) {
	assert.True(t, storage.IsStandaloneUpload("/upload/a.png"))
	assert.True(t, storage.IsStandaloneUpload("upload//a.png"))
	assert.False(t, storage.IsStandaloneUpload("/upload"))
	assert.False(t, storage.IsStandaloneUpload("/uploads/brands/a.png"))
	assert.False(t, storage.IsStandaloneUpload("/upload/../catalog/catalog.pdf"))
}
