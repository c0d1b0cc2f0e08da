package uploadservice

import (
	"bytes"
	"context"
	"errors"
	iofs "io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	"go.uber.org/zap"
)

const maxSize = 50 << 20

func newService(t *testing.T) (*service, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := storage.NewFiles(local.New(fs), zap.NewNop())

	return New(files, maxSize, zap.NewNop()), fs
}

func countFiles(t *testing.T, fs afero.Fs) int {
	t.Helper()

	entries, err := afero.ReadDir(fs, storage.DirUpload)
	if errors.Is(err, iofs.ErrNotExist) {
		return 0
	}
	require.NoError(t, err)

	return len(entries)
}

func TestService_Upload(t *testing.T) {
	tests := []struct {
		name             string
		file             *storage.Upload
		expectedError    string
		expectedExt      string
		expectedFileType string
	}{
		{
			name:          "no file",
			file:          nil,
			expectedError: "No file uploaded",
		},
		{
			name: "larger than the limit",
			file: &storage.Upload{
				File:     bytes.NewReader([]byte("tiny body, declared size decides")),
				Filename: "movie.mp4",
				Size:     maxSize + 1,
			},
			expectedError: "File size exceeds the 50MB limit",
		},
		{
			name: "extension outside the allow-list",
			file: &storage.Upload{
				File:     bytes.NewReader([]byte("MZ")),
				Filename: "setup.exe",
				Size:     2,
			},
			expectedError: "File type .exe is not allowed",
		},
		{
			name: "no extension",
			file: &storage.Upload{
				File:     bytes.NewReader([]byte("data")),
				Filename: "README",
				Size:     4,
			},
			expectedError: "File without extension is not allowed",
		},
		{
			name: "image",
			file: &storage.Upload{
				File:        bytes.NewReader([]byte("png-bytes")),
				Filename:    "Photo.PNG",
				ContentType: "image/png",
				Size:        9,
			},
			expectedExt:      "png",
			expectedFileType: "image",
		},
		{
			name: "video at exactly the limit",
			file: &storage.Upload{
				File:     bytes.NewReader([]byte("mov-bytes")),
				Filename: "clip.mov",
				Size:     maxSize,
			},
			expectedExt:      "mov",
			expectedFileType: "video",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, fs := newService(t)

			res, err := s.Upload(context.Background(), tc.file)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedError, err.Error())
				assert.Nil(t, res)
				assert.Zero(t, countFiles(t, fs), "no file may be written")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedFileType, res.FileType)
			assert.True(t, strings.HasPrefix(res.FilePath, "/upload/"), res.FilePath)
			assert.True(t, strings.HasSuffix(res.FilePath, "."+tc.expectedExt), res.FilePath)

			ok, err := afero.Exists(fs, strings.TrimPrefix(res.FilePath, "/"))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestService_Upload_UniqueNames(t *testing.T) {
	s, fs := newService(t)

	first, err := s.Upload(context.Background(), &storage.Upload{File: bytes.NewReader([]byte("a")), Filename: "a.jpg", Size: 1})
	require.NoError(t, err)

	second, err := s.Upload(context.Background(), &storage.Upload{File: bytes.NewReader([]byte("b")), Filename: "a.jpg", Size: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.FilePath, second.FilePath)
	assert.Equal(t, 2, countFiles(t, fs))
}
