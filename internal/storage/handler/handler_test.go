package storagehandler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	"go.uber.org/zap"
)

func TestHandler_serveFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "uploads/brands/logo.png", []byte("png-bytes"), 0o644))

	files := storage.NewFiles(local.New(fs), zap.NewNop())

	router := chi.NewRouter()
	New(files, zap.NewNop()).Register(router)

	tests := []struct {
		name               string
		path               string
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "existing file",
			path:               "/uploads/brands/logo.png",
			expectedStatusCode: http.StatusOK,
			expectedBody:       "png-bytes",
		},
		{
			name:               "missing file",
			path:               "/uploads/brands/missing.png",
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "directory",
			path:               "/uploads/brands",
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_serveFile_Sandboxed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "upload/icon.svg", []byte(`<svg><script>alert(1)</script></svg>`), 0o644))

	router := chi.NewRouter()
	New(storage.NewFiles(local.New(fs), zap.NewNop()), zap.NewNop()).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/upload/icon.svg", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "sandbox")
}
