package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFromMimeType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		expected    string
	}{
		{name: "known image type", contentType: "image/png", filename: "photo.jpeg", expected: "png"},
		{name: "type with parameters", contentType: "image/svg+xml; charset=utf-8", filename: "", expected: "svg"},
		{name: "upper case type", contentType: "IMAGE/JPEG", filename: "", expected: "jpg"},
		{name: "known video type", contentType: "video/quicktime", filename: "clip", expected: "mov"},
		{name: "unknown type uses filename", contentType: "application/x-foo", filename: "banner.TIFF", expected: "tiff"},
		{name: "filename extension sanitized", contentType: "", filename: "evil.p-n_g!", expected: "png"},
		{name: "nothing usable", contentType: "", filename: "noextension", expected: "jpg"},
		{name: "only symbols", contentType: "", filename: "file.$$", expected: "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtensionFromMimeType(tt.contentType, tt.filename))
		})
	}
}

func TestFileType(t *testing.T) {
	assert.Equal(t, FileTypeImage, FileType("jpeg"))
	assert.Equal(t, FileTypeImage, FileType("webp"))
	assert.Equal(t, FileTypeVideo, FileType("mp4"))
	assert.Equal(t, "", FileType("exe"))

	assert.True(t, IsMediaExtension("mov"))
	assert.False(t, IsMediaExtension("pdf"))
	assert.True(t, IsDocumentExtension("docx"))
}
