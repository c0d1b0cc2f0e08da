package storage

import (
	"path/filepath"
	"slices"
	"strings"
)

const defaultExtension = "jpg"

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

var mimeExtensions = map[string]string{
	"image/jpeg":         "jpg",
	"image/jpg":          "jpg",
	"image/pjpeg":        "jpg",
	"image/png":          "png",
	"image/gif":          "gif",
	"image/webp":         "webp",
	"image/svg+xml":      "svg",
	"image/avif":         "avif",
	"image/bmp":          "bmp",
	"video/mp4":          "mp4",
	"video/webm":         "webm",
	"video/ogg":          "ogg",
	"video/quicktime":    "mov",
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
}

var (
	imageExtensions    = []string{"jpg", "jpeg", "png", "gif", "webp", "svg", "avif", "bmp"}
	videoExtensions    = []string{"mp4", "webm", "ogg", "mov"}
	documentExtensions = []string{"pdf", "doc", "docx"}
)

// ExtensionFromMimeType maps a known content type to its canonical extension.
// Unknown types fall back to the extension of filename reduced to [a-z0-9],
// and to "jpg" when nothing usable is left.
func ExtensionFromMimeType(contentType, filename string) string {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if ext, ok := mimeExtensions[mediaType]; ok {
		return ext
	}

	if ext := FileExtension(filename); ext != "" {
		return ext
	}

	return defaultExtension
}

// FileExtension returns the sanitized lower-case extension of filename without the dot.
func FileExtension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FileType classifies an extension as image or video. Anything else is "".
func FileType(ext string) string {
	switch {
	case slices.Contains(imageExtensions, ext):
		return FileTypeImage
	case slices.Contains(videoExtensions, ext):
		return FileTypeVideo
	default:
		return ""
	}
}

// IsMediaExtension reports whether ext may be uploaded through /api/upload.
func IsMediaExtension(ext string) bool {
	return FileType(ext) != ""
}

func IsDocumentExtension(ext string) bool {
	return slices.Contains(documentExtensions, ext)
}
