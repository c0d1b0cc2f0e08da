package request

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/ajg/form"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
)

const multipartMaxMemory = 32 << 20

var validate = newValidator()

// newValidator reports json field names so messages match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func Validate(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return apperror.NewValidationErr(errs)
	}

	return err
}

func ParseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperror.ErrInvalidID
	}

	return id, nil
}

// QueryInt parses an optional positive integer query parameter.
func QueryInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil, apperror.NewAppError(fmt.Sprintf("query parameter %s should be positive integer", key))
	}

	return &v, nil
}

func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// DecodeBody fills dst from a JSON body or from the values of a multipart form.
// Multipart values are matched by the `form` struct tags.
func DecodeBody(r *http.Request, dst any) error {
	if !IsMultipart(r) {
		return render.DecodeJSON(r.Body, dst)
	}

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		return err
	}

	dec := form.NewDecoder(nil)
	dec.IgnoreUnknownKeys(true)

	return dec.DecodeValues(dst, r.MultipartForm.Value)
}

// FormValue returns a raw multipart value and whether it was present.
func FormValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}

	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// FormFile returns the file sent under key, or nil when the request has none.
// The caller closes the returned upload.
func FormFile(r *http.Request, key string) (*storage.Upload, error) {
	if !IsMultipart(r) {
		return nil, nil
	}

	file, header, err := r.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}

		return nil, apperror.NewAppError(fmt.Sprintf("failed to retrieve file %s: %s", key, err.Error()))
	}

	return &storage.Upload{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
