package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		w.Header().Set("Content-Type", "application/json")

		var appErr *AppError
		if errors.As(err, &appErr) {
			switch {
			case appErr.IsNotFound():
				w.WriteHeader(http.StatusNotFound)
			case appErr.IsUnauthorized():
				w.WriteHeader(http.StatusUnauthorized)
			default:
				w.WriteHeader(http.StatusBadRequest)
			}

			w.Write(appErr.Marshal())

			return
		}

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write(NewBodyTooLargeErr(maxBytesErr.Limit).Marshal())

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalError().Marshal())
	}
}
