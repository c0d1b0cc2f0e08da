package jwtauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"go.uber.org/zap"
)

type SubjectContextKey struct{}

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mockjwt
type JwtManager interface {
	ParseToken(tokenStr string) (string, error)
}

const (
	ReasonMissingHeader = "missing authorization header"
	ReasonInvalidHeader = "invalid authorization header"
	ReasonInvalidToken  = "invalid or expired token"
)

// Decision is the outcome of checking a dashboard request.
type Decision struct {
	Allowed bool
	Subject string
	Reason  string
}

func Allow(subject string) Decision {
	return Decision{Allowed: true, Subject: subject}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize decides from the request alone whether it may reach a dashboard handler.
func Authorize(r *http.Request, tokenManager JwtManager) Decision {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Deny(ReasonMissingHeader)
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
		return Deny(ReasonInvalidHeader)
	}

	subject, err := tokenManager.ParseToken(headerParts[1])
	if err != nil {
		return Deny(ReasonInvalidToken)
	}

	return Allow(subject)
}

func NewMiddleware(logger *zap.Logger, tokenManager JwtManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := Authorize(r, tokenManager)
			if !decision.Allowed {
				logger.Warn(
					"request denied",
					zap.String("path", r.URL.Path),
					zap.String("reason", decision.Reason),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write(apperror.NewUnauthorizedErr(decision.Reason).Marshal())

				return
			}

			ctx := context.WithValue(r.Context(), SubjectContextKey{}, decision.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext returns the username stored by the middleware.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectContextKey{}).(string)
	return subject
}
