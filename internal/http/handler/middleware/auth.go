package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	tokenIssuer "moodiary/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const (
	UserIDKey    ctxKey = "user_id"
	bearerPrefix        = "Bearer "
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type authMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *authMiddleware {
	return &authMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid bearer token. The token's
// subject is stored in the request context as the requesting user's id.
func (m *authMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			m.unauthorized(w, "missing bearer token")
			m.logs.Warnw("request without bearer token",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		claims, err := m.validator.Validate(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.unauthorized(w, "invalid or expired token")
			m.logs.Warnw("token validation failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		userID, err := tokenIssuer.SubjectID(claims)
		if err != nil {
			m.unauthorized(w, "invalid or expired token")
			m.logs.Warnw("token carries no user id",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *authMiddleware) unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication required",
		"error":   reason,
	})
}

// UserIDFrom returns the authenticated user's id stored by Authenticate.
func UserIDFrom(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}
