package middlewareinternal

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mywallet/internal/types"

	"go.uber.org/zap"
)

var errNoBearerToken = errors.New("missing or malformed bearer token")

// BearerAuth rejects requests without an Authorization: Bearer header and
// puts the raw token into the request context. Whether the token maps to a
// live session is decided per route by the services.
func BearerAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractToken(r)
			if err != nil {
				zap.L().Debug("Failed to extract token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), types.TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoBearerToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errNoBearerToken
	}

	return parts[1], nil
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(types.TokenKey).(string)
	return token, ok
}
