package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"minigames_backend/pkg/token"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth проверяет Bearer access_token и кладет userID в контекст запроса.
// Токен также принимается через query-параметр для websocket-подключений
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), userIDKey, userID),
			))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}

// UserIDFromContext достает userID, положенный Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
