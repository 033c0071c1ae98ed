package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims is the token payload issued by the identity provider. The email is
// the caller identity used throughout the service.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTAuth verifies the bearer token on protected routes and stores the token
// email in the request context. It performs verification only; handlers read
// the caller identity themselves and treat verification as a precondition.
func JWTAuth(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				unauthorized(w, "unauthorization access. token not found")
				return
			}

			parts := strings.Fields(authorization)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				logger.Warn("JWTAuth: invalid Authorization header format", zap.String("path", r.URL.Path))
				unauthorized(w, "unauthorized access")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWTAuth: token validation failed", zap.String("path", r.URL.Path), zap.Error(err))
				unauthorized(w, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), TokenEmailCtxKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
