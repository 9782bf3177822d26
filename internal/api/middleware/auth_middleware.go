package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/dgrijalva/jwt-go"
)

// AuthPayloadMiddleware 有帶合法token就把AuthContext塞進ctx，沒帶不擋
// 公開端點與需要登入的端點共用，擋不擋由AuthMiddleware決定
func AuthPayloadMiddleware(tokenKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(constants.AuthorizationHeaderKey)
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) != 2 || strings.ToLower(fields[0]) != constants.AuthorizationTypeBearer {
				next.ServeHTTP(w, r)
				return
			}

			auth, err := parseToken(fields[1], tokenKey)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(util.WithAuthContext(r.Context(), auth)))
		})
	}
}

// AuthMiddleware 驗證ctx是否有AuthContext
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := util.GetAuthContext(r.Context()); !ok {
			api.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, apperr.ErrStrMap[apperr.UnauthenticatedCode]))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware 限admin角色
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, ok := util.GetAuthContext(r.Context())
		if !ok {
			api.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, apperr.ErrStrMap[apperr.UnauthenticatedCode]))
			return
		}
		if !auth.IsAdmin() {
			api.ErrorJSON(w, apperr.New(apperr.ForbiddenCode, apperr.ErrStrMap[apperr.ForbiddenCode]))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseToken(tokenStr, tokenKey string) (model.AuthContext, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(tokenKey), nil
	})
	if err != nil || !token.Valid {
		return model.AuthContext{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.AuthContext{}, fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return model.AuthContext{}, fmt.Errorf("token missing user_id")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = model.RoleCustomer
	}

	return model.AuthContext{UserID: uint(userID), Role: role}, nil
}
