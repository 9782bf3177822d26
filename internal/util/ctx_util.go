package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// GetAuthContext 從請求上下文取出身份資訊
// 未登入回傳 (zero, false)
func GetAuthContext(ctx context.Context) (model.AuthContext, bool) {
	auth, ok := ctx.Value(constants.AuthContextKey).(model.AuthContext)
	return auth, ok
}

// WithAuthContext 寫入身份資訊，auth middleware 與測試使用
func WithAuthContext(ctx context.Context, auth model.AuthContext) context.Context {
	return context.WithValue(ctx, constants.AuthContextKey, auth)
}

// GetRequestID middleware沒掛的情況回傳unknown
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}
