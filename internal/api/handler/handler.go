package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
)

// parseUintParam URL參數轉uint，非數字回validation error
func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.ValidationCode, "invalid "+name)
	}
	return uint(id), nil
}

// mustAuth 走過AuthMiddleware後必有AuthContext
func mustAuth(r *http.Request) model.AuthContext {
	auth, _ := util.GetAuthContext(r.Context())
	return auth
}
