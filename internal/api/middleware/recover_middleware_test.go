package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRecoverMiddleware(t *testing.T) {
	logger := zerolog.Nop()
	handler := RecoverMiddleware(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("db connection lost")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// 回應走統一錯誤格式，panic內容不得出現在body
	var body api.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int(apperr.InternalCode), body.Code)
	require.Equal(t, apperr.ErrStrMap[apperr.InternalCode], body.Error)
	require.NotContains(t, rec.Body.String(), "db connection lost")
}

func TestRecoverMiddleware_Passthrough(t *testing.T) {
	logger := zerolog.Nop()
	handler := RecoverMiddleware(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
