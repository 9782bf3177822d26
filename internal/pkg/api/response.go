package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

type Response struct {
	Data any `json:"data"`
}

type ResponseError struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Data: data})
}

// ErrorJSON 將service錯誤轉為http回應
// *apperr.Error 依code對應status，其餘一律500，不外洩內部錯誤內容
func ErrorJSON(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		writeJSON(w, apperr.HTTPStatus(appErr.Code), ResponseError{
			Error: appErr.Message,
			Code:  int(appErr.Code),
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ResponseError{
		Error: apperr.ErrStrMap[apperr.InternalCode],
		Code:  int(apperr.InternalCode),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
