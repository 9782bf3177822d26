package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/go-chi/chi/v5"
)

// FileHandler 提供商品檔案下載
type FileHandler struct {
	blobStore storage.IBlobStore
}

func NewFileHandler(blobStore storage.IBlobStore) *FileHandler {
	return &FileHandler{blobStore: blobStore}
}

// DownloadFile GET /files/{id}
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		api.ErrorJSON(w, apperr.New(apperr.ValidationCode, "file id is required"))
		return
	}

	data, err := h.blobStore.Download(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			api.ErrorJSON(w, apperr.New(apperr.NotFoundCode, "file not found"))
			return
		}
		api.ErrorJSON(w, apperr.Wrap(apperr.InternalCode, "failed to read file", err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
