package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/api"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type NotificationHandler struct {
	notificationService service.INotificationService
}

func NewNotificationHandler(notificationService service.INotificationService) *NotificationHandler {
	if notificationService == nil {
		panic("notificationService cannot be nil")
	}
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications GET /notifications，全域+個人，附已讀旗標
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	views, err := h.notificationService.GetMyNotifications(r.Context(), mustAuth(r))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, views)
}

// MarkRead POST /notifications/{id}/read，冪等
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), mustAuth(r), notificationID); err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, dto.MessageResponse{Message: "notification marked as read"})
}
