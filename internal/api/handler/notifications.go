package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/services/notify"
)

// NotificationHandler handles the notification feed endpoints
type NotificationHandler struct {
	center *notify.Center
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{
		center: center,
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.center.List()

	out := make([]response.Notification, len(list))
	for i, n := range list {
		out[i] = response.NotificationFromModel(n)
	}

	response.JSON(w, http.StatusOK, response.NotificationList{
		Notifications: out,
		Unread:        h.center.Unread(),
	})
}

// MarkRead handles POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.center.MarkRead(id)
	response.NoContent(w)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.center.MarkAllRead()
	response.NoContent(w)
}
