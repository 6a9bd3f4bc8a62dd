package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/services/directory"
)

// muxVar reads a single gorilla/mux path variable
func muxVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	directoryService *directory.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(directoryService *directory.Service) *AdminHandler {
	return &AdminHandler{
		directoryService: directoryService,
	}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.directoryService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	summary, err := h.directoryService.Summarize(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DirectoryFromModel(profiles, summary))
}
