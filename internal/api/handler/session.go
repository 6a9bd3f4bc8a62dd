package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/api/middleware"
	"github.com/gearhub/gearhub/internal/api/request"
	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/session"
)

// SessionHandler handles session and profile endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	profile, err := h.sessionService.Login(r.Context(), req.Email, req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile := middleware.MustGetProfile(r.Context())
	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// SelectRole handles POST /api/v1/session/role
func (h *SessionHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	profile, err := h.sessionService.SelectRole(r.Context(), model.Role(req.Role))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// UpdateProfile handles PATCH /api/v1/profile
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	profile, err := h.sessionService.UpdateProfile(r.Context(), session.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
		Bio:    req.Bio,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// SetCredential handles POST /api/v1/profile/credential
func (h *SessionHandler) SetCredential(w http.ResponseWriter, r *http.Request) {
	var req request.SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Credential == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("credential is required"))
		return
	}

	profile, err := h.sessionService.SetCredential(r.Context(), req.Credential)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// AwardXP handles POST /api/v1/xp
func (h *SessionHandler) AwardXP(w http.ResponseWriter, r *http.Request) {
	var req request.AwardXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	profile, err := h.sessionService.AwardXP(r.Context(), req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}
