package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/api/middleware"
	"github.com/gearhub/gearhub/internal/api/request"
	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/timetable"
)

// TimetableHandler handles timetable endpoints
type TimetableHandler struct {
	timetableService *timetable.Service
}

// NewTimetableHandler creates a new timetable handler
func NewTimetableHandler(timetableService *timetable.Service) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
	}
}

// Add handles POST /api/v1/timetable
func (h *TimetableHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	actor := middleware.MustGetProfile(r.Context())
	slot, err := h.timetableService.Add(r.Context(), actor, timetable.AddSlot{
		Day:     req.Day,
		Time:    req.Time,
		Subject: req.Subject,
		Room:    req.Room,
		Color:   req.Color,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TimetableSlotFromModel(slot))
}

// List handles GET /api/v1/timetable
func (h *TimetableHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	slots, err := h.timetableService.List(r.Context(), actor)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.TimetableSlot, len(slots))
	for i, s := range slots {
		out[i] = response.TimetableSlotFromModel(s)
	}
	response.JSON(w, http.StatusOK, out)
}

// Remove handles DELETE /api/v1/timetable/{id}
func (h *TimetableHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	if err := h.timetableService.Remove(r.Context(), actor, model.SlotID(mux.Vars(r)["id"])); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}
