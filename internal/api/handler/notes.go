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
	"github.com/gearhub/gearhub/internal/services/notes"
)

// NoteHandler handles note endpoints
type NoteHandler struct {
	noteService *notes.Service
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService *notes.Service) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// Create handles POST /api/v1/notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	actor := middleware.MustGetProfile(r.Context())
	note, err := h.noteService.Create(r.Context(), actor, notes.CreateNote{
		Title:   req.Title,
		Content: req.Content,
		Subject: req.Subject,
		Summary: req.Summary,
		Tags:    req.Tags,
		Public:  req.Public,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NoteFromModel(note))
}

// ListOwn handles GET /api/v1/notes
func (h *NoteHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	list, err := h.noteService.ListOwn(r.Context(), actor)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NotesFromModel(list))
}

// ListPublic handles GET /api/v1/notes/public
func (h *NoteHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	list, err := h.noteService.ListPublic(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NotesFromModel(list))
}

// Get handles GET /api/v1/notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	note, err := h.noteService.Get(r.Context(), actor, model.NoteID(mux.Vars(r)["id"]))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NoteFromModel(note))
}

// Delete handles DELETE /api/v1/notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	if err := h.noteService.Delete(r.Context(), actor, model.NoteID(mux.Vars(r)["id"])); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Complete handles POST /api/v1/notes/{id}/complete
func (h *NoteHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	profile, err := h.noteService.Complete(r.Context(), actor, model.NoteID(mux.Vars(r)["id"]))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}
