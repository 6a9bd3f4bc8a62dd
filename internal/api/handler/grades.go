package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/api/middleware"
	"github.com/gearhub/gearhub/internal/api/request"
	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/grades"
)

// GradeHandler handles grade endpoints
type GradeHandler struct {
	gradeService *grades.Service
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(gradeService *grades.Service) *GradeHandler {
	return &GradeHandler{
		gradeService: gradeService,
	}
}

// Record handles POST /api/v1/grades
func (h *GradeHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	actor := middleware.MustGetProfile(r.Context())
	grade, err := h.gradeService.Record(r.Context(), actor, grades.RecordGrade{
		StudentEmail: req.StudentEmail,
		Subject:      req.Subject,
		TestName:     req.TestName,
		Score:        req.Score,
		Total:        req.Total,
		Remarks:      req.Remarks,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GradeFromModel(grade))
}

// ListOwn handles GET /api/v1/grades
func (h *GradeHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	list, err := h.gradeService.ListOwn(r.Context(), actor)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Grade, len(list))
	for i, g := range list {
		out[i] = response.GradeFromModel(g)
	}
	response.JSON(w, http.StatusOK, out)
}

// ListForStudent handles GET /api/v1/grades/student/{id}
func (h *GradeHandler) ListForStudent(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetProfile(r.Context())
	studentID := model.ProfileID(muxVar(r, "id"))

	list, err := h.gradeService.ListForStudent(r.Context(), actor, studentID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Grade, len(list))
	for i, g := range list {
		out[i] = response.GradeFromModel(g)
	}
	response.JSON(w, http.StatusOK, out)
}
