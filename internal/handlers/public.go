package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/s/courseGallery/internal/models"
)

// ==========================================
// Публичная часть галереи (без сессии)
// ==========================================

// GET /api/courses
func (h *Handler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.ListCourses())
}

// GET /api/courses/{slug}
func (h *Handler) HandleGetCourseBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	course, err := h.Svc.GetCourseBySlug(vars["slug"])
	if err != nil {
		ServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// GET /api/assignments
func (h *Handler) HandleListAssignments(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.ListAssignments())
}

// GET /api/courses/{courseId}/assignments
func (h *Handler) HandleCourseAssignments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	WriteJSON(w, http.StatusOK, h.Svc.ListAssignmentsByCourse(vars["courseId"]))
}

// GET /api/assignments/{courseSlug}/{orderIndex}
func (h *Handler) HandleResolveAssignment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderIndex, err := strconv.Atoi(vars["orderIndex"])
	if err != nil {
		JSONError(w, "Invalid order index", http.StatusBadRequest)
		return
	}

	assignment, course, err := h.Svc.ResolveAssignment(vars["courseSlug"], orderIndex)
	if err != nil {
		ServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Assignment models.Assignment `json:"assignment"`
		Course     models.Course     `json:"course"`
	}{assignment, course})
}
