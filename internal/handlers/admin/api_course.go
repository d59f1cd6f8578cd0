package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/s/courseGallery/internal/handlers"
	"github.com/s/courseGallery/internal/upload"
)

// Service — админский JSON API. Встраивает базовый Handler,
// чтобы делить с ним сервис, сессии и helpers.
type Service struct {
	handlers.Handler
	Uploads *upload.Saver
}

// ==========================================
// 1. POST /api/courses (Создание)
// 2. DELETE /api/courses/{id} (Удаление с подтверждением)
// ==========================================

func (s *Service) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	course, err := s.Svc.CreateCourse(input.Name, input.Slug)
	if err != nil {
		handlers.ServiceError(w, err)
		return
	}

	log.Printf("Курс создан: %s (%s)", course.Name, course.Slug)
	handlers.WriteJSON(w, http.StatusCreated, course)
}

// Удаление курса каскадно сносит все его работы, поэтому требует
// пять повторов админ-пароля в теле запроса.
func (s *Service) HandleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input struct {
		Passwords []string `json:"passwords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := s.Svc.DeleteCourse(vars["id"], input.Passwords); err != nil {
		handlers.ServiceError(w, err)
		return
	}

	log.Printf("Курс удален: %s", vars["id"])
	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
