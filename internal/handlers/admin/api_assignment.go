package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/s/courseGallery/internal/handlers"
	"github.com/s/courseGallery/internal/models"
	"github.com/s/courseGallery/internal/upload"
)

// ==========================================
// 1. POST /api/assignments (Создание + загрузка картинок)
// 2. PUT /api/assignments/{id} (Частичное обновление)
// 3. DELETE /api/assignments/{id} (Удаление)
// ==========================================

// Создание принимает multipart/form-data: поля courseId, title, description
// и до десяти файлов в поле images.
func (s *Service) HandleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(upload.MaxFileSize); err != nil {
		handlers.JSONError(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	courseID := r.FormValue("courseId")
	title := r.FormValue("title")
	description := r.FormValue("description")

	var images []string
	if r.MultipartForm != nil {
		files := r.MultipartForm.File["images"]
		saved, err := s.Uploads.SaveImages(files)
		if err != nil {
			handlers.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		images = saved
	}

	assignment, link, err := s.Svc.CreateAssignment(courseID, title, description, images)
	if err != nil {
		handlers.ServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, struct {
		Assignment models.Assignment `json:"assignment"`
		Link       string            `json:"link"`
	}{assignment, link})
}

func (s *Service) HandleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var patch models.AssignmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		handlers.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	assignment, err := s.Svc.UpdateAssignment(vars["id"], patch)
	if err != nil {
		handlers.ServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, assignment)
}

func (s *Service) HandleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := s.Svc.DeleteAssignment(vars["id"]); err != nil {
		handlers.ServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
