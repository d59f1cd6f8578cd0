package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/s/courseGallery/internal/auth"
	"github.com/s/courseGallery/internal/service"
)

// SessionName — имя cookie-сессии, одно на все приложение.
const SessionName = "session"

type Handler struct {
	Svc   *service.Service
	Store *sessions.CookieStore
	Gate  *auth.PasswordGate
}

func NewHandler(svc *service.Service, store *sessions.CookieStore, gate *auth.PasswordGate) *Handler {
	return &Handler{
		Svc:   svc,
		Store: store,
		Gate:  gate,
	}
}

// IsAdmin проверяет флаг админа в сессии запроса.
func (h *Handler) IsAdmin(r *http.Request) bool {
	session, _ := h.Store.Get(r, SessionName)

	isAdmin, ok := session.Values["is_admin"].(bool)
	return ok && isAdmin
}

// ==========================================
// Админ-сессия
// ==========================================

// POST /api/admin/login
func (h *Handler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !h.Gate.Verify(input.Password) {
		JSONError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	session, _ := h.Store.Get(r, SessionName)
	session.Values["is_admin"] = true
	session.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400, // 24 часа
	}
	if err := session.Save(r, w); err != nil {
		log.Println("Ошибка сохранения сессии:", err)
		JSONError(w, "Session error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /api/admin/logout
func (h *Handler) HandleAdminLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, SessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/admin/status
func (h *Handler) HandleAdminStatus(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]bool{"is_admin": h.IsAdmin(r)})
}

// ==========================================
// Вспомогательные функции
// ==========================================

func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ServiceError переводит вид ошибки сервисного слоя в статус-код.
func ServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		JSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrValidation):
		JSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("Внутренняя ошибка:", err)
		JSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
