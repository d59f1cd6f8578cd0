package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/s/courseGallery/internal/auth"
	"github.com/s/courseGallery/internal/handlers"
	"github.com/s/courseGallery/internal/handlers/admin"
	"github.com/s/courseGallery/internal/middleware"
	"github.com/s/courseGallery/internal/service"
	"github.com/s/courseGallery/internal/store"
	"github.com/s/courseGallery/internal/upload"
)

func main() {
	// ---------------------------
	// 0. Загрузка переменных окружения
	// ---------------------------
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: Не удалось загрузить файл .env. Используются системные переменные.")
	}

	// ---------------------------
	// 1. Хранилище (in-memory, живет пока жив процесс)
	// ---------------------------
	st := store.New()

	// ---------------------------
	// 2. Стартовые курсы
	// ---------------------------
	st.Seed()

	// ---------------------------
	// 3. Админ-пароль
	// ---------------------------
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin" // Только для разработки!
		log.Println("Внимание: ADMIN_PASSWORD не задан, используется дефолтный.")
	}
	gate := auth.NewPasswordGate(adminPassword)

	// ---------------------------
	// 4. Настройка сессий
	// ---------------------------
	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "super-secret-default-key" // Только для разработки!
		log.Println("Внимание: SESSION_KEY не задан, используется дефолтный.")
	}
	sessionStore := sessions.NewCookieStore([]byte(sessionKey))
	// Настройки безопасности куки
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 24 часа
		HttpOnly: true,
		Secure:   false, // Поставьте true, если используете HTTPS
	}

	// ---------------------------
	// 5. Каталог загрузок
	// ---------------------------
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploads, err := upload.NewSaver(uploadDir)
	if err != nil {
		log.Fatal("Ошибка каталога загрузок:", err)
	}

	// ---------------------------
	// 6. Инициализация Хендлеров
	// ---------------------------
	svc := service.New(st, gate)
	h := handlers.NewHandler(svc, sessionStore, gate)

	// Встраиваем основной Handler в Admin Service
	adminService := admin.Service{
		Handler: *h,
		Uploads: uploads,
	}

	// Middleware для проверки админ-сессии
	adminMiddleware := middleware.RequiredAdmin(h)

	// ---------------------------
	// 7. Роутинг с Gorilla Mux
	// ---------------------------
	r := mux.NewRouter()

	// --- Статические файлы (загруженные картинки) ---
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// --- Админ-сессия ---
	r.HandleFunc("/api/admin/login", h.HandleAdminLogin).Methods("POST")
	r.HandleFunc("/api/admin/logout", h.HandleAdminLogout).Methods("POST")
	r.HandleFunc("/api/admin/status", h.HandleAdminStatus).Methods("GET")

	// --- Публичные маршруты ---
	r.HandleFunc("/api/courses", h.HandleListCourses).Methods("GET")
	r.HandleFunc("/api/courses/{slug}", h.HandleGetCourseBySlug).Methods("GET")
	r.HandleFunc("/api/courses/{courseId}/assignments", h.HandleCourseAssignments).Methods("GET")
	r.HandleFunc("/api/assignments", h.HandleListAssignments).Methods("GET")
	r.HandleFunc("/api/assignments/{courseSlug}/{orderIndex}", h.HandleResolveAssignment).Methods("GET")

	// --- АДМИН API (JSON для JS фронтенда) ---
	r.HandleFunc("/api/courses", adminMiddleware(adminService.HandleCreateCourse)).Methods("POST")
	r.HandleFunc("/api/courses/{id}", adminMiddleware(adminService.HandleDeleteCourse)).Methods("DELETE")
	r.HandleFunc("/api/assignments", adminMiddleware(adminService.HandleCreateAssignment)).Methods("POST")
	r.HandleFunc("/api/assignments/{id}", adminMiddleware(adminService.HandleUpdateAssignment)).Methods("PUT")
	r.HandleFunc("/api/assignments/{id}", adminMiddleware(adminService.HandleDeleteAssignment)).Methods("DELETE")

	// ---------------------------
	// 8. Запуск сервера
	// ---------------------------
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	corsHandler := corsMiddleware(r)
	fmt.Printf("Сервер запущен: http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с любого источника (для разработки)
		// В продакшене лучше ставить конкретный домен
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
