package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/s/courseGallery/internal/auth"
	"github.com/s/courseGallery/internal/models"
	"github.com/s/courseGallery/internal/slug"
	"github.com/s/courseGallery/internal/store"
)

// Виды ошибок сервисного слоя. Транспорт переводит их в статус-коды:
// ErrNotFound → 404, ErrValidation → 400.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Service — тонкая оркестрация над Store: проверки, которые хранилище
// не делает само, плюс вычисление публичных ссылок.
type Service struct {
	store *store.Store
	gate  *auth.PasswordGate
}

func New(st *store.Store, gate *auth.PasswordGate) *Service {
	return &Service{store: st, gate: gate}
}

// ==========================================
// Курсы
// ==========================================

func (s *Service) ListCourses() []models.Course {
	return s.store.ListCourses()
}

func (s *Service) GetCourseBySlug(courseSlug string) (models.Course, error) {
	course, ok := s.store.GetCourseBySlug(courseSlug)
	if !ok {
		return models.Course{}, fmt.Errorf("course %q: %w", courseSlug, ErrNotFound)
	}
	return course, nil
}

// CreateCourse проверяет имя, выводит slug из имени если он не задан
// и отвергает дубликаты до обращения к хранилищу.
func (s *Service) CreateCourse(name, courseSlug string) (models.Course, error) {
	if name == "" {
		return models.Course{}, fmt.Errorf("course name is required: %w", ErrValidation)
	}
	if courseSlug == "" {
		courseSlug = slug.Make(name)
	}
	if !slug.IsValid(courseSlug) {
		return models.Course{}, fmt.Errorf("invalid slug %q: %w", courseSlug, ErrValidation)
	}

	for _, c := range s.store.ListCourses() {
		if c.Name == name {
			return models.Course{}, fmt.Errorf("course name %q already exists: %w", name, ErrValidation)
		}
		if c.Slug == courseSlug {
			return models.Course{}, fmt.Errorf("course slug %q already exists: %w", courseSlug, ErrValidation)
		}
	}

	course, err := s.store.CreateCourse(name, courseSlug)
	if err != nil {
		// Хранилище держит инвариант само; сюда попадаем только при гонке
		return models.Course{}, fmt.Errorf("%s: %w", err, ErrValidation)
	}
	return course, nil
}

// DeleteCourse требует пять совпадающих копий админ-пароля — намеренное
// "трение" перед каскадным удалением курса вместе с работами.
func (s *Service) DeleteCourse(id string, passwords []string) error {
	if err := s.gate.VerifyRepeated(passwords, auth.DeleteConfirmations); err != nil {
		return fmt.Errorf("%s: %w", err, ErrValidation)
	}
	if !s.store.DeleteCourse(id) {
		return fmt.Errorf("course %q: %w", id, ErrNotFound)
	}
	return nil
}

// ==========================================
// Работы
// ==========================================

func (s *Service) ListAssignments() []models.Assignment {
	return s.store.ListAssignments()
}

func (s *Service) ListAssignmentsByCourse(courseID string) []models.Assignment {
	return s.store.ListAssignmentsByCourse(courseID)
}

// ResolveAssignment находит работу по публичному адресу slug/номер
// и возвращает ее вместе с курсом.
func (s *Service) ResolveAssignment(courseSlug string, orderIndex int) (models.Assignment, models.Course, error) {
	assignment, ok := s.store.GetAssignmentByCourseSlugAndOrder(courseSlug, orderIndex)
	if !ok {
		return models.Assignment{}, models.Course{}, fmt.Errorf("assignment %s/%d: %w", courseSlug, orderIndex, ErrNotFound)
	}
	course, ok := s.store.GetCourse(assignment.CourseID)
	if !ok {
		return models.Assignment{}, models.Course{}, fmt.Errorf("course %q: %w", assignment.CourseID, ErrNotFound)
	}
	return assignment, course, nil
}

// CreateAssignment проверяет существование курса (хранилище этого не делает)
// и возвращает работу вместе с публичной ссылкой "/<slug>/<номер>".
func (s *Service) CreateAssignment(courseID, title, description string, images []string) (models.Assignment, string, error) {
	course, ok := s.store.GetCourse(courseID)
	if !ok {
		return models.Assignment{}, "", fmt.Errorf("course %q: %w", courseID, ErrNotFound)
	}

	assignment := s.store.CreateAssignment(courseID, title, description, images)
	link := "/" + course.Slug + "/" + strconv.Itoa(assignment.OrderIndex)
	return assignment, link, nil
}

func (s *Service) UpdateAssignment(id string, patch models.AssignmentPatch) (models.Assignment, error) {
	assignment, ok := s.store.UpdateAssignment(id, patch)
	if !ok {
		return models.Assignment{}, fmt.Errorf("assignment %q: %w", id, ErrNotFound)
	}
	return assignment, nil
}

func (s *Service) DeleteAssignment(id string) error {
	if !s.store.DeleteAssignment(id) {
		return fmt.Errorf("assignment %q: %w", id, ErrNotFound)
	}
	return nil
}
