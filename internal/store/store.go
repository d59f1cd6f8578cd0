package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/s/courseGallery/internal/models"
)

// ErrDuplicate возвращается при попытке создать курс с занятым именем или slug.
var ErrDuplicate = fmt.Errorf("duplicate course name or slug")

// Store — авторитетное in-memory хранилище курсов и работ.
// Один экземпляр на процесс, после рестарта данные не переживают.
// Все операции возвращают копии записей, внутреннее состояние наружу не утекает.
type Store struct {
	mu          sync.RWMutex
	courses     map[string]models.Course
	assignments map[string]models.Assignment
	coll        *collate.Collator
}

func New() *Store {
	return &Store{
		courses:     make(map[string]models.Course),
		assignments: make(map[string]models.Assignment),
		coll:        collate.New(language.Turkish),
	}
}

func newID() string {
	return uuid.NewString()
}

// ==========================================
// Курсы
// ==========================================

// ListCourses возвращает все курсы, отсортированные по имени (с учетом локали).
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

func (s *Store) GetCourse(id string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	return c, ok
}

// GetCourseBySlug — линейный поиск; slug уникален, совпадение максимум одно.
func (s *Store) GetCourseBySlug(slug string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.courseBySlugLocked(slug)
}

func (s *Store) courseBySlugLocked(slug string) (models.Course, bool) {
	for _, c := range s.courses {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Course{}, false
}

// CreateCourse сохраняет новый курс. Уникальность имени и slug проверяется
// здесь же: прямой вызов мимо сервисного слоя инвариант не нарушит.
func (s *Store) CreateCourse(name, slug string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		if c.Name == name || c.Slug == slug {
			return models.Course{}, fmt.Errorf("course %q (%s): %w", name, slug, ErrDuplicate)
		}
	}

	course := models.Course{
		ID:        newID(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	s.courses[course.ID] = course
	return course, nil
}

// DeleteCourse удаляет курс и все его работы в одной критической секции:
// работа не может пережить свой курс.
func (s *Store) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return false
	}
	for aid, a := range s.assignments {
		if a.CourseID == id {
			delete(s.assignments, aid)
		}
	}
	delete(s.courses, id)
	return true
}

// ==========================================
// Работы
// ==========================================

// ListAssignments возвращает все работы по возрастанию OrderIndex.
// Порядок осмыслен только после фильтрации по курсу.
func (s *Store) ListAssignments() []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		out = append(out, cloneAssignment(a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func (s *Store) ListAssignmentsByCourse(courseID string) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.assignmentsByCourseLocked(courseID)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func (s *Store) assignmentsByCourseLocked(courseID string) []models.Assignment {
	var out []models.Assignment
	for _, a := range s.assignments {
		if a.CourseID == courseID {
			out = append(out, cloneAssignment(a))
		}
	}
	return out
}

func (s *Store) GetAssignment(id string) (models.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assignments[id]
	if !ok {
		return models.Assignment{}, false
	}
	return cloneAssignment(a), true
}

// GetAssignmentByCourseSlugAndOrder сначала находит курс по slug,
// затем работу с совпадающим OrderIndex.
func (s *Store) GetAssignmentByCourseSlugAndOrder(slug string, orderIndex int) (models.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courseBySlugLocked(slug)
	if !ok {
		return models.Assignment{}, false
	}
	for _, a := range s.assignments {
		if a.CourseID == course.ID && a.OrderIndex == orderIndex {
			return cloneAssignment(a), true
		}
	}
	return models.Assignment{}, false
}

// CreateAssignment сохраняет новую работу. OrderIndex — следующий свободный
// номер курса (максимальный существующий + 1): дыры после удалений остаются,
// номера не перенумеровываются и не переиспользуются. Поиск номера и вставка
// идут под одним write-lock, поэтому параллельные создания индекс не поделят.
func (s *Store) CreateAssignment(courseID, title, description string, images []string) models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxIndex := 0
	for _, a := range s.assignments {
		if a.CourseID == courseID && a.OrderIndex > maxIndex {
			maxIndex = a.OrderIndex
		}
	}
	orderIndex := maxIndex + 1

	if title == "" {
		title = fmt.Sprintf("Assignment %d", orderIndex)
	}
	if images == nil {
		images = []string{}
	}

	assignment := models.Assignment{
		ID:          newID(),
		CourseID:    courseID,
		Title:       title,
		Description: description,
		Images:      append([]string(nil), images...),
		OrderIndex:  orderIndex,
		CreatedAt:   time.Now(),
	}
	s.assignments[assignment.ID] = assignment
	return cloneAssignment(assignment)
}

// UpdateAssignment накладывает патч на существующую запись.
// nil-поля не трогаются; CourseID и OrderIndex этим путем не меняются.
func (s *Store) UpdateAssignment(id string, patch models.AssignmentPatch) (models.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assignments[id]
	if !ok {
		return models.Assignment{}, false
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Images != nil {
		a.Images = append([]string(nil), patch.Images...)
	}
	s.assignments[id] = a
	return cloneAssignment(a), true
}

func (s *Store) DeleteAssignment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return false
	}
	delete(s.assignments, id)
	return true
}

func cloneAssignment(a models.Assignment) models.Assignment {
	a.Images = append([]string(nil), a.Images...)
	return a
}
