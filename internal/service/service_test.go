package service

import (
	"errors"
	"testing"

	"github.com/s/courseGallery/internal/auth"
	"github.com/s/courseGallery/internal/models"
	"github.com/s/courseGallery/internal/store"
)

const testPassword = "test-secret"

func newTestService() *Service {
	return New(store.New(), auth.NewPasswordGate(testPassword))
}

func fivePasswords(p string) []string {
	return []string{p, p, p, p, p}
}

func TestCreateCourse_DerivesSlugFromName(t *testing.T) {
	svc := newTestService()

	course, err := svc.CreateCourse("Bilgisayar Bilimi", "")
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.Slug != "bilgisayar-bilimi" {
		t.Fatalf("expected derived slug, got %q", course.Slug)
	}
}

func TestCreateCourse_Validation(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateCourse("", "matematik"); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.CreateCourse("Matematik", "Matematik!"); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad slug: expected ErrValidation, got %v", err)
	}
}

func TestCreateCourse_RejectsDuplicatesWithoutMutation(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CreateCourse("Matematik", "matematik"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := svc.CreateCourse("Matematik", "baska"); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.CreateCourse("Baska", "matematik"); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate slug: expected ErrValidation, got %v", err)
	}
	if got := len(svc.ListCourses()); got != 1 {
		t.Fatalf("store mutated by rejected create: %d courses", got)
	}
}

func TestCreateAssignment_UnknownCourse(t *testing.T) {
	svc := newTestService()

	if _, _, err := svc.CreateAssignment("no-such-id", "", "", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAssignment_DefaultTitleAndLink(t *testing.T) {
	svc := newTestService()
	course, err := svc.CreateCourse("Matematik", "matematik")
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	assignment, link, err := svc.CreateAssignment(course.ID, "", "", nil)
	if err != nil {
		t.Fatalf("CreateAssignment: %v", err)
	}
	if assignment.Title != "Assignment 1" {
		t.Fatalf("expected default title, got %q", assignment.Title)
	}
	if assignment.OrderIndex != 1 {
		t.Fatalf("expected orderIndex 1, got %d", assignment.OrderIndex)
	}
	if link != "/matematik/1" {
		t.Fatalf("expected link /matematik/1, got %q", link)
	}
}

func TestResolveAssignment(t *testing.T) {
	svc := newTestService()
	course, _ := svc.CreateCourse("Matematik", "matematik")
	created, _, _ := svc.CreateAssignment(course.ID, "Türev", "", nil)

	assignment, gotCourse, err := svc.ResolveAssignment("matematik", 1)
	if err != nil {
		t.Fatalf("ResolveAssignment: %v", err)
	}
	if assignment.ID != created.ID || gotCourse.ID != course.ID {
		t.Fatalf("resolved wrong records")
	}

	if _, _, err := svc.ResolveAssignment("kimya", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown slug: expected ErrNotFound, got %v", err)
	}
	if _, _, err := svc.ResolveAssignment("matematik", 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown index: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCourse_PasswordPolicy(t *testing.T) {
	svc := newTestService()
	course, _ := svc.CreateCourse("Matematik", "matematik")

	// Меньше пяти копий
	err := svc.DeleteCourse(course.ID, []string{testPassword, testPassword})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("short list: expected ErrValidation, got %v", err)
	}

	// Одна копия неверна
	bad := fivePasswords(testPassword)
	bad[3] = "yanlis"
	if err := svc.DeleteCourse(course.ID, bad); !errors.Is(err, ErrValidation) {
		t.Fatalf("wrong copy: expected ErrValidation, got %v", err)
	}

	// Курс не должен был пострадать
	if got := len(svc.ListCourses()); got != 1 {
		t.Fatalf("course deleted despite rejected confirmation")
	}

	// Пять правильных копий
	if err := svc.DeleteCourse(course.ID, fivePasswords(testPassword)); err != nil {
		t.Fatalf("valid confirmation: %v", err)
	}
	if got := len(svc.ListCourses()); got != 0 {
		t.Fatalf("course still listed after delete")
	}
}

func TestDeleteCourse_MissingAfterValidConfirmation(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteCourse("no-such-id", fivePasswords(testPassword))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndDeleteAssignment(t *testing.T) {
	svc := newTestService()
	course, _ := svc.CreateCourse("Matematik", "matematik")
	created, _, _ := svc.CreateAssignment(course.ID, "", "", nil)

	title := "Limit"
	updated, err := svc.UpdateAssignment(created.ID, models.AssignmentPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateAssignment: %v", err)
	}
	if updated.Title != "Limit" {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	if _, err := svc.UpdateAssignment("no-such-id", models.AssignmentPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.DeleteAssignment(created.ID); err != nil {
		t.Fatalf("DeleteAssignment: %v", err)
	}
	if err := svc.DeleteAssignment(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
