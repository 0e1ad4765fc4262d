package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

func TestProgressPercentDerivation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 10)
	e.mustEnroll(t, "user-1", "course-1")

	var view service.ProgressView
	var err error
	for i := 1; i <= 7; i++ {
		view, err = e.progSvc.MarkCompleted(ctx, "user-1", "course-1", lec(i))
		if err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
	}
	if view.Percent != 70 {
		t.Fatalf("percent = %d, want 70", view.Percent)
	}
	if view.Completed {
		t.Fatal("completed at 7/10")
	}

	for i := 8; i <= 10; i++ {
		view, err = e.progSvc.MarkCompleted(ctx, "user-1", "course-1", lec(i))
		if err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
	}
	if view.Percent != 100 || !view.Completed {
		t.Fatalf("percent = %d completed = %v, want 100/true", view.Percent, view.Completed)
	}
}

func TestProgressIdempotentReMark(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 4)
	e.mustEnroll(t, "user-1", "course-1")

	if _, err := e.progSvc.MarkCompleted(ctx, "user-1", "course-1", "lec-1"); err != nil {
		t.Fatal(err)
	}
	view, err := e.progSvc.MarkCompleted(ctx, "user-1", "course-1", "lec-1")
	if err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	if len(view.LecturesCompleted) != 1 || view.Percent != 25 {
		t.Fatalf("set = %v percent = %d, want 1 entry / 25", view.LecturesCompleted, view.Percent)
	}
}

func TestProgressRequiresEnrollment(t *testing.T) {
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)

	_, err := e.progSvc.MarkCompleted(context.Background(), "user-1", "course-1", "lec-1")
	if !errors.Is(err, service.ErrNotEnrolled) {
		t.Fatalf("want ErrNotEnrolled, got %v", err)
	}
}

func TestProgressUnknownLecture(t *testing.T) {
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)
	e.mustEnroll(t, "user-1", "course-1")

	_, err := e.progSvc.MarkCompleted(context.Background(), "user-1", "course-1", "lec-99")
	if !errors.Is(err, service.ErrUnknownLecture) {
		t.Fatalf("want ErrUnknownLecture, got %v", err)
	}

	view, err := e.progSvc.Get(context.Background(), "user-1", "course-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.LecturesCompleted) != 0 {
		t.Fatalf("rejected mark mutated the set: %v", view.LecturesCompleted)
	}
}

func TestProgressZeroViewBeforeFirstMark(t *testing.T) {
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 5)
	e.mustEnroll(t, "user-1", "course-1")

	view, err := e.progSvc.Get(context.Background(), "user-1", "course-1")
	if err != nil {
		t.Fatal(err)
	}
	if view.Percent != 0 || view.Completed || len(view.LecturesCompleted) != 0 {
		t.Fatalf("zero view = %+v", view)
	}
	if view.TotalLectures != 5 {
		t.Fatalf("total = %d, want 5", view.TotalLectures)
	}
}

func TestProgressUnknownCourse(t *testing.T) {
	e := newEnv(t)
	_, err := e.progSvc.Get(context.Background(), "user-1", "course-missing")
	if !errors.Is(err, repository.ErrCourseNotFound) {
		t.Fatalf("want ErrCourseNotFound, got %v", err)
	}
}

func lec(i int) string {
	return fmt.Sprintf("lec-%d", i)
}
