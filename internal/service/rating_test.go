package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

func TestRateRequiresEnrollment(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)

	for rating := 1; rating <= 5; rating++ {
		if err := e.rateSvc.Rate(ctx, "user-1", "course-1", rating); !errors.Is(err, service.ErrNotEnrolled) {
			t.Fatalf("rating %d: want ErrNotEnrolled, got %v", rating, err)
		}
	}
}

func TestRateRangeValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)
	e.mustEnroll(t, "user-1", "course-1")

	for _, rating := range []int{-1, 0, 6, 100} {
		if err := e.rateSvc.Rate(ctx, "user-1", "course-1", rating); !errors.Is(err, service.ErrInvalidRating) {
			t.Fatalf("rating %d: want ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestRateOncePerUser(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)
	e.mustEnroll(t, "user-1", "course-1")
	e.mustEnroll(t, "user-2", "course-1")

	if err := e.rateSvc.Rate(ctx, "user-1", "course-1", 5); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if err := e.rateSvc.Rate(ctx, "user-2", "course-1", 4); err != nil {
		t.Fatalf("second user: %v", err)
	}
	if err := e.rateSvc.Rate(ctx, "user-1", "course-1", 1); !errors.Is(err, repository.ErrAlreadyRated) {
		t.Fatalf("want ErrAlreadyRated, got %v", err)
	}

	// the rejected attempt must not disturb the aggregate
	var c domain.Course
	if err := e.db.First(&c, "id = ?", "course-1").Error; err != nil {
		t.Fatal(err)
	}
	if c.RatingCount != 2 || c.RatingAverage != 4.5 {
		t.Fatalf("aggregate = %.2f over %d, want 4.50 over 2", c.RatingAverage, c.RatingCount)
	}
}

func TestRateUnknownCourse(t *testing.T) {
	e := newEnv(t)
	err := e.rateSvc.Rate(context.Background(), "user-1", "course-missing", 5)
	if !errors.Is(err, repository.ErrCourseNotFound) {
		t.Fatalf("want ErrCourseNotFound, got %v", err)
	}
}
