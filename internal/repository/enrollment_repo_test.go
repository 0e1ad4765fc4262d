package repository_test

import (
	"context"
	"testing"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/testutil"
)

func TestEnrollmentAddIsSetInsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEnrollmentRepo(testutil.OpenDB(t))

	inserted, err := repo.Add(ctx, "user-1", "course-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !inserted {
		t.Fatal("first add should insert")
	}

	inserted, err = repo.Add(ctx, "user-1", "course-1")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if inserted {
		t.Fatal("re-adding an existing member must be a no-op")
	}

	n, err := repo.CountForCourse(ctx, "course-1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("cardinality = %d, want 1", n)
	}
}

func TestEnrollmentMirroredReads(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEnrollmentRepo(testutil.OpenDB(t))

	for _, course := range []string{"course-a", "course-b"} {
		if _, err := repo.Add(ctx, "user-1", course); err != nil {
			t.Fatal(err)
		}
	}

	enrolled, err := repo.IsEnrolled(ctx, "user-1", "course-a")
	if err != nil || !enrolled {
		t.Fatalf("IsEnrolled = %v, %v", enrolled, err)
	}
	enrolled, err = repo.IsEnrolled(ctx, "user-2", "course-a")
	if err != nil || enrolled {
		t.Fatalf("user-2 should not be enrolled, got %v, %v", enrolled, err)
	}

	ids, err := repo.CourseIDs(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("CourseIDs = %v, want both courses", ids)
	}
}
