package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/testutil"
)

func TestAddLectureCreatesAndGrows(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProgressRepo(testutil.OpenDB(t))

	p, err := repo.Get(ctx, "user-1", "course-1")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatal("expected no record before first completion")
	}

	p, err = repo.AddLecture(ctx, "user-1", "course-1", "lec-1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.LecturesCompleted) != 1 || p.Completed {
		t.Fatalf("after first lecture: set=%v completed=%v", p.LecturesCompleted, p.Completed)
	}

	p, err = repo.AddLecture(ctx, "user-1", "course-1", "lec-2", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.LecturesCompleted) != 2 || p.Completed {
		t.Fatalf("after second lecture: set=%v completed=%v", p.LecturesCompleted, p.Completed)
	}

	p, err = repo.AddLecture(ctx, "user-1", "course-1", "lec-3", 3)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Completed {
		t.Fatal("completing every lecture should mark the course completed")
	}
}

func TestAddLectureIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProgressRepo(testutil.OpenDB(t))

	first, err := repo.AddLecture(ctx, "user-1", "course-1", "lec-1", 2)
	if err != nil {
		t.Fatal(err)
	}
	again, err := repo.AddLecture(ctx, "user-1", "course-1", "lec-1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.LecturesCompleted) != len(first.LecturesCompleted) {
		t.Fatalf("set grew on duplicate: %v -> %v", first.LecturesCompleted, again.LecturesCompleted)
	}
	if again.Completed != first.Completed {
		t.Fatalf("completed changed on duplicate: %v -> %v", first.Completed, again.Completed)
	}
}

func TestAddLectureConcurrentWritersLoseNoMember(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProgressRepo(testutil.OpenDB(t))

	const lectures = 6
	var wg sync.WaitGroup
	for i := 1; i <= lectures; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := repo.AddLecture(ctx, "user-1", "course-1", fmt.Sprintf("lec-%d", i), lectures); err != nil {
				t.Errorf("lecture %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	p, err := repo.Get(ctx, "user-1", "course-1")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || len(p.LecturesCompleted) != lectures {
		t.Fatalf("set = %v, want all %d lectures", p, lectures)
	}
	if !p.Completed {
		t.Fatal("full set should mark the course completed")
	}
}

func TestAddLectureSingleLectureCourseCompletesImmediately(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProgressRepo(testutil.OpenDB(t))

	p, err := repo.AddLecture(ctx, "user-1", "course-1", "only", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Completed {
		t.Fatal("one-lecture course should complete on first completion")
	}
}
