package service

import (
	"context"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
)

type ProgressView struct {
	CourseID          string   `json:"course_id"`
	LecturesCompleted []string `json:"lectures_completed"`
	TotalLectures     int      `json:"total_lectures"`
	Percent           int      `json:"percent"`
	Completed         bool     `json:"completed"`
}

type ProgressSvc struct {
	courses     *repository.CourseRepo
	enrollments *repository.EnrollmentRepo
	progress    *repository.ProgressRepo
}

func NewProgressSvc(c *repository.CourseRepo, e *repository.EnrollmentRepo, p *repository.ProgressRepo) *ProgressSvc {
	return &ProgressSvc{courses: c, enrollments: e, progress: p}
}

// MarkCompleted adds the lecture to the user's completed set. Requires
// enrollment and a lecture that belongs to the course's content tree.
// Completing the same lecture twice is a successful no-op.
func (s *ProgressSvc) MarkCompleted(ctx context.Context, userID, courseID, lectureID string) (ProgressView, error) {
	course, err := s.courses.ByID(ctx, courseID)
	if err != nil {
		return ProgressView{}, err
	}
	enrolled, err := s.enrollments.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return ProgressView{}, err
	}
	if !enrolled {
		return ProgressView{}, ErrNotEnrolled
	}
	if !course.HasLecture(lectureID) {
		return ProgressView{}, ErrUnknownLecture
	}

	p, err := s.progress.AddLecture(ctx, userID, courseID, lectureID, course.LectureCount())
	if err != nil {
		return ProgressView{}, err
	}
	return progressView(courseID, p.LecturesCompleted, course.LectureCount(), p.Completed), nil
}

// Get returns the current set and derived percentage; a user with no
// record yet gets a zero view, not an error.
func (s *ProgressSvc) Get(ctx context.Context, userID, courseID string) (ProgressView, error) {
	course, err := s.courses.ByID(ctx, courseID)
	if err != nil {
		return ProgressView{}, err
	}
	p, err := s.progress.Get(ctx, userID, courseID)
	if err != nil {
		return ProgressView{}, err
	}
	if p == nil {
		return progressView(courseID, nil, course.LectureCount(), false), nil
	}
	return progressView(courseID, p.LecturesCompleted, course.LectureCount(), p.Completed), nil
}

func progressView(courseID string, done []string, total int, completed bool) ProgressView {
	percent := 0
	if total > 0 {
		percent = len(done) * 100 / total
	}
	if done == nil {
		done = []string{}
	}
	return ProgressView{
		CourseID:          courseID,
		LecturesCompleted: done,
		TotalLectures:     total,
		Percent:           percent,
		Completed:         completed,
	}
}
