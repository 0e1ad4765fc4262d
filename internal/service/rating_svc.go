package service

import (
	"context"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
)

type RatingSvc struct {
	courses     *repository.CourseRepo
	enrollments *repository.EnrollmentRepo
	ratings     *repository.RatingRepo
}

func NewRatingSvc(c *repository.CourseRepo, e *repository.EnrollmentRepo, r *repository.RatingRepo) *RatingSvc {
	return &RatingSvc{courses: c, enrollments: e, ratings: r}
}

// Rate records one rating per enrolled user per course. A second
// attempt is rejected and the first rating preserved.
func (s *RatingSvc) Rate(ctx context.Context, userID, courseID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	course, err := s.courses.ByID(ctx, courseID)
	if err != nil {
		return err
	}
	enrolled, err := s.enrollments.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return ErrNotEnrolled
	}
	if err := s.ratings.Add(ctx, userID, course.ID, rating); err != nil {
		return err
	}
	s.courses.Invalidate(ctx, course.ID)
	return nil
}
