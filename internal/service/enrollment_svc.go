package service

import (
	"context"
	"log"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

// EnrollmentSvc is the sole writer of the enrollment relation. It is
// invoked only by the winner of a purchase transition, and defends with
// set-insert semantics anyway.
type EnrollmentSvc struct {
	enrollments *repository.EnrollmentRepo
	ratings     *repository.RatingRepo
	courses     *repository.CourseRepo
	users       *repository.UserRepo
	pub         *mq.Publisher
}

func NewEnrollmentSvc(e *repository.EnrollmentRepo, r *repository.RatingRepo, c *repository.CourseRepo, u *repository.UserRepo, pub *mq.Publisher) *EnrollmentSvc {
	return &EnrollmentSvc{enrollments: e, ratings: r, courses: c, users: u, pub: pub}
}

func (s *EnrollmentSvc) Project(ctx context.Context, userID, courseID string) error {
	inserted, err := s.enrollments.Add(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if inserted {
		log.Printf("[enroll] user=%s course=%s", userID, courseID)
		_ = s.pub.PublishJSON(ctx, events.RKEnrollmentCreated, events.EnrollmentCreated{
			UserID: userID, CourseID: courseID,
		})
	}
	return nil
}

func (s *EnrollmentSvc) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	return s.enrollments.IsEnrolled(ctx, userID, courseID)
}

// Status backs the enrollment-status endpoint: whether the user is
// enrolled in the course and whether they already rated it.
func (s *EnrollmentSvc) Status(ctx context.Context, userID, courseID string) (enrolled, rated bool, err error) {
	if _, err = s.courses.ByID(ctx, courseID); err != nil {
		return false, false, err
	}
	enrolled, err = s.enrollments.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return false, false, err
	}
	rated, err = s.ratings.HasRated(ctx, userID, courseID)
	if err != nil {
		return false, false, err
	}
	return enrolled, rated, nil
}

// Roster lists the students enrolled in one of the educator's own
// courses. Only the course's educator may read it.
func (s *EnrollmentSvc) Roster(ctx context.Context, educatorID, courseID string) ([]domain.User, error) {
	course, err := s.courses.ByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.EducatorID != educatorID {
		return nil, ErrForbidden
	}
	ids, err := s.enrollments.UserIDs(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return s.users.ByIDs(ctx, ids)
}

func (s *EnrollmentSvc) EnrolledCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	ids, err := s.enrollments.CourseIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.courses.ByIDs(ctx, ids)
}
