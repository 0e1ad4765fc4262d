package service

import (
	"context"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
)

type CourseSvc struct {
	courses *repository.CourseRepo
}

func NewCourseSvc(c *repository.CourseRepo) *CourseSvc {
	return &CourseSvc{courses: c}
}

// ListPublished returns the catalog without content trees; those are
// only served from the single-course endpoint.
func (s *CourseSvc) ListPublished(ctx context.Context) ([]domain.Course, error) {
	out, err := s.courses.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Content = nil
	}
	return out, nil
}

// Get returns one course with non-preview lecture URLs blanked.
func (s *CourseSvc) Get(ctx context.Context, id string) (*domain.Course, error) {
	c, err := s.courses.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.Content = append([]domain.Chapter(nil), c.Content...)
	for i := range cp.Content {
		cp.Content[i].Lectures = append([]domain.Lecture(nil), c.Content[i].Lectures...)
	}
	cp.StripPrivateContent()
	return &cp, nil
}

// ByEducator lists the educator's own courses, published or not,
// without content trees.
func (s *CourseSvc) ByEducator(ctx context.Context, educatorID string) ([]domain.Course, error) {
	out, err := s.courses.ByEducator(ctx, educatorID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Content = nil
	}
	return out, nil
}

func (s *CourseSvc) Create(ctx context.Context, educatorID string, c *domain.Course) (*domain.Course, error) {
	c.EducatorID = educatorID
	if c.Discount < 0 || c.Discount > 100 {
		return nil, ErrInvalidDiscount
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
