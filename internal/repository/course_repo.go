package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/cache"
)

var ErrCourseNotFound = errors.New("course_not_found")

// CourseRepo serves the catalog read path through an optional Redis
// read-through cache keyed by course id.
type CourseRepo struct {
	db    *gorm.DB
	cache *cache.Store
}

func NewCourseRepo(db *gorm.DB, c *cache.Store) *CourseRepo {
	return &CourseRepo{db: db, cache: c}
}

func (r *CourseRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Course{})
}

func courseKey(id string) string { return "course:" + id }

func (r *CourseRepo) Create(ctx context.Context, c *domain.Course) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourseRepo) ByID(ctx context.Context, id string) (*domain.Course, error) {
	var c domain.Course
	if r.cache.GetJSON(ctx, courseKey(id), &c) {
		return &c, nil
	}
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	r.cache.SetJSON(ctx, courseKey(id), &c)
	return &c, nil
}

func (r *CourseRepo) ListPublished(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *CourseRepo) ByEducator(ctx context.Context, educatorID string) ([]domain.Course, error) {
	var out []domain.Course
	err := r.db.WithContext(ctx).
		Where("educator_id = ?", educatorID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *CourseRepo) ByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Course
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

// Invalidate drops the cached copy after a write that changes the
// course document (rating aggregate updates, content edits).
func (r *CourseRepo) Invalidate(ctx context.Context, id string) {
	r.cache.Delete(ctx, courseKey(id))
}
