package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
)

type EnrollmentRepo struct{ db *gorm.DB }

func NewEnrollmentRepo(db *gorm.DB) *EnrollmentRepo {
	return &EnrollmentRepo{db: db}
}

func (r *EnrollmentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Enrollment{})
}

// Add inserts the membership row with set semantics: an existing member
// is left untouched. Reports whether this call inserted the row.
func (r *EnrollmentRepo) Add(ctx context.Context, userID, courseID string) (bool, error) {
	e := domain.Enrollment{UserID: userID, CourseID: courseID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&e)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *EnrollmentRepo) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&n).Error
	return n > 0, err
}

func (r *EnrollmentRepo) CourseIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("course_id", &ids).Error
	return ids, err
}

func (r *EnrollmentRepo) UserIDs(ctx context.Context, courseID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *EnrollmentRepo) CountForCourse(ctx context.Context, courseID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&n).Error
	return n, err
}
