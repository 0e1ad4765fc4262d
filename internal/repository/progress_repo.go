package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
)

// lockedRow takes a FOR UPDATE row lock so a read-modify-write inside a
// transaction cannot lose against a concurrent writer under READ
// COMMITTED. sqlite has no row locks; its single writer serializes
// instead.
func lockedRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

type ProgressRepo struct{ db *gorm.DB }

func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.CourseProgress{})
}

// Get returns (nil, nil) when no record exists yet; callers render that
// as zero progress, not an error.
func (r *ProgressRepo) Get(ctx context.Context, userID, courseID string) (*domain.CourseProgress, error) {
	var p domain.CourseProgress
	err := r.db.WithContext(ctx).
		First(&p, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// AddLecture inserts lectureID into the completed set, creating the
// record on first completion. Completed is recomputed against
// totalLectures. Re-adding a member leaves the record unchanged.
func (r *ProgressRepo) AddLecture(ctx context.Context, userID, courseID, lectureID string, totalLectures int) (*domain.CourseProgress, error) {
	var out *domain.CourseProgress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.CourseProgress
		err := lockedRow(tx).First(&p, "user_id = ? AND course_id = ?", userID, courseID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			p = domain.CourseProgress{
				ID:                uuid.NewString(),
				UserID:            userID,
				CourseID:          courseID,
				LecturesCompleted: []string{lectureID},
				Completed:         totalLectures == 1,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if p.HasLecture(lectureID) {
				break // idempotent no-op
			}
			p.LecturesCompleted = append(p.LecturesCompleted, lectureID)
			p.Completed = len(p.LecturesCompleted) == totalLectures
			if err := tx.Save(&p).Error; err != nil {
				return err
			}
		}
		out = &p
		return nil
	})
	return out, err
}
