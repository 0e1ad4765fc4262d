package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
)

var ErrAlreadyRated = errors.New("already_rated")

type RatingRepo struct{ db *gorm.DB }

func NewRatingRepo(db *gorm.DB) *RatingRepo {
	return &RatingRepo{db: db}
}

func (r *RatingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.CourseRating{})
}

// Add appends the rating and recomputes the course's arithmetic-mean
// aggregate in the same transaction. The unique (course_id, user_id)
// index preserves the first rating against duplicates.
func (r *RatingRepo) Add(ctx context.Context, userID, courseID string, rating int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := domain.CourseRating{
			ID:       uuid.NewString(),
			CourseID: courseID,
			UserID:   userID,
			Rating:   rating,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRated
			}
			return err
		}

		var agg struct {
			Avg float64
			N   int64
		}
		if err := tx.Model(&domain.CourseRating{}).
			Select("AVG(rating) AS avg, COUNT(*) AS n").
			Where("course_id = ?", courseID).
			Scan(&agg).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Course{}).
			Where("id = ?", courseID).
			Updates(map[string]any{"rating_average": agg.Avg, "rating_count": agg.N}).Error
	})
}

func (r *RatingRepo) HasRated(ctx context.Context, userID, courseID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.CourseRating{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&n).Error
	return n > 0, err
}
