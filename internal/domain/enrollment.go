package domain

import "time"

// Enrollment is one row per (user, course); the composite key makes
// membership a set, so re-inserting an existing member is a no-op.
// Reading the relation by either column serves both the course's
// enrolled set and the user's enrolled set.
type Enrollment struct {
	UserID   string `gorm:"primaryKey"`
	CourseID string `gorm:"primaryKey"`

	CreatedAt time.Time
}

// CourseProgress holds the set of completed lecture ids for one
// (user, course). The set only grows; Completed is derived from its
// size against the course's lecture count.
type CourseProgress struct {
	ID       string `gorm:"primaryKey"`
	UserID   string `gorm:"uniqueIndex:ux_progress_user_course"`
	CourseID string `gorm:"uniqueIndex:ux_progress_user_course"`

	LecturesCompleted []string `gorm:"serializer:json"`
	Completed         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLecture reports set membership.
func (p *CourseProgress) HasLecture(lectureID string) bool {
	for _, id := range p.LecturesCompleted {
		if id == lectureID {
			return true
		}
	}
	return false
}
