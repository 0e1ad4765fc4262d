package domain

import "time"

type Lecture struct {
	LectureID   string `json:"lecture_id"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min"`
	URL         string `json:"url"`
	IsPreview   bool   `json:"is_preview"`
	Order       int    `json:"order"`
}

type Chapter struct {
	ChapterID string    `json:"chapter_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	Lectures  []Lecture `json:"lectures"`
}

type Course struct {
	ID          string `gorm:"primaryKey"`
	EducatorID  string `gorm:"index"`
	Title       string
	Description string
	Thumbnail   string
	PriceCents  int64
	Currency    string
	Discount    int  // percent, 0..100
	Published   bool `gorm:"index"`

	Content []Chapter `gorm:"serializer:json"`

	RatingAverage float64
	RatingCount   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FinalPriceCents applies the discount percentage to the list price.
func (c *Course) FinalPriceCents() int64 {
	return c.PriceCents - c.PriceCents*int64(c.Discount)/100
}

func (c *Course) HasLecture(lectureID string) bool {
	for _, ch := range c.Content {
		for _, l := range ch.Lectures {
			if l.LectureID == lectureID {
				return true
			}
		}
	}
	return false
}

func (c *Course) LectureCount() int {
	n := 0
	for _, ch := range c.Content {
		n += len(ch.Lectures)
	}
	return n
}

// StripPrivateContent blanks lecture URLs that are not free previews.
// Used on the public catalog read path.
func (c *Course) StripPrivateContent() {
	for ci := range c.Content {
		for li := range c.Content[ci].Lectures {
			if !c.Content[ci].Lectures[li].IsPreview {
				c.Content[ci].Lectures[li].URL = ""
			}
		}
	}
}

// CourseRating is one user's rating of a course; at most one per user.
type CourseRating struct {
	ID       string `gorm:"primaryKey"`
	CourseID string `gorm:"uniqueIndex:ux_rating_course_user"`
	UserID   string `gorm:"uniqueIndex:ux_rating_course_user"`
	Rating   int

	CreatedAt time.Time
}
