package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

type ProgressHandler struct {
	progress *service.ProgressSvc
	ratings  *service.RatingSvc
}

func NewProgressHandler(p *service.ProgressSvc, r *service.RatingSvc) *ProgressHandler {
	return &ProgressHandler{progress: p, ratings: r}
}

type lectureBody struct {
	CourseID  string `json:"course_id" binding:"required"`
	LectureID string `json:"lecture_id" binding:"required"`
}

// POST /v1/progress/lecture
func (h *ProgressHandler) MarkLecture(c *gin.Context) {
	var body lectureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.progress.MarkCompleted(c.Request.Context(), actorID(c), body.CourseID, body.LectureID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": view})
}

// GET /v1/progress/:courseId
func (h *ProgressHandler) Get(c *gin.Context) {
	view, err := h.progress.Get(c.Request.Context(), actorID(c), c.Param("courseId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": view})
}

type ratingBody struct {
	CourseID string `json:"course_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
}

// POST /v1/ratings
func (h *ProgressHandler) Rate(c *gin.Context) {
	var body ratingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ratings.Rate(c.Request.Context(), actorID(c), body.CourseID, body.Rating); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
