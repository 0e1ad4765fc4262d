package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

type CourseHandler struct {
	courses *service.CourseSvc
	enroll  *service.EnrollmentSvc
}

func NewCourseHandler(courses *service.CourseSvc, enroll *service.EnrollmentSvc) *CourseHandler {
	return &CourseHandler{courses: courses, enroll: enroll}
}

// GET /v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	out, err := h.courses.ListPublished(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": out})
}

// GET /v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

type createCourseBody struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	PriceCents  int64            `json:"price_cents" binding:"required"`
	Currency    string           `json:"currency"`
	Discount    int              `json:"discount"`
	Published   bool             `json:"published"`
	Content     []domain.Chapter `json:"content"`
}

// POST /v1/courses (EDUCATOR)
func (h *CourseHandler) Create(c *gin.Context) {
	var body createCourseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.courses.Create(c.Request.Context(), actorID(c), &domain.Course{
		Title:       body.Title,
		Description: body.Description,
		Thumbnail:   body.Thumbnail,
		PriceCents:  body.PriceCents,
		Currency:    body.Currency,
		Discount:    body.Discount,
		Published:   body.Published,
		Content:     body.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

// GET /v1/educators/me/courses (EDUCATOR)
func (h *CourseHandler) Mine(c *gin.Context) {
	out, err := h.courses.ByEducator(c.Request.Context(), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": out})
}

// GET /v1/courses/:id/students (EDUCATOR)
func (h *CourseHandler) Students(c *gin.Context) {
	users, err := h.enroll.Roster(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "name": u.Name, "email": u.Email})
	}
	c.JSON(http.StatusOK, gin.H{"students": out})
}

// GET /v1/courses/:id/status
func (h *CourseHandler) Status(c *gin.Context) {
	enrolled, rated, err := h.enroll.Status(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrolled": enrolled, "rated": rated})
}

// GET /v1/users/me/courses
func (h *CourseHandler) Enrolled(c *gin.Context) {
	out, err := h.enroll.EnrolledCourses(c.Request.Context(), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	for i := range out {
		out[i].Content = nil
	}
	c.JSON(http.StatusOK, gin.H{"courses": out})
}
